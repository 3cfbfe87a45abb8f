package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/models"
)

func TestPager_Navigation(t *testing.T) {
	f := newFakeSteps(12)
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	pager := NewPager(api.ListParams{PageNumber: 1, PageSize: 5}, q.StepsPage)

	page, err := pager.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Items[0].ID)

	page, err = pager.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, page.Items[0].ID)

	page, err = pager.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Items[0].ID)

	// Prev at page 1 stays on page 1.
	page, err = pager.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pager.Params().PageNumber)
	assert.Equal(t, 1, page.Items[0].ID)
}

func TestPager_FloorsInitialPage(t *testing.T) {
	pager := NewPager(api.ListParams{PageNumber: 0, PageSize: 5}, func(ctx context.Context, p api.ListParams) (*models.Page[models.Step], error) {
		return &models.Page[models.Step]{PageNumber: p.PageNumber}, nil
	})
	assert.Equal(t, 1, pager.Params().PageNumber)
}

func TestPager_ReloadStepsBackWhenPageVanished(t *testing.T) {
	f := newFakeSteps(6) // pages of 5: page 2 holds a single item
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	pager := NewPager(api.ListParams{PageNumber: 2, PageSize: 5}, q.StepsPage)

	page, err := pager.Current(ctx)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	// Deleting the only item of page 2 makes the page vanish.
	require.NoError(t, q.DeleteStep(ctx, 6))

	page, err = pager.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pager.Params().PageNumber)
	assert.Len(t, page.Items, 5)
}

func TestPager_ReloadStopsAtPageOne(t *testing.T) {
	calls := 0
	pager := NewPager(api.ListParams{PageNumber: 3, PageSize: 5}, func(ctx context.Context, p api.ListParams) (*models.Page[models.Step], error) {
		calls++
		return &models.Page[models.Step]{Items: []models.Step{}, PageNumber: p.PageNumber}, nil
	})

	page, err := pager.Reload(context.Background())
	require.NoError(t, err)
	assert.True(t, page.Empty())
	assert.Equal(t, 1, pager.Params().PageNumber)
	assert.Equal(t, 3, calls) // pages 3, 2, 1
}
