package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/models"
)

// fakeSteps serves pages out of an in-memory slice and counts backend
// round trips, so tests can observe caching and invalidation.
type fakeSteps struct {
	steps     []models.Step
	listCalls int
	getCalls  int
	failWith  error

	lastStatus map[int]bool
	reordered  []models.StepOrderItem
}

func newFakeSteps(n int) *fakeSteps {
	f := &fakeSteps{lastStatus: map[int]bool{}}
	for i := 1; i <= n; i++ {
		f.steps = append(f.steps, models.Step{
			ID:        i,
			Type:      models.ContextCV,
			SortOrder: i,
			IsActive:  true,
			Translations: []models.Translation{
				{Language: models.LangEN, Title: fmt.Sprintf("Step %d", i)},
			},
		})
	}
	return f
}

func (f *fakeSteps) List(ctx context.Context, p api.ListParams) (*models.Page[models.Step], error) {
	f.listCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	start := (p.PageNumber - 1) * p.PageSize
	end := start + p.PageSize
	if start > len(f.steps) {
		start = len(f.steps)
	}
	if end > len(f.steps) {
		end = len(f.steps)
	}
	items := append([]models.Step{}, f.steps[start:end]...)
	return &models.Page[models.Step]{
		Items:      items,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: len(f.steps),
	}, nil
}

func (f *fakeSteps) ListAll(ctx context.Context, t models.ContextType) ([]models.Step, error) {
	f.listCalls++
	return append([]models.Step{}, f.steps...), nil
}

func (f *fakeSteps) Get(ctx context.Context, id int) (*models.Step, error) {
	f.getCalls++
	for i := range f.steps {
		if f.steps[i].ID == id {
			s := f.steps[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSteps) Create(ctx context.Context, in api.StepInput) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.steps = append(f.steps, models.Step{ID: len(f.steps) + 1, Type: in.Type, IsActive: in.IsActive})
	return nil
}

func (f *fakeSteps) Update(ctx context.Context, id int, in api.StepInput) error {
	return f.failWith
}

func (f *fakeSteps) ChangeStatus(ctx context.Context, id int, active bool) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.lastStatus[id] = active
	for i := range f.steps {
		if f.steps[i].ID == id {
			f.steps[i].IsActive = active
		}
	}
	return nil
}

func (f *fakeSteps) Delete(ctx context.Context, id int) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.steps {
		if f.steps[i].ID == id {
			f.steps = append(f.steps[:i], f.steps[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSteps) Reorder(ctx context.Context, queue []models.StepOrderItem) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.reordered = queue
	return nil
}

type captureNotifier struct {
	messages []string
}

func (n *captureNotifier) Notify(msg string) {
	n.messages = append(n.messages, msg)
}

type captureRecorder struct {
	entries []string
}

func (r *captureRecorder) RecordMutation(entity, op string, targetID int, err error) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	r.entries = append(r.entries, fmt.Sprintf("%s/%s/%d/%s", entity, op, targetID, status))
}

func TestStepsPage_Cached(t *testing.T) {
	f := newFakeSteps(3)
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	p := api.ListParams{PageNumber: 1, PageSize: 10}
	first, err := q.StepsPage(ctx, p)
	require.NoError(t, err)
	assert.Len(t, first.Items, 3)

	_, err = q.StepsPage(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 1, f.listCalls)
}

func TestStepsPage_LookAheadOnFullPage(t *testing.T) {
	f := newFakeSteps(10) // exactly two full pages of 5
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	page, err := q.StepsPage(ctx, api.ListParams{PageNumber: 1, PageSize: 5})
	require.NoError(t, err)
	assert.True(t, page.HasNextPage)
	assert.False(t, page.HasPreviousPage)
	assert.Equal(t, 2, f.listCalls) // page 1 plus the probe of page 2

	// The last full page: its probe finds an empty page 3.
	page, err = q.StepsPage(ctx, api.ListParams{PageNumber: 2, PageSize: 5})
	require.NoError(t, err)
	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPreviousPage)
}

func TestStepsPage_ShortPageSkipsProbe(t *testing.T) {
	f := newFakeSteps(3)
	q := New(Backend{Steps: f}, Options{})

	page, err := q.StepsPage(context.Background(), api.ListParams{PageNumber: 1, PageSize: 5})
	require.NoError(t, err)
	assert.False(t, page.HasNextPage)
	assert.Equal(t, 1, f.listCalls)
}

func TestStepsPage_ProbeIsReusedAsNextPage(t *testing.T) {
	f := newFakeSteps(7)
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	_, err := q.StepsPage(ctx, api.ListParams{PageNumber: 1, PageSize: 5})
	require.NoError(t, err)
	calls := f.listCalls

	// Navigating to page 2 hits the cache entry the probe created.
	page, err := q.StepsPage(ctx, api.ListParams{PageNumber: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, calls, f.listCalls)
}

func TestMutation_InvalidatesAndRefetches(t *testing.T) {
	f := newFakeSteps(3)
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	p := api.ListParams{PageNumber: 1, PageSize: 10}
	_, err := q.StepsPage(ctx, p)
	require.NoError(t, err)
	require.Equal(t, 1, f.listCalls)

	require.NoError(t, q.ToggleStepStatus(ctx, 2, false))

	page, err := q.StepsPage(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 2, f.listCalls) // cache was invalidated
	assert.False(t, page.Items[1].IsActive)
}

func TestToggle_AbsoluteTarget(t *testing.T) {
	f := newFakeSteps(1)
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	// Submitting the same target state twice converges instead of
	// flipping back.
	require.NoError(t, q.ToggleStepStatus(ctx, 1, false))
	require.NoError(t, q.ToggleStepStatus(ctx, 1, false))
	assert.False(t, f.lastStatus[1])

	step, err := q.Step(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.False(t, step.IsActive)
}

func TestMutation_FailureNotifiesWithServerMessage(t *testing.T) {
	f := newFakeSteps(1)
	f.failWith = &api.APIError{Status: 409, Message: "step is in use"}
	notifier := &captureNotifier{}
	q := New(Backend{Steps: f}, Options{Notifier: notifier})

	err := q.DeleteStep(context.Background(), 1)
	require.Error(t, err)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "step is in use", notifier.messages[0])
}

func TestMutation_FailureFallbackMessage(t *testing.T) {
	f := newFakeSteps(1)
	f.failWith = fmt.Errorf("connection refused")
	notifier := &captureNotifier{}
	q := New(Backend{Steps: f}, Options{Notifier: notifier})

	err := q.DeleteStep(context.Background(), 1)
	require.Error(t, err)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "could not delete the step", notifier.messages[0])
}

func TestMutation_FailureKeepsCache(t *testing.T) {
	f := newFakeSteps(3)
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	p := api.ListParams{PageNumber: 1, PageSize: 10}
	_, err := q.StepsPage(ctx, p)
	require.NoError(t, err)

	f.failWith = fmt.Errorf("boom")
	require.Error(t, q.DeleteStep(ctx, 1))
	f.failWith = nil

	_, err = q.StepsPage(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 1, f.listCalls) // failed write must not invalidate
}

func TestMutation_Recorded(t *testing.T) {
	f := newFakeSteps(1)
	rec := &captureRecorder{}
	q := New(Backend{Steps: f}, Options{Recorder: rec})
	ctx := context.Background()

	require.NoError(t, q.ToggleStepStatus(ctx, 1, false))
	f.failWith = fmt.Errorf("boom")
	require.Error(t, q.DeleteStep(ctx, 1))

	assert.Equal(t, []string{
		"steps/toggle-status/1/ok",
		"steps/delete/1/failed",
	}, rec.entries)
}

func TestReorderSteps_InvalidatesStepFamily(t *testing.T) {
	f := newFakeSteps(3)
	q := New(Backend{Steps: f}, Options{})
	ctx := context.Background()

	_, err := q.AllSteps(ctx, models.ContextCV)
	require.NoError(t, err)
	require.Equal(t, 1, f.listCalls)

	queue := []models.StepOrderItem{
		{ID: 3, Type: models.ContextCV},
		{ID: 1, Type: models.ContextCV},
		{ID: 2, Type: models.ContextCV},
	}
	require.NoError(t, q.ReorderSteps(ctx, queue))
	assert.Equal(t, queue, f.reordered)

	_, err = q.AllSteps(ctx, models.ContextCV)
	require.NoError(t, err)
	assert.Equal(t, 2, f.listCalls)
}

func TestDetail_MissingEntityIsNilNotError(t *testing.T) {
	f := newFakeSteps(1)
	q := New(Backend{Steps: f}, Options{})

	step, err := q.Step(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, step)
}
