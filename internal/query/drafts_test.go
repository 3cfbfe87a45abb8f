package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/models"
)

func TestDraftList_AddValidation(t *testing.T) {
	var d DraftList

	assert.Error(t, d.Add("en", ""))
	assert.Error(t, d.Add("en", "   "))
	assert.Error(t, d.Add("de", "Blau"))
	assert.Equal(t, 0, d.Len())

	require.NoError(t, d.Add("en", "Blue"))
	require.NoError(t, d.Add("az", " Mavi "))
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "Mavi", d.Drafts()[1].Text) // trimmed
}

func TestDraftList_EditRemovesAndReturns(t *testing.T) {
	var d DraftList
	require.NoError(t, d.Add("en", "Blue"))
	require.NoError(t, d.Add("ru", "Синий"))

	draft, ok := d.Edit(0)
	require.True(t, ok)
	assert.Equal(t, Draft{Language: "en", Text: "Blue"}, draft)
	assert.Equal(t, 1, d.Len())

	_, ok = d.Edit(5)
	assert.False(t, ok)
}

func TestDraftList_Remove(t *testing.T) {
	var d DraftList
	require.NoError(t, d.Add("en", "Blue"))

	assert.True(t, d.Remove(0))
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Remove(0))
}

// fakeValues accepts creates until failAfter submissions have been seen.
type fakeValues struct {
	created   []api.ValueInput
	failAfter int // -1 never fails
	deleted   []int
}

func (f *fakeValues) ListByAttribute(ctx context.Context, attributeID int) ([]models.AttributeValue, error) {
	var out []models.AttributeValue
	for i, in := range f.created {
		if in.AttributeID != attributeID {
			continue
		}
		out = append(out, models.AttributeValue{
			AttributeValueID: i + 1,
			Display:          in.Value,
			Sets:             []models.ValueSet{{Language: in.Language, StringValue: in.Value}},
		})
	}
	return out, nil
}

func (f *fakeValues) Create(ctx context.Context, in api.ValueInput) error {
	if f.failAfter >= 0 && len(f.created) >= f.failAfter {
		return &api.APIError{Status: 500, Message: "storage unavailable"}
	}
	f.created = append(f.created, in)
	return nil
}

func (f *fakeValues) Delete(ctx context.Context, valueID int) error {
	f.deleted = append(f.deleted, valueID)
	return nil
}

func TestCommitDrafts_AllLanguages(t *testing.T) {
	f := &fakeValues{failAfter: -1}
	q := New(Backend{Values: f}, Options{})

	var d DraftList
	require.NoError(t, d.Add("en", "Senior"))
	require.NoError(t, d.Add("az", "Böyük"))
	require.NoError(t, d.Add("ru", "Старший"))

	require.NoError(t, q.CommitDrafts(context.Background(), 12, &d))
	assert.Equal(t, 0, d.Len())
	require.Len(t, f.created, 3)
	for _, in := range f.created {
		assert.Equal(t, 12, in.AttributeID)
	}
	assert.Equal(t, "az", f.created[1].Language)
}

func TestCommitDrafts_StopsOnFirstFailure(t *testing.T) {
	f := &fakeValues{failAfter: 1}
	q := New(Backend{Values: f}, Options{})

	var d DraftList
	require.NoError(t, d.Add("en", "Senior"))
	require.NoError(t, d.Add("az", "Böyük"))
	require.NoError(t, d.Add("ru", "Старший"))

	err := q.CommitDrafts(context.Background(), 12, &d)
	require.Error(t, err)

	// The failed draft and everything after it stay pending.
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "az", d.Drafts()[0].Language)
	assert.Len(t, f.created, 1)
}

func TestCommitDrafts_InvalidatesValues(t *testing.T) {
	f := &fakeValues{failAfter: -1}
	q := New(Backend{Values: f}, Options{})
	ctx := context.Background()

	values, err := q.AttributeValues(ctx, 12)
	require.NoError(t, err)
	assert.Empty(t, values)

	var d DraftList
	require.NoError(t, d.Add("en", "Senior"))
	require.NoError(t, q.CommitDrafts(ctx, 12, &d))

	values, err = q.AttributeValues(ctx, 12)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "Senior", values[0].Display)
}

func TestDeleteValue(t *testing.T) {
	f := &fakeValues{failAfter: -1}
	q := New(Backend{Values: f}, Options{})

	require.NoError(t, q.DeleteValue(context.Background(), 7))
	assert.Equal(t, []int{7}, f.deleted)
}
