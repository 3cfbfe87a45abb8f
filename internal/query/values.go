package query

import (
	"context"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/models"
)

// AttributeValues returns all values of one attribute with their
// language projections.
func (q *Queries) AttributeValues(ctx context.Context, attributeID int) ([]models.AttributeValue, error) {
	return listAll(ctx, q, cache.AllKey(cache.FamilyValues, attributeID), func(ctx context.Context) ([]models.AttributeValue, error) {
		return q.backend.Values.ListByAttribute(ctx, attributeID)
	})
}

// AddValue submits one language-scoped value for an attribute. Whether
// the server creates a new value identity or attaches a projection to an
// existing one is reconciled by the refetch after invalidation.
func (q *Queries) AddValue(ctx context.Context, attributeID int, lang, value string) error {
	return q.runMutation(ctx, cache.FamilyValues, "create", attributeID, "could not add the value", func(ctx context.Context) error {
		return q.backend.Values.Create(ctx, api.ValueInput{
			AttributeID: attributeID,
			Language:    lang,
			Value:       value,
		})
	})
}

// DeleteValue removes a value identity with all language projections.
func (q *Queries) DeleteValue(ctx context.Context, valueID int) error {
	return q.runMutation(ctx, cache.FamilyValues, "delete", valueID, "could not delete the value", func(ctx context.Context) error {
		return q.backend.Values.Delete(ctx, valueID)
	})
}

// CommitDrafts posts every draft of the list per language through the
// value create endpoint and clears the committed entries. The first
// failure stops committing; the failed draft and the remaining ones stay
// in the list for retry.
func (q *Queries) CommitDrafts(ctx context.Context, attributeID int, d *DraftList) error {
	for {
		draft, ok := d.Peek()
		if !ok {
			return nil
		}
		if err := q.AddValue(ctx, attributeID, draft.Language, draft.Text); err != nil {
			return err
		}
		d.Pop()
	}
}
