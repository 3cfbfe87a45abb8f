package query

import (
	"context"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/models"
)

// AttributesPage returns one cached page of attributes.
func (q *Queries) AttributesPage(ctx context.Context, p api.ListParams) (*models.Page[models.Attribute], error) {
	return listPaged(ctx, q, cache.FamilyAttributes, p, q.backend.Attributes.List)
}

// AllAttributes returns every attribute of one step.
func (q *Queries) AllAttributes(ctx context.Context, stepID int) ([]models.Attribute, error) {
	return listAll(ctx, q, cache.AllKey(cache.FamilyAttributes, stepID), func(ctx context.Context) ([]models.Attribute, error) {
		return q.backend.Attributes.ListAll(ctx, stepID)
	})
}

// Attribute returns the attribute by id with its values, or nil when it
// does not exist.
func (q *Queries) Attribute(ctx context.Context, id int) (*models.Attribute, error) {
	return detail(ctx, q, cache.DetailKey(cache.FamilyAttributes, id), func(ctx context.Context) (*models.Attribute, error) {
		return q.backend.Attributes.Get(ctx, id)
	})
}

// CreateAttribute creates an attribute definition.
func (q *Queries) CreateAttribute(ctx context.Context, in api.AttributeInput) error {
	return q.runMutation(ctx, cache.FamilyAttributes, "create", 0, "could not create the attribute", func(ctx context.Context) error {
		return q.backend.Attributes.Create(ctx, in)
	})
}

// UpdateAttribute fully replaces the attribute.
func (q *Queries) UpdateAttribute(ctx context.Context, id int, in api.AttributeInput) error {
	return q.runMutation(ctx, cache.FamilyAttributes, "update", id, "could not update the attribute", func(ctx context.Context) error {
		return q.backend.Attributes.Update(ctx, id, in)
	})
}

// ToggleAttributeStatus sets the attribute's active flag to an absolute
// value.
func (q *Queries) ToggleAttributeStatus(ctx context.Context, id int, active bool) error {
	return q.runMutation(ctx, cache.FamilyAttributes, "toggle-status", id, "could not change the attribute status", func(ctx context.Context) error {
		return q.backend.Attributes.ChangeStatus(ctx, id, active)
	})
}

// DeleteAttribute deletes the attribute.
func (q *Queries) DeleteAttribute(ctx context.Context, id int) error {
	return q.runMutation(ctx, cache.FamilyAttributes, "delete", id, "could not delete the attribute", func(ctx context.Context) error {
		return q.backend.Attributes.Delete(ctx, id)
	})
}
