package query

import (
	"context"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/models"
)

// SectionsPage returns one cached page of sections.
func (q *Queries) SectionsPage(ctx context.Context, p api.ListParams) (*models.Page[models.Section], error) {
	return listPaged(ctx, q, cache.FamilySections, p, q.backend.Sections.List)
}

// AllSections returns every section of one step in sort order. This is
// the read behind the reorder dialog.
func (q *Queries) AllSections(ctx context.Context, stepID int) ([]models.Section, error) {
	return listAll(ctx, q, cache.AllKey(cache.FamilySections, stepID), func(ctx context.Context) ([]models.Section, error) {
		return q.backend.Sections.ListAll(ctx, stepID)
	})
}

// Section returns the section by id, or nil when it does not exist.
func (q *Queries) Section(ctx context.Context, id int) (*models.Section, error) {
	return detail(ctx, q, cache.DetailKey(cache.FamilySections, id), func(ctx context.Context) (*models.Section, error) {
		return q.backend.Sections.Get(ctx, id)
	})
}

// CreateSection creates a section. Sections carry their step's name, so
// the write invalidates the step family too (see cache.WriteInvalidates).
func (q *Queries) CreateSection(ctx context.Context, in api.SectionInput) error {
	return q.runMutation(ctx, cache.FamilySections, "create", 0, "could not create the section", func(ctx context.Context) error {
		return q.backend.Sections.Create(ctx, in)
	})
}

// UpdateSection fully replaces the section.
func (q *Queries) UpdateSection(ctx context.Context, id int, in api.SectionInput) error {
	return q.runMutation(ctx, cache.FamilySections, "update", id, "could not update the section", func(ctx context.Context) error {
		return q.backend.Sections.Update(ctx, id, in)
	})
}

// ToggleSectionStatus sets the section's active flag to an absolute value.
func (q *Queries) ToggleSectionStatus(ctx context.Context, id int, active bool) error {
	return q.runMutation(ctx, cache.FamilySections, "toggle-status", id, "could not change the section status", func(ctx context.Context) error {
		return q.backend.Sections.ChangeStatus(ctx, id, active)
	})
}

// DeleteSection deletes the section.
func (q *Queries) DeleteSection(ctx context.Context, id int) error {
	return q.runMutation(ctx, cache.FamilySections, "delete", id, "could not delete the section", func(ctx context.Context) error {
		return q.backend.Sections.Delete(ctx, id)
	})
}

// ReorderSections submits a complete new ordering for one step's
// sections. Ordering is only meaningful within that step.
func (q *Queries) ReorderSections(ctx context.Context, stepID int, ids []int) error {
	return q.runMutation(ctx, cache.FamilySections, "reorder", stepID, "could not reorder the sections", func(ctx context.Context) error {
		return q.backend.Sections.Reorder(ctx, stepID, ids)
	})
}
