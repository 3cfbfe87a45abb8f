package query

import (
	"context"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/models"
)

// StepsPage returns one cached page of steps.
func (q *Queries) StepsPage(ctx context.Context, p api.ListParams) (*models.Page[models.Step], error) {
	return listPaged(ctx, q, cache.FamilySteps, p, q.backend.Steps.List)
}

// AllSteps returns every step of one context in sort order.
func (q *Queries) AllSteps(ctx context.Context, t models.ContextType) ([]models.Step, error) {
	return listAll(ctx, q, cache.AllKey(cache.FamilySteps, t), func(ctx context.Context) ([]models.Step, error) {
		return q.backend.Steps.ListAll(ctx, t)
	})
}

// Step returns the step by id, or nil when it does not exist.
func (q *Queries) Step(ctx context.Context, id int) (*models.Step, error) {
	return detail(ctx, q, cache.DetailKey(cache.FamilySteps, id), func(ctx context.Context) (*models.Step, error) {
		return q.backend.Steps.Get(ctx, id)
	})
}

// CreateStep creates a step and invalidates the step family.
func (q *Queries) CreateStep(ctx context.Context, in api.StepInput) error {
	return q.runMutation(ctx, cache.FamilySteps, "create", 0, "could not create the step", func(ctx context.Context) error {
		return q.backend.Steps.Create(ctx, in)
	})
}

// UpdateStep fully replaces the step.
func (q *Queries) UpdateStep(ctx context.Context, id int, in api.StepInput) error {
	return q.runMutation(ctx, cache.FamilySteps, "update", id, "could not update the step", func(ctx context.Context) error {
		return q.backend.Steps.Update(ctx, id, in)
	})
}

// ToggleStepStatus sets the step's active flag to an absolute value.
func (q *Queries) ToggleStepStatus(ctx context.Context, id int, active bool) error {
	return q.runMutation(ctx, cache.FamilySteps, "toggle-status", id, "could not change the step status", func(ctx context.Context) error {
		return q.backend.Steps.ChangeStatus(ctx, id, active)
	})
}

// DeleteStep deletes the step. Callers viewing a paginated list should
// reload through their Pager, which steps back when the page vanished.
func (q *Queries) DeleteStep(ctx context.Context, id int) error {
	return q.runMutation(ctx, cache.FamilySteps, "delete", id, "could not delete the step", func(ctx context.Context) error {
		return q.backend.Steps.Delete(ctx, id)
	})
}

// ReorderSteps submits a complete new step ordering.
func (q *Queries) ReorderSteps(ctx context.Context, queue []models.StepOrderItem) error {
	return q.runMutation(ctx, cache.FamilySteps, "reorder", 0, "could not reorder the steps", func(ctx context.Context) error {
		return q.backend.Steps.Reorder(ctx, queue)
	})
}
