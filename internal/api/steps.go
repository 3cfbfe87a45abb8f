package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// StepService manages workflow steps.
type StepService struct {
	client *Client
}

// StepInput is the write shape for creating and replacing a step.
type StepInput struct {
	Type         models.ContextType   `json:"type"`
	IsActive     bool                 `json:"isActive"`
	Translations []models.Translation `json:"translations"`
}

// List returns one page of steps matching the filter.
func (s *StepService) List(ctx context.Context, p ListParams) (*models.Page[models.Step], error) {
	var page models.Page[models.Step]
	ok, err := s.client.get(ctx, "/steps", p.values(), &page)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	if !ok {
		return emptyPage[models.Step](p), nil
	}
	return &page, nil
}

// ListAll returns every step of the given context, unpaginated, in sort
// order. Used by the reorder dialog.
func (s *StepService) ListAll(ctx context.Context, t models.ContextType) ([]models.Step, error) {
	q := url.Values{}
	q.Set("type", strconv.Itoa(int(t)))

	var steps []models.Step
	ok, err := s.client.get(ctx, "/steps/all", q, &steps)
	if err != nil {
		return nil, fmt.Errorf("list all steps: %w", err)
	}
	if !ok {
		return []models.Step{}, nil
	}
	return steps, nil
}

// Get returns the step by id, or nil when it does not exist.
func (s *StepService) Get(ctx context.Context, id int) (*models.Step, error) {
	var step models.Step
	ok, err := s.client.get(ctx, "/steps/"+strconv.Itoa(id), nil, &step)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get step %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &step, nil
}

// Create creates a new step.
func (s *StepService) Create(ctx context.Context, in StepInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPost, "/steps", nil, &in); err != nil {
		return fmt.Errorf("create step: %w", err)
	}
	return nil
}

// Update fully replaces the step with id.
func (s *StepService) Update(ctx context.Context, id int, in StepInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPut, "/steps/"+strconv.Itoa(id), nil, &in); err != nil {
		return fmt.Errorf("update step %d: %w", id, err)
	}
	return nil
}

type statusRequest struct {
	IsActive bool `json:"isActive"`
}

// ChangeStatus sets the active flag to an absolute value, so repeated
// calls are idempotent rather than cumulative.
func (s *StepService) ChangeStatus(ctx context.Context, id int, active bool) error {
	path := "/steps/" + strconv.Itoa(id) + "/status"
	if _, err := s.client.doJSON(ctx, http.MethodPatch, path, nil, &statusRequest{IsActive: active}); err != nil {
		return fmt.Errorf("change step %d status: %w", id, err)
	}
	return nil
}

// Delete removes the step by id.
func (s *StepService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.doJSON(ctx, http.MethodDelete, "/steps/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete step %d: %w", id, err)
	}
	return nil
}

// Reorder submits the complete new step ordering in one call. The server
// assigns sequential sort orders from array position.
func (s *StepService) Reorder(ctx context.Context, queue []models.StepOrderItem) error {
	if _, err := s.client.doJSON(ctx, http.MethodPut, "/steps/queue", nil, queue); err != nil {
		return fmt.Errorf("reorder steps: %w", err)
	}
	return nil
}
