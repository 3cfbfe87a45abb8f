package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// SectionService manages the sections of a step.
type SectionService struct {
	client *Client
}

// SectionInput is the write shape for creating and replacing a section.
type SectionInput struct {
	StepID       int                  `json:"stepId"`
	IsActive     bool                 `json:"isActive"`
	IsChangeable bool                 `json:"isChangeable"`
	Translations []models.Translation `json:"translations"`
}

// List returns one page of sections matching the filter.
func (s *SectionService) List(ctx context.Context, p ListParams) (*models.Page[models.Section], error) {
	var page models.Page[models.Section]
	ok, err := s.client.get(ctx, "/sections", p.values(), &page)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	if !ok {
		return emptyPage[models.Section](p), nil
	}
	return &page, nil
}

// ListAll returns every section of the given step, unpaginated, in sort
// order. Sort order is only meaningful within one step.
func (s *SectionService) ListAll(ctx context.Context, stepID int) ([]models.Section, error) {
	q := url.Values{}
	q.Set("stepId", strconv.Itoa(stepID))

	var sections []models.Section
	ok, err := s.client.get(ctx, "/sections/all", q, &sections)
	if err != nil {
		return nil, fmt.Errorf("list all sections: %w", err)
	}
	if !ok {
		return []models.Section{}, nil
	}
	return sections, nil
}

// Get returns the section by id, or nil when it does not exist.
func (s *SectionService) Get(ctx context.Context, id int) (*models.Section, error) {
	var section models.Section
	ok, err := s.client.get(ctx, "/sections/"+strconv.Itoa(id), nil, &section)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &section, nil
}

// Create creates a new section under its step.
func (s *SectionService) Create(ctx context.Context, in SectionInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPost, "/sections", nil, &in); err != nil {
		return fmt.Errorf("create section: %w", err)
	}
	return nil
}

// Update fully replaces the section with id.
func (s *SectionService) Update(ctx context.Context, id int, in SectionInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPut, "/sections/"+strconv.Itoa(id), nil, &in); err != nil {
		return fmt.Errorf("update section %d: %w", id, err)
	}
	return nil
}

// ChangeStatus sets the active flag to an absolute value.
func (s *SectionService) ChangeStatus(ctx context.Context, id int, active bool) error {
	path := "/sections/" + strconv.Itoa(id) + "/status"
	if _, err := s.client.doJSON(ctx, http.MethodPatch, path, nil, &statusRequest{IsActive: active}); err != nil {
		return fmt.Errorf("change section %d status: %w", id, err)
	}
	return nil
}

// Delete removes the section by id.
func (s *SectionService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.doJSON(ctx, http.MethodDelete, "/sections/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete section %d: %w", id, err)
	}
	return nil
}

type sectionQueueRequest struct {
	StepID int   `json:"stepId"`
	IDs    []int `json:"ids"`
}

// Reorder submits the complete new section ordering for one step.
func (s *SectionService) Reorder(ctx context.Context, stepID int, ids []int) error {
	req := &sectionQueueRequest{StepID: stepID, IDs: ids}
	if _, err := s.client.doJSON(ctx, http.MethodPut, "/sections/queue", nil, req); err != nil {
		return fmt.Errorf("reorder sections of step %d: %w", stepID, err)
	}
	return nil
}
