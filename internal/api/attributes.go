package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// AttributeService manages attribute definitions.
type AttributeService struct {
	client *Client
}

// AttributeInput is the write shape for creating and replacing an
// attribute definition.
type AttributeInput struct {
	SectionID   int              `json:"sectionId"`
	Name        string           `json:"name"`
	ValueType   models.ValueType `json:"valueType"`
	IsValuable  bool             `json:"isValuable"`
	IsPrinted   bool             `json:"isPrinted"`
	IsVisible   bool             `json:"isVisible"`
	IsImportant bool             `json:"isImportant"`
	IsActive    bool             `json:"isActive"`
}

// List returns one page of attributes, optionally scoped by StepID.
func (s *AttributeService) List(ctx context.Context, p ListParams) (*models.Page[models.Attribute], error) {
	var page models.Page[models.Attribute]
	ok, err := s.client.get(ctx, "/attributes", p.values(), &page)
	if err != nil {
		return nil, fmt.Errorf("list attributes: %w", err)
	}
	if !ok {
		return emptyPage[models.Attribute](p), nil
	}
	return &page, nil
}

// ListAll returns every attribute of the given step, unpaginated.
func (s *AttributeService) ListAll(ctx context.Context, stepID int) ([]models.Attribute, error) {
	q := url.Values{}
	q.Set("stepId", strconv.Itoa(stepID))

	var attrs []models.Attribute
	ok, err := s.client.get(ctx, "/attributes/all", q, &attrs)
	if err != nil {
		return nil, fmt.Errorf("list all attributes: %w", err)
	}
	if !ok {
		return []models.Attribute{}, nil
	}
	return attrs, nil
}

// Get returns the attribute by id with its values, or nil when it does
// not exist.
func (s *AttributeService) Get(ctx context.Context, id int) (*models.Attribute, error) {
	var attr models.Attribute
	ok, err := s.client.get(ctx, "/attributes/"+strconv.Itoa(id), nil, &attr)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attribute %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &attr, nil
}

// Create creates a new attribute definition.
func (s *AttributeService) Create(ctx context.Context, in AttributeInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPost, "/attributes", nil, &in); err != nil {
		return fmt.Errorf("create attribute: %w", err)
	}
	return nil
}

// Update fully replaces the attribute with id.
func (s *AttributeService) Update(ctx context.Context, id int, in AttributeInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPut, "/attributes/"+strconv.Itoa(id), nil, &in); err != nil {
		return fmt.Errorf("update attribute %d: %w", id, err)
	}
	return nil
}

// ChangeStatus sets the active flag to an absolute value.
func (s *AttributeService) ChangeStatus(ctx context.Context, id int, active bool) error {
	path := "/attributes/" + strconv.Itoa(id) + "/status"
	if _, err := s.client.doJSON(ctx, http.MethodPatch, path, nil, &statusRequest{IsActive: active}); err != nil {
		return fmt.Errorf("change attribute %d status: %w", id, err)
	}
	return nil
}

// Delete removes the attribute by id.
func (s *AttributeService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.doJSON(ctx, http.MethodDelete, "/attributes/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete attribute %d: %w", id, err)
	}
	return nil
}
