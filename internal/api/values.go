package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// ValueService manages attribute values. Adding a value is a per-language
// operation: the same create endpoint is called once per language entry,
// and the server decides whether it creates a new value identity or
// attaches another language projection to an existing one. The client
// reconciles by refetching.
type ValueService struct {
	client *Client
}

// ValueInput is one language-scoped value submission.
type ValueInput struct {
	AttributeID int    `json:"attributeId"`
	Language    string `json:"language"`
	Value       string `json:"value"`
}

// ListByAttribute returns all values of an attribute with their language
// projections.
func (s *ValueService) ListByAttribute(ctx context.Context, attributeID int) ([]models.AttributeValue, error) {
	q := url.Values{}
	q.Set("attributeId", strconv.Itoa(attributeID))

	var values []models.AttributeValue
	ok, err := s.client.get(ctx, "/values", q, &values)
	if err != nil {
		return nil, fmt.Errorf("list values of attribute %d: %w", attributeID, err)
	}
	if !ok {
		return []models.AttributeValue{}, nil
	}
	return values, nil
}

// Create submits one language-scoped value.
func (s *ValueService) Create(ctx context.Context, in ValueInput) error {
	if !models.KnownLanguage(in.Language) {
		return fmt.Errorf("create value: unknown language %q", in.Language)
	}
	if _, err := s.client.doJSON(ctx, http.MethodPost, "/values", nil, &in); err != nil {
		return fmt.Errorf("create value for attribute %d: %w", in.AttributeID, err)
	}
	return nil
}

// Delete removes a value identity with all its language projections.
func (s *ValueService) Delete(ctx context.Context, valueID int) error {
	if _, err := s.client.doJSON(ctx, http.MethodDelete, "/values/"+strconv.Itoa(valueID), nil, nil); err != nil {
		return fmt.Errorf("delete value %d: %w", valueID, err)
	}
	return nil
}
