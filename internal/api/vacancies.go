package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// VacancyService reads and manages vacancy records.
type VacancyService struct {
	client *Client
}

// List returns one page of vacancies matching the filter.
func (s *VacancyService) List(ctx context.Context, p ListParams) (*models.Page[models.VacancyItem], error) {
	var page models.Page[models.VacancyItem]
	ok, err := s.client.get(ctx, "/vacancies", p.values(), &page)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	if !ok {
		return emptyPage[models.VacancyItem](p), nil
	}
	return &page, nil
}

// Get returns the vacancy by id, or nil when it does not exist.
func (s *VacancyService) Get(ctx context.Context, id int) (*models.VacancyItem, error) {
	var item models.VacancyItem
	ok, err := s.client.get(ctx, "/vacancies/"+strconv.Itoa(id), nil, &item)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vacancy %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// ChangeStatus sets the active flag to an absolute value.
func (s *VacancyService) ChangeStatus(ctx context.Context, id int, active bool) error {
	path := "/vacancies/" + strconv.Itoa(id) + "/status"
	if _, err := s.client.doJSON(ctx, http.MethodPatch, path, nil, &statusRequest{IsActive: active}); err != nil {
		return fmt.Errorf("change vacancy %d status: %w", id, err)
	}
	return nil
}

// Delete removes the vacancy by id.
func (s *VacancyService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.doJSON(ctx, http.MethodDelete, "/vacancies/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete vacancy %d: %w", id, err)
	}
	return nil
}
