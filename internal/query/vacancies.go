package query

import (
	"context"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/models"
)

// VacanciesPage returns one cached page of vacancies.
func (q *Queries) VacanciesPage(ctx context.Context, p api.ListParams) (*models.Page[models.VacancyItem], error) {
	return listPaged(ctx, q, cache.FamilyVacancies, p, q.backend.Vacancies.List)
}

// Vacancy returns the vacancy by id, or nil when it does not exist.
func (q *Queries) Vacancy(ctx context.Context, id int) (*models.VacancyItem, error) {
	return detail(ctx, q, cache.DetailKey(cache.FamilyVacancies, id), func(ctx context.Context) (*models.VacancyItem, error) {
		return q.backend.Vacancies.Get(ctx, id)
	})
}

// ToggleVacancyStatus sets the vacancy's active flag to an absolute value.
func (q *Queries) ToggleVacancyStatus(ctx context.Context, id int, active bool) error {
	return q.runMutation(ctx, cache.FamilyVacancies, "toggle-status", id, "could not change the vacancy status", func(ctx context.Context) error {
		return q.backend.Vacancies.ChangeStatus(ctx, id, active)
	})
}

// DeleteVacancy deletes the vacancy.
func (q *Queries) DeleteVacancy(ctx context.Context, id int) error {
	return q.runMutation(ctx, cache.FamilyVacancies, "delete", id, "could not delete the vacancy", func(ctx context.Context) error {
		return q.backend.Vacancies.Delete(ctx, id)
	})
}
