package api

import (
	"net/url"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// ListParams is the complete filter object for paginated list reads. The
// cache keys list results by the whole struct, so two different filter
// combinations never collide.
type ListParams struct {
	PageNumber int                `json:"pageNumber"`
	PageSize   int                `json:"pageSize"`
	Search     string             `json:"search,omitempty"`
	IsActive   *bool              `json:"isActive,omitempty"`
	Type       models.ContextType `json:"type,omitempty"`
	StepID     int                `json:"stepId,omitempty"`
}

// WithPage returns a copy of p pointed at the given page number.
func (p ListParams) WithPage(page int) ListParams {
	p.PageNumber = page
	return p
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	q.Set("pageNumber", strconv.Itoa(p.PageNumber))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*p.IsActive))
	}
	if p.Type != 0 {
		q.Set("type", strconv.Itoa(int(p.Type)))
	}
	if p.StepID != 0 {
		q.Set("stepId", strconv.Itoa(p.StepID))
	}
	return q
}

// emptyPage is the terminal state for a list read whose payload is
// missing: a valid page with no items.
func emptyPage[T any](p ListParams) *models.Page[T] {
	return &models.Page[T]{
		Items:      []T{},
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
