package query

import (
	"context"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/models"
)

// PageFetch is a cached paginated read, e.g. Queries.StepsPage.
type PageFetch[T any] func(ctx context.Context, p api.ListParams) (*models.Page[T], error)

// Pager tracks the currently viewed page of one filtered list. After a
// delete shrinks the collection, Reload steps back until it finds items
// or reaches page 1.
type Pager[T any] struct {
	params api.ListParams
	fetch  PageFetch[T]
}

// NewPager creates a pager starting at the page in params (floor 1).
func NewPager[T any](params api.ListParams, fetch PageFetch[T]) *Pager[T] {
	if params.PageNumber < 1 {
		params.PageNumber = 1
	}
	return &Pager[T]{params: params, fetch: fetch}
}

// Params returns the current filter, including the current page number.
func (p *Pager[T]) Params() api.ListParams {
	return p.params
}

// Current fetches the current page.
func (p *Pager[T]) Current(ctx context.Context) (*models.Page[T], error) {
	return p.fetch(ctx, p.params)
}

// Next advances one page and fetches it.
func (p *Pager[T]) Next(ctx context.Context) (*models.Page[T], error) {
	p.params.PageNumber++
	return p.fetch(ctx, p.params)
}

// Prev steps back one page (floor 1) and fetches it.
func (p *Pager[T]) Prev(ctx context.Context) (*models.Page[T], error) {
	if p.params.PageNumber > 1 {
		p.params.PageNumber--
	}
	return p.fetch(ctx, p.params)
}

// Reload refetches the current page. When the page came back empty and
// we are past page 1 (the page no longer exists because the collection
// shrank), it steps back one page at a time until items are found or
// page 1 is reached.
func (p *Pager[T]) Reload(ctx context.Context) (*models.Page[T], error) {
	for {
		page, err := p.fetch(ctx, p.params)
		if err != nil {
			return nil, err
		}
		if !page.Empty() || p.params.PageNumber <= 1 {
			return page, nil
		}
		p.params.PageNumber--
	}
}
