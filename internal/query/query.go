// Package query exposes the typed read and write bindings over the
// request cache: per-entity list/detail/all reads, mutations with
// family-wide invalidation, pagination helpers, reorder sessions and
// draft value lists. Presentation code consumes this package only.
package query

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/logger"
	"github.com/hrsuite/cvadmin/internal/models"
)

// Notifier surfaces mutation failures to the admin. Failures are never
// silent: the server-provided message is shown when present.
type Notifier interface {
	Notify(message string)
}

// NopNotifier drops notifications. Used in tests.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}

// Recorder records each mutation attempt for local diagnostics. Recording
// must never fail the mutation itself.
type Recorder interface {
	RecordMutation(entity, operation string, targetID int, err error)
}

// Queries binds the entity services to the shared request cache.
type Queries struct {
	backend Backend
	cache   *cache.Cache
	notify  Notifier
	record  Recorder
	log     *logrus.Logger
}

// Options configures optional collaborators of Queries.
type Options struct {
	Notifier Notifier
	Recorder Recorder
	Logger   *logrus.Logger
}

// New creates the query layer over the given backend with a fresh cache.
func New(b Backend, opts Options) *Queries {
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	return &Queries{
		backend: b,
		cache:   cache.New(),
		notify:  opts.Notifier,
		record:  opts.Recorder,
		log:     opts.Logger,
	}
}

// Cache exposes the underlying cache (tests and diagnostics).
func (q *Queries) Cache() *cache.Cache {
	return q.cache
}

// runMutation performs one write round trip: on success the entity's
// dependent families are invalidated wholesale; cached lists are never
// spliced optimistically. On failure the server message is surfaced.
func (q *Queries) runMutation(ctx context.Context, fam cache.Family, op string, targetID int, fallback string, fn func(context.Context) error) error {
	err := fn(ctx)
	if q.record != nil {
		q.record.RecordMutation(string(fam), op, targetID, err)
	}
	if err != nil {
		q.log.WithError(err).WithFields(logrus.Fields{
			"entity":    fam,
			"operation": op,
			"target":    targetID,
		}).Error("mutation failed")
		q.notify.Notify(api.UserMessage(err, fallback))
		return err
	}
	q.cache.Invalidate(cache.WriteInvalidates(fam)...)
	return nil
}

// listPaged reads one page through the cache, keyed by the complete
// filter object. When the page is exactly full, the next page is probed
// speculatively to decide HasNextPage instead of trusting the server
// flag; a short page always reports no next page.
func listPaged[T any](ctx context.Context, q *Queries, fam cache.Family, p api.ListParams, fetch func(context.Context, api.ListParams) (*models.Page[T], error)) (*models.Page[T], error) {
	page, err := fetchPageCached(ctx, q, fam, p, fetch)
	if err != nil {
		return nil, err
	}

	out := *page
	out.HasPreviousPage = p.PageNumber > 1

	if p.PageSize <= 0 || len(page.Items) != p.PageSize {
		out.HasNextPage = false
		return &out, nil
	}

	next, err := fetchPageCached(ctx, q, fam, p.WithPage(p.PageNumber+1), fetch)
	if err != nil {
		// Probe failure: keep the server-provided flag rather than
		// failing the primary read.
		q.log.WithError(err).WithField("entity", fam).Warn("look-ahead probe failed")
		return &out, nil
	}
	out.HasNextPage = !next.Empty()
	return &out, nil
}

func fetchPageCached[T any](ctx context.Context, q *Queries, fam cache.Family, p api.ListParams, fetch func(context.Context, api.ListParams) (*models.Page[T], error)) (*models.Page[T], error) {
	v, err := q.cache.Fetch(ctx, cache.ListKey(fam, p), func(ctx context.Context) (interface{}, error) {
		return fetch(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Page[T]), nil
}

// listAll reads an unpaginated scope through the cache.
func listAll[T any](ctx context.Context, q *Queries, key cache.Key, fetch func(context.Context) ([]T, error)) ([]T, error) {
	v, err := q.cache.Fetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// detail reads a single entity through the cache. A missing entity is a
// cached nil, not an error.
func detail[T any](ctx context.Context, q *Queries, key cache.Key, fetch func(context.Context) (*T, error)) (*T, error) {
	v, err := q.cache.Fetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}
