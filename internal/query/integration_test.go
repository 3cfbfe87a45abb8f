package query

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/logger"
	"github.com/hrsuite/cvadmin/internal/models"
	"github.com/hrsuite/cvadmin/internal/session"
)

// stepServer is a minimal in-memory backend speaking the wire envelope,
// used to exercise the full client -> query path.
type stepServer struct {
	mux      *http.ServeMux
	steps    []models.Step
	requests int
}

func newStepServer(n int) *stepServer {
	s := &stepServer{mux: http.NewServeMux()}
	for i := 1; i <= n; i++ {
		s.steps = append(s.steps, models.Step{
			ID: i, Type: models.ContextCV, SortOrder: i, IsActive: true,
			Translations: []models.Translation{{Language: "en", Title: fmt.Sprintf("Step %d", i)}},
		})
	}

	s.mux.HandleFunc("GET /api/v1/steps", func(w http.ResponseWriter, r *http.Request) {
		s.requests++
		num, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
		size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
		start := (num - 1) * size
		end := start + size
		if start > len(s.steps) {
			start = len(s.steps)
		}
		if end > len(s.steps) {
			end = len(s.steps)
		}
		s.respond(w, models.Page[models.Step]{
			Items: s.steps[start:end], PageNumber: num, PageSize: size, TotalCount: len(s.steps),
		})
	})
	s.mux.HandleFunc("PATCH /api/v1/steps/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		s.requests++
		id, _ := strconv.Atoi(r.PathValue("id"))
		var req struct {
			IsActive bool `json:"isActive"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		for i := range s.steps {
			if s.steps[i].ID == id {
				s.steps[i].IsActive = req.IsActive
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	s.mux.HandleFunc("DELETE /api/v1/steps/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.requests++
		id, _ := strconv.Atoi(r.PathValue("id"))
		for i := range s.steps {
			if s.steps[i].ID == id {
				s.steps = append(s.steps[:i], s.steps[i+1:]...)
				break
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	return s
}

func (s *stepServer) respond(w http.ResponseWriter, payload interface{}) {
	data, _ := json.Marshal(payload)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"responseValue": json.RawMessage(data),
		"statusCode":    200,
	})
}

func TestEndToEnd_BrowseMutateReload(t *testing.T) {
	backend := newStepServer(6)
	srv := httptest.NewServer(backend.mux)
	t.Cleanup(srv.Close)

	sess, err := session.Load("")
	require.NoError(t, err)
	client := api.NewClient(srv.URL, sess, logger.Discard())
	client.SetRetryPolicies(
		&api.RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond, RetryOn4xx: true},
		&api.RetryPolicy{MaxAttempts: 2, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond},
	)
	q := New(NewBackend(client), Options{})
	ctx := context.Background()

	pager := NewPager(api.ListParams{PageNumber: 2, PageSize: 5}, q.StepsPage)
	page, err := pager.Current(ctx)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)

	// Repeat read is served from the cache.
	before := backend.requests
	_, err = pager.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, backend.requests)

	// Toggle invalidates; the next read round-trips and sees the change.
	require.NoError(t, q.ToggleStepStatus(ctx, 6, false))
	page, err = pager.Current(ctx)
	require.NoError(t, err)
	assert.False(t, page.Items[0].IsActive)

	// Deleting the last item of page 2 steps the pager back to page 1.
	require.NoError(t, q.DeleteStep(ctx, 6))
	page, err = pager.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pager.Params().PageNumber)
	assert.Len(t, page.Items, 5)
	assert.False(t, page.HasNextPage) // look-ahead probe found page 2 empty
}
