package query

import (
	"context"
	"io"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/models"
)

// ResumesPage returns one cached page of resumes.
func (q *Queries) ResumesPage(ctx context.Context, p api.ListParams) (*models.Page[models.ResumeItem], error) {
	return listPaged(ctx, q, cache.FamilyResumes, p, q.backend.Resumes.List)
}

// Resume returns the resume by id, or nil when it does not exist. A
// non-zero stepID is part of the cache key: the same id fetched under a
// different step projection is a different entry.
func (q *Queries) Resume(ctx context.Context, id, stepID int) (*models.ResumeItem, error) {
	key := cache.DetailKey(cache.FamilyResumes, id)
	if stepID != 0 {
		key = cache.ScopedDetailKey(cache.FamilyResumes, id, stepID)
	}
	return detail(ctx, q, key, func(ctx context.Context) (*models.ResumeItem, error) {
		return q.backend.Resumes.Get(ctx, id, stepID)
	})
}

// DeleteResume deletes the resume.
func (q *Queries) DeleteResume(ctx context.Context, id int) error {
	return q.runMutation(ctx, cache.FamilyResumes, "delete", id, "could not delete the resume", func(ctx context.Context) error {
		return q.backend.Resumes.Delete(ctx, id)
	})
}

// UploadResumeDocument attaches a document to the resume.
func (q *Queries) UploadResumeDocument(ctx context.Context, id int, filename string, r io.Reader) error {
	return q.runMutation(ctx, cache.FamilyResumes, "upload-document", id, "could not upload the document", func(ctx context.Context) error {
		return q.backend.Resumes.UploadDocument(ctx, id, filename, r)
	})
}
