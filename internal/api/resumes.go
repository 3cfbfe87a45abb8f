package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// ResumeService reads and manages submitted candidate records.
type ResumeService struct {
	client *Client
}

// List returns one page of resumes matching the filter.
func (s *ResumeService) List(ctx context.Context, p ListParams) (*models.Page[models.ResumeItem], error) {
	var page models.Page[models.ResumeItem]
	ok, err := s.client.get(ctx, "/resumes", p.values(), &page)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	if !ok {
		return emptyPage[models.ResumeItem](p), nil
	}
	return &page, nil
}

// Get returns the resume by id, or nil when it does not exist. A non-zero
// stepID narrows the snapshot to one step's schema and values; the same
// id can therefore be fetched under different scope projections.
func (s *ResumeService) Get(ctx context.Context, id, stepID int) (*models.ResumeItem, error) {
	var q url.Values
	if stepID != 0 {
		q = url.Values{}
		q.Set("stepId", strconv.Itoa(stepID))
	}

	var item models.ResumeItem
	ok, err := s.client.get(ctx, "/resumes/"+strconv.Itoa(id), q, &item)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resume %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Delete removes the resume by id.
func (s *ResumeService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.doJSON(ctx, http.MethodDelete, "/resumes/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete resume %d: %w", id, err)
	}
	return nil
}

// UploadDocument attaches a document to the resume. This is the one
// multipart endpoint in the API.
func (s *ResumeService) UploadDocument(ctx context.Context, id int, filename string, r io.Reader) error {
	path := "/resumes/" + strconv.Itoa(id) + "/document"
	if err := s.client.doMultipart(ctx, path, nil, "file", filename, r); err != nil {
		return fmt.Errorf("upload document for resume %d: %w", id, err)
	}
	return nil
}
