// Package api implements the HTTP transport client and the per-entity
// services for the cvadmin backend. Services do pure wire mapping;
// caching lives in the query layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hrsuite/cvadmin/internal/session"
)

// Client is the HTTP client for the cvadmin backend. Every request
// carries the bearer token and the Accept-Language locale from the
// injected session.
type Client struct {
	baseURL    string
	sess       *session.Session
	httpClient *http.Client
	log        *logrus.Logger
	retry      *retrier

	Auth       *AuthService
	Steps      *StepService
	Sections   *SectionService
	Attributes *AttributeService
	Values     *ValueService
	Resumes    *ResumeService
	Vacancies  *VacancyService
	Users      *UserService
}

// NewClient creates a client for the given base URL and session.
func NewClient(baseURL string, sess *session.Session, log *logrus.Logger) *Client {
	c := &Client{
		baseURL:    baseURL,
		sess:       sess,
		httpClient: &http.Client{},
		log:        log,
		retry:      newRetrier(nil, nil),
	}
	c.Auth = &AuthService{client: c}
	c.Steps = &StepService{client: c}
	c.Sections = &SectionService{client: c}
	c.Attributes = &AttributeService{client: c}
	c.Values = &ValueService{client: c}
	c.Resumes = &ResumeService{client: c}
	c.Vacancies = &VacancyService{client: c}
	c.Users = &UserService{client: c}
	return c
}

// SetRetryPolicies overrides the read/write retry policies. Nil keeps the
// defaults. Used by tests to shrink backoff.
func (c *Client) SetRetryPolicies(read, write *RetryPolicy) {
	c.retry = newRetrier(read, write)
}

func (c *Client) apiURL(path string, query url.Values) string {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept-Language", c.sess.Locale())
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// doJSON performs one JSON round trip and returns the envelope payload.
// A missing responseValue yields a nil payload, never an error. Retries
// are applied per the policy matching the HTTP method.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody interface{}) (json.RawMessage, error) {
	var encoded []byte
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		encoded = data
	}

	rawURL := c.apiURL(path, query)
	policy := c.retry.policyFor(method)

	var payload json.RawMessage
	err := c.retry.run(ctx, policy, method+" "+path, func() error {
		var body io.Reader
		if encoded != nil {
			body = bytes.NewReader(encoded)
		}
		raw, err := c.roundTrip(ctx, method, rawURL, body, map[string]string{
			"Content-Type": "application/json",
		})
		if err != nil {
			return err
		}
		payload = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) roundTrip(ctx context.Context, method, rawURL string, body io.Reader, headers map[string]string) (json.RawMessage, error) {
	resp, err := c.do(ctx, method, rawURL, body, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := decodeError(resp)
		if resp.StatusCode == http.StatusUnauthorized {
			// Token is no longer valid; evict it. Redirecting to a
			// login flow is the caller's concern.
			if clearErr := c.sess.Clear(); clearErr != nil {
				c.log.WithError(clearErr).Warn("failed to clear session after 401")
			}
		}
		return nil, apiErr
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if err == io.EOF {
			return nil, nil // empty body, e.g. a bare 200 on delete
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return env.ResponseValue, nil
}

// doMultipart uploads a single file as multipart/form-data. The body is
// buffered so the write retry policy can replay it.
func (c *Client) doMultipart(ctx context.Context, path string, query url.Values, field, filename string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize form: %w", err)
	}

	rawURL := c.apiURL(path, query)
	data := buf.Bytes()

	return c.retry.run(ctx, c.retry.write, "POST "+path, func() error {
		_, err := c.roundTrip(ctx, http.MethodPost, rawURL, bytes.NewReader(data), map[string]string{
			"Content-Type": mw.FormDataContentType(),
		})
		return err
	})
}

// get decodes the envelope payload of a GET into out. When the payload is
// missing, out is left untouched and ok is false.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) (bool, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return false, err
	}
	if isEmptyPayload(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode payload: %w", err)
	}
	return true, nil
}
