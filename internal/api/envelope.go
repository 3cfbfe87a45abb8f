package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// envelope is the wire response wrapper used by every read endpoint.
// responseValue is either a raw array, a single object, or a paginated
// collection envelope.
type envelope struct {
	ResponseValue json.RawMessage `json:"responseValue"`
	StatusCode    int             `json:"statusCode"`
	Message       string          `json:"message"`
}

// isEmptyPayload reports whether the payload should be treated as an
// empty result (missing responseValue is not an error).
func isEmptyPayload(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// decodePayload unmarshals a required payload into out; a missing
// payload is an error here (use Client.get for optional payloads).
func decodePayload(raw json.RawMessage, out interface{}) error {
	if isEmptyPayload(raw) {
		return fmt.Errorf("empty response payload")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// APIError is a structured error from the backend.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error (%d) %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// UserMessage extracts the server-provided message from err, or fallback
// when none is present. Mutation failures surface this to the admin.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func decodeError(resp *http.Response) error {
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return &APIError{
		Status:  resp.StatusCode,
		Code:    body.Error,
		Message: body.Message,
	}
}
