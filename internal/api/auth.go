package api

import (
	"context"
	"fmt"
	"net/http"
)

// AuthService handles login against the backend. Logout is client-side
// token eviction and has no endpoint.
type AuthService struct {
	client *Client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token and stores it in the
// session.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	raw, err := s.client.doJSON(ctx, http.MethodPost, "/auth/login", nil, &loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	var resp loginResponse
	if err := decodePayload(raw, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return fmt.Errorf("login: server returned no token")
	}
	return s.client.sess.SetToken(resp.Token)
}
