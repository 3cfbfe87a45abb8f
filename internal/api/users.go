package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hrsuite/cvadmin/internal/models"
)

// UserService manages administrative user records.
type UserService struct {
	client *Client
}

// UserInput is the write shape for creating and replacing a user.
type UserInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname,omitempty"`
	FinCode string `json:"finCode"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Status  bool   `json:"status"`
}

// List returns one page of users matching the filter.
func (s *UserService) List(ctx context.Context, p ListParams) (*models.Page[models.User], error) {
	var page models.Page[models.User]
	ok, err := s.client.get(ctx, "/users", p.values(), &page)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if !ok {
		return emptyPage[models.User](p), nil
	}
	return &page, nil
}

// Get returns the user by id, or nil when it does not exist.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	ok, err := s.client.get(ctx, "/users/"+strconv.Itoa(id), nil, &user)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Create creates a new user.
func (s *UserService) Create(ctx context.Context, in UserInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPost, "/users", nil, &in); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update fully replaces the user with id.
func (s *UserService) Update(ctx context.Context, id int, in UserInput) error {
	if _, err := s.client.doJSON(ctx, http.MethodPut, "/users/"+strconv.Itoa(id), nil, &in); err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

// ChangeStatus sets the status flag to an absolute value.
func (s *UserService) ChangeStatus(ctx context.Context, id int, active bool) error {
	path := "/users/" + strconv.Itoa(id) + "/status"
	if _, err := s.client.doJSON(ctx, http.MethodPatch, path, nil, &statusRequest{IsActive: active}); err != nil {
		return fmt.Errorf("change user %d status: %w", id, err)
	}
	return nil
}

// Delete removes the user by id.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.doJSON(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
