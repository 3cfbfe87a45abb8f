package query

import (
	"context"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/cache"
	"github.com/hrsuite/cvadmin/internal/models"
)

// UsersPage returns one cached page of users.
func (q *Queries) UsersPage(ctx context.Context, p api.ListParams) (*models.Page[models.User], error) {
	return listPaged(ctx, q, cache.FamilyUsers, p, q.backend.Users.List)
}

// User returns the user by id, or nil when it does not exist.
func (q *Queries) User(ctx context.Context, id int) (*models.User, error) {
	return detail(ctx, q, cache.DetailKey(cache.FamilyUsers, id), func(ctx context.Context) (*models.User, error) {
		return q.backend.Users.Get(ctx, id)
	})
}

// CreateUser creates an administrative user.
func (q *Queries) CreateUser(ctx context.Context, in api.UserInput) error {
	return q.runMutation(ctx, cache.FamilyUsers, "create", 0, "could not create the user", func(ctx context.Context) error {
		return q.backend.Users.Create(ctx, in)
	})
}

// UpdateUser fully replaces the user.
func (q *Queries) UpdateUser(ctx context.Context, id int, in api.UserInput) error {
	return q.runMutation(ctx, cache.FamilyUsers, "update", id, "could not update the user", func(ctx context.Context) error {
		return q.backend.Users.Update(ctx, id, in)
	})
}

// ToggleUserStatus sets the user's status flag to an absolute value.
func (q *Queries) ToggleUserStatus(ctx context.Context, id int, active bool) error {
	return q.runMutation(ctx, cache.FamilyUsers, "toggle-status", id, "could not change the user status", func(ctx context.Context) error {
		return q.backend.Users.ChangeStatus(ctx, id, active)
	})
}

// DeleteUser deletes the user.
func (q *Queries) DeleteUser(ctx context.Context, id int) error {
	return q.runMutation(ctx, cache.FamilyUsers, "delete", id, "could not delete the user", func(ctx context.Context) error {
		return q.backend.Users.Delete(ctx, id)
	})
}
