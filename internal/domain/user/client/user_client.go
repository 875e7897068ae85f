package client

import (
	"context"
	"fmt"
	"net/http"

	"stars_admin/internal/domain/user/model"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/cache"
)

// Resource tag for user cache entries.
const Resource = "users"

// UserClient reads and mutates accounts through the auth service.
type UserClient interface {
	ListUsers(ctx context.Context, sess *session.Session) ([]model.User, error)
	GetUser(ctx context.Context, sess *session.Session, id string) (*model.User, error)
	UpdateStatus(ctx context.Context, sess *session.Session, userID, status string) error
	DeleteUser(ctx context.Context, sess *session.Session, userID string) error
}

type userClient struct {
	upstream *upstream.Client
}

// NewUserClient creates the auth-service client.
func NewUserClient(up *upstream.Client) UserClient {
	return &userClient{upstream: up}
}

func (c *userClient) ListUsers(ctx context.Context, sess *session.Session) ([]model.User, error) {
	var users []model.User
	err := c.upstream.GetJSON(ctx, sess, Resource, "/auth/users", nil, &users,
		cache.ResourceTag(Resource))
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (c *userClient) GetUser(ctx context.Context, sess *session.Session, id string) (*model.User, error) {
	var user model.User
	err := c.upstream.GetJSON(ctx, sess, Resource, "/auth/user/"+id, nil, &user,
		cache.EntityTag(Resource, id))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type updateStatusRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

func (c *userClient) UpdateStatus(ctx context.Context, sess *session.Session, userID, status string) error {
	err := c.upstream.Do(ctx, sess, Resource, http.MethodPut, "/auth/updateprofile",
		updateStatusRequest{UserID: userID, Status: status})
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	return c.upstream.Bus().Invalidate(ctx, cache.EntityTag(Resource, userID))
}

func (c *userClient) DeleteUser(ctx context.Context, sess *session.Session, userID string) error {
	err := c.upstream.Do(ctx, sess, Resource, http.MethodDelete, "/auth/users/"+userID, nil)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return c.upstream.Bus().Invalidate(ctx, cache.EntityTag(Resource, userID))
}
