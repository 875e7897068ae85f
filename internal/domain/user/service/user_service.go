package service

import (
	"context"

	"stars_admin/internal/domain/user/client"
	"stars_admin/internal/domain/user/model"
	"stars_admin/internal/pkg/session"
	"stars_admin/pkg/pagination"
)

// ListResult is one rendered page of the users list. The auth service
// returns the full collection; filtering and windowing happen locally.
type ListResult struct {
	Users      []model.User `json:"users"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}

// UserService manages platform accounts from the dashboard.
type UserService interface {
	List(ctx context.Context, sess *session.Session, page pagination.Pagination, criteria Criteria, sortSpec SortSpec) (*ListResult, error)
	Get(ctx context.Context, sess *session.Session, id string) (*model.User, error)
	SetStatus(ctx context.Context, sess *session.Session, userID, status string) error
	Delete(ctx context.Context, sess *session.Session, userID string) error
}

type userService struct {
	client client.UserClient
}

// NewUserService creates the user management service.
func NewUserService(c client.UserClient) UserService {
	return &userService{client: c}
}

func (s *userService) List(ctx context.Context, sess *session.Session, page pagination.Pagination, criteria Criteria, sortSpec SortSpec) (*ListResult, error) {
	_, limit := page.Normalize()

	users, err := s.client.ListUsers(ctx, sess)
	if err != nil {
		return nil, err
	}

	filtered := Filter(users, criteria)
	Sort(filtered, sortSpec)

	total := int64(len(filtered))
	totalPages := pagination.TotalPages(total, limit)
	current := pagination.Clamp(page.Page, totalPages)

	start := (current - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return &ListResult{
		Users:      filtered[start:end],
		Total:      total,
		Page:       current,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *userService) Get(ctx context.Context, sess *session.Session, id string) (*model.User, error) {
	return s.client.GetUser(ctx, sess, id)
}

func (s *userService) SetStatus(ctx context.Context, sess *session.Session, userID, status string) error {
	return s.client.UpdateStatus(ctx, sess, userID, status)
}

func (s *userService) Delete(ctx context.Context, sess *session.Session, userID string) error {
	return s.client.DeleteUser(ctx, sess, userID)
}
