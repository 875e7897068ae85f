package service

import (
	"context"

	"stars_admin/internal/domain/post/client"
	"stars_admin/internal/domain/post/model"
	reportmodel "stars_admin/internal/domain/report/model"
	"stars_admin/internal/pkg/session"
	"stars_admin/pkg/pagination"
)

// ListResult is one rendered page of the posts list.
type ListResult struct {
	Posts      []model.Post `json:"posts"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}

// PostService runs the posts half of the moderation pipeline: fetch a page,
// filter and sort it locally, report pagination bounds.
type PostService interface {
	List(ctx context.Context, sess *session.Session, page pagination.Pagination, criteria Criteria, sortSpec SortSpec) (*ListResult, error)
	Reports(ctx context.Context, sess *session.Session, postID string) ([]reportmodel.Report, error)
	Stats(ctx context.Context, sess *session.Session) (*model.Stats, error)
}

type postService struct {
	client client.PostClient
}

// NewPostService creates the posts pipeline service.
func NewPostService(c client.PostClient) PostService {
	return &postService{client: c}
}

func (s *postService) List(ctx context.Context, sess *session.Session, page pagination.Pagination, criteria Criteria, sortSpec SortSpec) (*ListResult, error) {
	_, limit := page.Normalize()
	requested := page.Page

	resp, err := s.client.ListPosts(ctx, sess, requested, limit)
	if err != nil {
		return nil, err
	}

	totalPages := pagination.TotalPages(resp.Total, limit)
	if clamped := pagination.Clamp(requested, totalPages); clamped != requested {
		// The requested page fell past the end; fetch the last page instead.
		requested = clamped
		resp, err = s.client.ListPosts(ctx, sess, requested, limit)
		if err != nil {
			return nil, err
		}
	}

	filtered := Filter(resp.Data, criteria)
	Sort(filtered, sortSpec)

	return &ListResult{
		Posts:      filtered,
		Total:      resp.Total,
		Page:       requested,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *postService) Reports(ctx context.Context, sess *session.Session, postID string) ([]reportmodel.Report, error) {
	return s.client.PostReports(ctx, sess, postID)
}

func (s *postService) Stats(ctx context.Context, sess *session.Session) (*model.Stats, error) {
	return s.client.Stats(ctx, sess)
}
