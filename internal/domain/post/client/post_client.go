package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stars_admin/internal/domain/post/model"
	reportmodel "stars_admin/internal/domain/report/model"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/cache"
)

// Resource tags for post cache entries.
const (
	Resource      = "posts"
	StatsResource = "stats"
)

// PostClient reads and moderates posts through the social service.
type PostClient interface {
	ListPosts(ctx context.Context, sess *session.Session, page, limit int) (*model.PostsResponse, error)
	PostReports(ctx context.Context, sess *session.Session, postID string) ([]reportmodel.Report, error)
	ApprovePost(ctx context.Context, sess *session.Session, postID string) error
	RejectPost(ctx context.Context, sess *session.Session, postID string) error
	DeletePost(ctx context.Context, sess *session.Session, postID string) error
	Stats(ctx context.Context, sess *session.Session) (*model.Stats, error)
}

type postClient struct {
	upstream *upstream.Client
}

// NewPostClient creates the social-service client.
func NewPostClient(up *upstream.Client) PostClient {
	return &postClient{upstream: up}
}

func (c *postClient) ListPosts(ctx context.Context, sess *session.Session, page, limit int) (*model.PostsResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var resp model.PostsResponse
	err := c.upstream.GetJSON(ctx, sess, Resource, "/social/posts", query, &resp,
		cache.ResourceTag(Resource))
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// postReportsResponse matches the social service's report envelope.
type postReportsResponse struct {
	Report []reportmodel.Report `json:"report"`
}

func (c *postClient) PostReports(ctx context.Context, sess *session.Session, postID string) ([]reportmodel.Report, error) {
	var resp postReportsResponse
	err := c.upstream.GetJSON(ctx, sess, Resource, "/social/posts/"+postID+"/reports", nil, &resp,
		cache.EntityTag(Resource, postID))
	if err != nil {
		return nil, err
	}
	return resp.Report, nil
}

func (c *postClient) ApprovePost(ctx context.Context, sess *session.Session, postID string) error {
	err := c.upstream.Do(ctx, sess, Resource, http.MethodPost, "/social/posts/"+postID+"/approve", nil)
	if err != nil {
		return fmt.Errorf("approve post: %w", err)
	}
	return c.upstream.Bus().Invalidate(ctx, cache.EntityTag(Resource, postID))
}

func (c *postClient) RejectPost(ctx context.Context, sess *session.Session, postID string) error {
	err := c.upstream.Do(ctx, sess, Resource, http.MethodPost, "/social/posts/"+postID+"/reject", nil)
	if err != nil {
		return fmt.Errorf("reject post: %w", err)
	}
	return c.upstream.Bus().Invalidate(ctx, cache.EntityTag(Resource, postID))
}

func (c *postClient) DeletePost(ctx context.Context, sess *session.Session, postID string) error {
	err := c.upstream.Do(ctx, sess, Resource, http.MethodDelete, "/social/posts/"+postID, nil)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	// A deletion also shifts the platform-wide counts.
	return c.upstream.Bus().Invalidate(ctx,
		cache.EntityTag(Resource, postID),
		cache.ResourceTag(StatsResource))
}

func (c *postClient) Stats(ctx context.Context, sess *session.Session) (*model.Stats, error) {
	var stats model.Stats
	err := c.upstream.GetJSON(ctx, sess, StatsResource, "/social/stats", nil, &stats,
		cache.ResourceTag(StatsResource))
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
