package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stars_admin/internal/domain/content/model"
	postclient "stars_admin/internal/domain/post/client"
	reportmodel "stars_admin/internal/domain/report/model"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/cache"
)

// Resource tag for reel cache entries.
const Resource = "reels"

// ContentClient reads and moderates reels through the reel service.
type ContentClient interface {
	// ListReels returns one page of reels. The endpoint reports no total
	// count; callers track pagination with a Tracker.
	ListReels(ctx context.Context, sess *session.Session, page, limit int) ([]model.ContentItem, error)
	GetReel(ctx context.Context, sess *session.Session, id string) (*model.ContentItem, error)
	DeleteReel(ctx context.Context, sess *session.Session, id string) error
	ReelReports(ctx context.Context, sess *session.Session, reelID string) (*reportmodel.ReportsResponse, error)
	MostLiked(ctx context.Context, sess *session.Session) ([]model.ContentItem, error)
}

type contentClient struct {
	upstream *upstream.Client
}

// NewContentClient creates the reel-service client.
func NewContentClient(up *upstream.Client) ContentClient {
	return &contentClient{upstream: up}
}

func (c *contentClient) ListReels(ctx context.Context, sess *session.Session, page, limit int) ([]model.ContentItem, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var items []model.ContentItem
	err := c.upstream.GetJSON(ctx, sess, Resource, "/reel/many", query, &items,
		cache.ResourceTag(Resource))
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *contentClient) GetReel(ctx context.Context, sess *session.Session, id string) (*model.ContentItem, error) {
	var item model.ContentItem
	err := c.upstream.GetJSON(ctx, sess, Resource, "/reel/"+id, nil, &item,
		cache.EntityTag(Resource, id))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *contentClient) DeleteReel(ctx context.Context, sess *session.Session, id string) error {
	err := c.upstream.Do(ctx, sess, Resource, http.MethodDelete, "/reel/"+id, nil)
	if err != nil {
		return fmt.Errorf("delete reel: %w", err)
	}
	// A deletion also shifts the platform-wide counts.
	return c.upstream.Bus().Invalidate(ctx,
		cache.EntityTag(Resource, id),
		cache.ResourceTag(postclient.StatsResource))
}

func (c *contentClient) ReelReports(ctx context.Context, sess *session.Session, reelID string) (*reportmodel.ReportsResponse, error) {
	query := url.Values{}
	query.Set("reportedEntityType", reportmodel.EntityReel)
	query.Set("reportedEntityId", reelID)

	// The endpoint returns a bare list; wrap it with its length as total.
	var reports []reportmodel.Report
	err := c.upstream.GetJSON(ctx, sess, Resource, "/reel/report", query, &reports,
		cache.EntityTag(Resource, reelID))
	if err != nil {
		return nil, err
	}
	return &reportmodel.ReportsResponse{Data: reports, Total: len(reports)}, nil
}

func (c *contentClient) MostLiked(ctx context.Context, sess *session.Session) ([]model.ContentItem, error) {
	var items []model.ContentItem
	err := c.upstream.GetJSON(ctx, sess, Resource, "/reel/analytics/liked", nil, &items,
		cache.ResourceTag(Resource))
	if err != nil {
		return nil, err
	}
	return items, nil
}
