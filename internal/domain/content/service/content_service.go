package service

import (
	"context"
	"sync"

	"stars_admin/internal/domain/content/client"
	"stars_admin/internal/domain/content/model"
	reportmodel "stars_admin/internal/domain/report/model"
	"stars_admin/internal/pkg/session"
	"stars_admin/pkg/pagination"
)

// ListResult is one rendered page of the reels list. The reel endpoint
// reports no total count, so TotalSeen is the client-accumulated running
// total and HasNext is inferred from the page length.
type ListResult struct {
	Items     []model.ContentItem `json:"items"`
	Page      int                 `json:"page"`
	Limit     int                 `json:"limit"`
	TotalSeen int                 `json:"totalSeen"`
	HasNext   bool                `json:"hasNext"`
}

// ContentService runs the reels half of the moderation pipeline.
type ContentService interface {
	List(ctx context.Context, sess *session.Session, page pagination.Pagination, criteria Criteria, sortSpec SortSpec) (*ListResult, error)
	Get(ctx context.Context, sess *session.Session, id string) (*model.ContentItem, error)
	Reports(ctx context.Context, sess *session.Session, reelID string) (*reportmodel.ReportsResponse, error)
	MostLiked(ctx context.Context, sess *session.Session) ([]model.ContentItem, error)
}

type contentService struct {
	client client.ContentClient

	// One tracker per admin: the running total is list-browsing state,
	// not shared between operators.
	mu       sync.Mutex
	trackers map[string]*pagination.Tracker
}

// NewContentService creates the reels pipeline service.
func NewContentService(c client.ContentClient) ContentService {
	return &contentService{
		client:   c,
		trackers: make(map[string]*pagination.Tracker),
	}
}

func (s *contentService) tracker(sess *session.Session, limit int) *pagination.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[sess.UserID]
	if !ok || t.PageSize() != limit {
		// A changed page size invalidates the running count.
		t = pagination.NewTracker(limit)
		s.trackers[sess.UserID] = t
	}
	return t
}

func (s *contentService) List(ctx context.Context, sess *session.Session, page pagination.Pagination, criteria Criteria, sortSpec SortSpec) (*ListResult, error) {
	_, limit := page.Normalize()
	requested := page.Page

	items, err := s.client.ListReels(ctx, sess, requested, limit)
	if err != nil {
		return nil, err
	}

	tracker := s.tracker(sess, limit)
	tracker.Observe(requested, len(items))

	filtered := Filter(items, criteria)
	Sort(filtered, sortSpec)

	return &ListResult{
		Items:     filtered,
		Page:      requested,
		Limit:     limit,
		TotalSeen: tracker.TotalSeen(),
		HasNext:   tracker.HasNext(),
	}, nil
}

func (s *contentService) Get(ctx context.Context, sess *session.Session, id string) (*model.ContentItem, error) {
	return s.client.GetReel(ctx, sess, id)
}

func (s *contentService) Reports(ctx context.Context, sess *session.Session, reelID string) (*reportmodel.ReportsResponse, error) {
	return s.client.ReelReports(ctx, sess, reelID)
}

func (s *contentService) MostLiked(ctx context.Context, sess *session.Session) ([]model.ContentItem, error) {
	return s.client.MostLiked(ctx, sess)
}
