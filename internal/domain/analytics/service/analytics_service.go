package service

import (
	"context"

	contentclient "stars_admin/internal/domain/content/client"
	contentmodel "stars_admin/internal/domain/content/model"
	postclient "stars_admin/internal/domain/post/client"
	postmodel "stars_admin/internal/domain/post/model"
	userclient "stars_admin/internal/domain/user/client"
	"stars_admin/internal/pkg/session"
)

// fetchLimit caps how many posts a single analytics pass reduces over.
const fetchLimit = 100

// Overview bundles the platform counters with the headline rankings.
type Overview struct {
	Stats        postmodel.Stats            `json:"stats"`
	MostReported []ReportedItem             `json:"mostReported"`
	MostLiked    []contentmodel.ContentItem `json:"mostLiked"`
}

// Engagement bundles the creator ranking with the reported-content shortlist.
type Engagement struct {
	TopCreators  []TopCreator   `json:"topCreators"`
	MostReported []ReportedItem `json:"mostReported"`
}

// UserCharts holds the user-base histograms.
type UserCharts struct {
	TotalUsers    int           `json:"totalUsers"`
	Registrations []BucketCount `json:"registrations"`
	Genders       []BucketCount `json:"genders"`
	Followers     []BucketCount `json:"followers"`
	Reports       []BucketCount `json:"reports"`
}

type AnalyticsService interface {
	Overview(ctx context.Context, sess *session.Session) (*Overview, error)
	Engagement(ctx context.Context, sess *session.Session) (*Engagement, error)
	UserCharts(ctx context.Context, sess *session.Session) (*UserCharts, error)
}

type analyticsService struct {
	users   userclient.UserClient
	posts   postclient.PostClient
	content contentclient.ContentClient
}

func NewAnalyticsService(users userclient.UserClient, posts postclient.PostClient, content contentclient.ContentClient) AnalyticsService {
	return &analyticsService{users: users, posts: posts, content: content}
}

func (s *analyticsService) Overview(ctx context.Context, sess *session.Session) (*Overview, error) {
	stats, err := s.posts.Stats(ctx, sess)
	if err != nil {
		return nil, err
	}
	page, err := s.posts.ListPosts(ctx, sess, 1, fetchLimit)
	if err != nil {
		return nil, err
	}
	liked, err := s.content.MostLiked(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(liked) > 5 {
		liked = liked[:5]
	}
	return &Overview{
		Stats:        *stats,
		MostReported: MostReportedPosts(page.Data, 5),
		MostLiked:    liked,
	}, nil
}

func (s *analyticsService) Engagement(ctx context.Context, sess *session.Session) (*Engagement, error) {
	page, err := s.posts.ListPosts(ctx, sess, 1, fetchLimit)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &Engagement{
		TopCreators:  TopCreators(page.Data, users, 5),
		MostReported: MostReportedPosts(page.Data, 3),
	}, nil
}

func (s *analyticsService) UserCharts(ctx context.Context, sess *session.Session) (*UserCharts, error) {
	users, err := s.users.ListUsers(ctx, sess)
	if err != nil {
		return nil, err
	}
	page, err := s.posts.ListPosts(ctx, sess, 1, fetchLimit)
	if err != nil {
		return nil, err
	}
	return &UserCharts{
		TotalUsers:    len(users),
		Registrations: MonthlyRegistrations(users),
		Genders:       GenderDistribution(users),
		Followers:     FollowerRanges(users),
		Reports:       ReportRanges(page.Data),
	}, nil
}
