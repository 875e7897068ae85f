package service

import (
	"context"
	"errors"
	"testing"

	auditmodel "stars_admin/internal/domain/audit/model"
	contentmodel "stars_admin/internal/domain/content/model"
	postmodel "stars_admin/internal/domain/post/model"
	reportmodel "stars_admin/internal/domain/report/model"
	"stars_admin/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockPostClient is a mock of client.PostClient
type MockPostClient struct {
	mock.Mock
}

func (m *MockPostClient) ListPosts(ctx context.Context, sess *session.Session, page, limit int) (*postmodel.PostsResponse, error) {
	args := m.Called(ctx, sess, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postmodel.PostsResponse), args.Error(1)
}

func (m *MockPostClient) PostReports(ctx context.Context, sess *session.Session, postID string) ([]reportmodel.Report, error) {
	args := m.Called(ctx, sess, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reportmodel.Report), args.Error(1)
}

func (m *MockPostClient) ApprovePost(ctx context.Context, sess *session.Session, postID string) error {
	args := m.Called(ctx, sess, postID)
	return args.Error(0)
}

func (m *MockPostClient) RejectPost(ctx context.Context, sess *session.Session, postID string) error {
	args := m.Called(ctx, sess, postID)
	return args.Error(0)
}

func (m *MockPostClient) DeletePost(ctx context.Context, sess *session.Session, postID string) error {
	args := m.Called(ctx, sess, postID)
	return args.Error(0)
}

func (m *MockPostClient) Stats(ctx context.Context, sess *session.Session) (*postmodel.Stats, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postmodel.Stats), args.Error(1)
}

// MockContentClient is a mock of client.ContentClient
type MockContentClient struct {
	mock.Mock
}

func (m *MockContentClient) ListReels(ctx context.Context, sess *session.Session, page, limit int) ([]contentmodel.ContentItem, error) {
	args := m.Called(ctx, sess, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contentmodel.ContentItem), args.Error(1)
}

func (m *MockContentClient) GetReel(ctx context.Context, sess *session.Session, id string) (*contentmodel.ContentItem, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentmodel.ContentItem), args.Error(1)
}

func (m *MockContentClient) DeleteReel(ctx context.Context, sess *session.Session, id string) error {
	args := m.Called(ctx, sess, id)
	return args.Error(0)
}

func (m *MockContentClient) ReelReports(ctx context.Context, sess *session.Session, reelID string) (*reportmodel.ReportsResponse, error) {
	args := m.Called(ctx, sess, reelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportmodel.ReportsResponse), args.Error(1)
}

func (m *MockContentClient) MostLiked(ctx context.Context, sess *session.Session) ([]contentmodel.ContentItem, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contentmodel.ContentItem), args.Error(1)
}

// MockNotifier is a mock of notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Success(title, message string) {
	m.Called(title, message)
}

func (m *MockNotifier) Error(title, message string) {
	m.Called(title, message)
}

// MockRecorder is a mock of Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Enqueue(record auditmodel.ActionRecord) {
	m.Called(record)
}

func adminSession() *session.Session {
	return &session.Session{UserID: "admin-1", Role: "admin", Token: "jwt-token"}
}

func TestDispatchApprovePostSuccess(t *testing.T) {
	posts := new(MockPostClient)
	reels := new(MockContentClient)
	notifier := new(MockNotifier)
	recorder := new(MockRecorder)
	selection := NewSelection()
	d := NewDispatcher(posts, reels, notifier, selection, recorder, zap.NewNop())

	sess := adminSession()
	target := Target{Entity: EntityPost, ID: "p1"}
	selection.Set(sess.UserID, target)

	posts.On("ApprovePost", mock.Anything, sess, "p1").Return(nil)
	notifier.On("Success", "Post approved", mock.Anything).Return()
	recorder.On("Enqueue", mock.MatchedBy(func(r auditmodel.ActionRecord) bool {
		return r.Outcome == auditmodel.OutcomeSuccess && r.EntityID == "p1" && r.Action == "approve"
	})).Return()

	err := d.Dispatch(context.Background(), sess, target, "approve")

	assert.NoError(t, err)
	_, open := selection.Get(sess.UserID)
	assert.False(t, open, "a successful action closes the detail view")
	posts.AssertExpectations(t)
	notifier.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestDispatchFailureKeepsSelection(t *testing.T) {
	posts := new(MockPostClient)
	reels := new(MockContentClient)
	notifier := new(MockNotifier)
	recorder := new(MockRecorder)
	selection := NewSelection()
	d := NewDispatcher(posts, reels, notifier, selection, recorder, zap.NewNop())

	sess := adminSession()
	target := Target{Entity: EntityPost, ID: "p2"}
	selection.Set(sess.UserID, target)

	posts.On("RejectPost", mock.Anything, sess, "p2").Return(errors.New("backend down"))
	notifier.On("Error", "Error", "An error occurred while processing the post.").Return()
	recorder.On("Enqueue", mock.MatchedBy(func(r auditmodel.ActionRecord) bool {
		return r.Outcome == auditmodel.OutcomeFailure
	})).Return()

	err := d.Dispatch(context.Background(), sess, target, "reject")

	assert.Error(t, err)
	_, open := selection.Get(sess.UserID)
	assert.True(t, open, "a failed action leaves the detail view open")
	assert.False(t, d.InFlight(target), "the in-flight flag clears on failure")
	notifier.AssertExpectations(t)
}

func TestDispatchUnknownActionIsNoop(t *testing.T) {
	posts := new(MockPostClient)
	reels := new(MockContentClient)
	notifier := new(MockNotifier)
	recorder := new(MockRecorder)
	selection := NewSelection()
	d := NewDispatcher(posts, reels, notifier, selection, recorder, zap.NewNop())

	sess := adminSession()
	target := Target{Entity: EntityPost, ID: "p3"}
	selection.Set(sess.UserID, target)

	recorder.On("Enqueue", mock.MatchedBy(func(r auditmodel.ActionRecord) bool {
		return r.Outcome == auditmodel.OutcomeSkipped && r.Action == "escalate"
	})).Return()

	err := d.Dispatch(context.Background(), sess, target, "escalate")

	assert.NoError(t, err)
	_, open := selection.Get(sess.UserID)
	assert.False(t, open, "an unknown action still closes the detail view")
	// No client call and no notification were made.
	posts.AssertExpectations(t)
	notifier.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestDispatchReelOnlySupportsDelete(t *testing.T) {
	posts := new(MockPostClient)
	reels := new(MockContentClient)
	notifier := new(MockNotifier)
	selection := NewSelection()
	d := NewDispatcher(posts, reels, notifier, selection, nil, zap.NewNop())

	sess := adminSession()
	target := Target{Entity: EntityReel, ID: "r1"}

	reels.On("DeleteReel", mock.Anything, sess, "r1").Return(nil)
	notifier.On("Success", "Reel deleted", mock.Anything).Return()

	assert.NoError(t, d.Dispatch(context.Background(), sess, target, "delete"))

	// Approve is not a reel mutation; it degrades to the unknown-action path.
	assert.NoError(t, d.Dispatch(context.Background(), sess, target, "approve"))
	reels.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestDispatchWithoutTokenSkips(t *testing.T) {
	posts := new(MockPostClient)
	reels := new(MockContentClient)
	notifier := new(MockNotifier)
	selection := NewSelection()
	d := NewDispatcher(posts, reels, notifier, selection, nil, zap.NewNop())

	target := Target{Entity: EntityPost, ID: "p4"}

	err := d.Dispatch(context.Background(), &session.Session{UserID: "admin-1"}, target, "approve")

	assert.NoError(t, err)
	posts.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestParseActionClosedSet(t *testing.T) {
	assert.Equal(t, ActionApprove, ParseAction("approve"))
	assert.Equal(t, ActionReject, ParseAction("reject"))
	assert.Equal(t, ActionDelete, ParseAction("delete"))
	assert.Equal(t, ActionUnknown, ParseAction("APPROVE"))
	assert.Equal(t, ActionUnknown, ParseAction("escalate"))
	assert.Equal(t, ActionUnknown, ParseAction(""))
}
