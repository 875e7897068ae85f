package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stars_admin/internal/domain/content/model"
	postclient "stars_admin/internal/domain/post/client"
	postmodel "stars_admin/internal/domain/post/model"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/cache"
)

func TestDeleteReelInvalidatesStats(t *testing.T) {
	var statsHits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/social/stats":
			atomic.AddInt64(&statsHits, 1)
			json.NewEncoder(w).Encode(postmodel.Stats{})
		case r.URL.Path == "/reel/many":
			json.NewEncoder(w).Encode([]model.ContentItem{{ID: "r1"}})
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	cacheSvc := cache.NewMemoryCache(128, time.Minute)
	bus := cache.NewInvalidationBus(cacheSvc, zap.NewNop())
	up := upstream.NewClient(srv.URL, srv.Client(), cacheSvc, bus, zap.NewNop())

	reels := NewContentClient(up)
	posts := postclient.NewPostClient(up)
	ctx := context.Background()
	sess := &session.Session{UserID: "admin-1", Role: "admin", Token: "jwt-abc"}

	_, err := posts.Stats(ctx, sess)
	require.NoError(t, err)
	_, err = posts.Stats(ctx, sess)
	require.NoError(t, err)
	assert.EqualValues(t, 1, statsHits, "second stats read should be cached")

	// Deleting a reel shifts the platform-wide counts, so the cached
	// stats must be refetched afterwards.
	require.NoError(t, reels.DeleteReel(ctx, sess, "r1"))

	_, err = posts.Stats(ctx, sess)
	require.NoError(t, err)
	assert.EqualValues(t, 2, statsHits)
}
