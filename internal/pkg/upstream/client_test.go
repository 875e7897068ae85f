package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"stars_admin/internal/pkg/session"
	"stars_admin/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSession() *session.Session {
	return &session.Session{UserID: "admin-1", Role: "admin", Token: "jwt-abc"}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cacheSvc := cache.NewMemoryCache(128, time.Minute)
	bus := cache.NewInvalidationBus(cacheSvc, zap.NewNop())
	client := NewClient(srv.URL, srv.Client(), cacheSvc, bus, zap.NewNop())
	return client, srv
}

func TestGetJSONWithoutTokenIsSkipped(t *testing.T) {
	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))

	var dest map[string]interface{}
	err := client.GetJSON(context.Background(), &session.Session{UserID: "admin-1"}, "posts", "/social/posts", nil, &dest)

	assert.ErrorIs(t, err, ErrNoToken)
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits), "nothing was sent upstream")
}

func TestGetJSONForwardsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))

	var dest map[string]bool
	require.NoError(t, client.GetJSON(context.Background(), testSession(), "posts", "/social/posts", nil, &dest))
	assert.Equal(t, "Bearer jwt-abc", gotAuth)
	assert.True(t, dest["ok"])
}

func TestGetJSONCachesByParameterTuple(t *testing.T) {
	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"page":"` + r.URL.Query().Get("page") + `"}`))
	}))

	sess := testSession()
	q1 := url.Values{"page": {"1"}}
	q2 := url.Values{"page": {"2"}}

	var dest map[string]string
	require.NoError(t, client.GetJSON(context.Background(), sess, "posts", "/social/posts", q1, &dest))
	require.NoError(t, client.GetJSON(context.Background(), sess, "posts", "/social/posts", q1, &dest))
	assert.EqualValues(t, 1, atomic.LoadInt64(&hits), "repeat call served from cache")
	assert.Equal(t, "1", dest["page"])

	require.NoError(t, client.GetJSON(context.Background(), sess, "posts", "/social/posts", q2, &dest))
	assert.EqualValues(t, 2, atomic.LoadInt64(&hits), "different parameters miss the cache")
	assert.Equal(t, "2", dest["page"])
}

func TestInvalidationTriggersRefetch(t *testing.T) {
	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"ok":true}`))
	}))

	sess := testSession()
	tag := cache.ResourceTag("posts")

	var dest map[string]bool
	require.NoError(t, client.GetJSON(context.Background(), sess, "posts", "/social/posts", nil, &dest, tag))
	require.NoError(t, client.GetJSON(context.Background(), sess, "posts", "/social/posts", nil, &dest, tag))
	assert.EqualValues(t, 1, atomic.LoadInt64(&hits))

	client.Bus().Invalidate(context.Background(), tag)

	require.NoError(t, client.GetJSON(context.Background(), sess, "posts", "/social/posts", nil, &dest, tag))
	assert.EqualValues(t, 2, atomic.LoadInt64(&hits), "invalidated entry is refetched")
}

func TestStatusErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such post", http.StatusNotFound)
	}))

	var dest map[string]interface{}
	err := client.GetJSON(context.Background(), testSession(), "posts", "/social/posts/missing", nil, &dest)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Contains(t, se.Body, "no such post")
}

func TestDoSendsMutationWithoutCaching(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   string
	)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		b := make([]byte, r.ContentLength)
		r.Body.Read(b)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))

	err := client.Do(context.Background(), testSession(), "posts", http.MethodPost, "/social/posts/p1/approve", map[string]string{"reason": "ok"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/social/posts/p1/approve", gotPath)
	assert.JSONEq(t, `{"reason":"ok"}`, gotBody)
}

func TestDoWithoutTokenIsSkipped(t *testing.T) {
	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))

	err := client.Do(context.Background(), nil, "posts", http.MethodDelete, "/social/posts/p1", nil)

	assert.ErrorIs(t, err, ErrNoToken)
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits))
}
