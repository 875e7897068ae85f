package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// LeveledZap adapts zap to retryablehttp's leveled logger.
type LeveledZap struct {
	inner *zap.SugaredLogger
}

func (l LeveledZap) Error(msg string, keysAndValues ...interface{}) {
	l.inner.Errorw(msg, keysAndValues...)
}

func (l LeveledZap) Warn(msg string, keysAndValues ...interface{}) {
	l.inner.Warnw(msg, keysAndValues...)
}

func (l LeveledZap) Info(msg string, keysAndValues ...interface{}) {
	l.inner.Infow(msg, keysAndValues...)
}

func (l LeveledZap) Debug(msg string, keysAndValues ...interface{}) {
	l.inner.Debugw(msg, keysAndValues...)
}

// noRetryPolicy never retries. Failed fetches surface to the caller as
// errors; the pipeline has no automatic retry.
func noRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, ctx.Err()
}

// NewHTTPClient builds the client used for all platform backend requests:
// pooled transport, request logging, and a hard timeout, with retries
// disabled by policy.
func NewHTTPClient(timeout time.Duration, logger *zap.Logger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetryPolicy
	retryClient.Logger = retryablehttp.LeveledLogger(LeveledZap{inner: logger.Sugar()})

	client := retryClient.StandardClient()
	client.Timeout = timeout
	return client
}
