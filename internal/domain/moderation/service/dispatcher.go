package service

import (
	"context"
	"errors"
	"sync"
	"time"

	auditmodel "stars_admin/internal/domain/audit/model"
	contentclient "stars_admin/internal/domain/content/client"
	postclient "stars_admin/internal/domain/post/client"
	"stars_admin/internal/pkg/notify"
	"stars_admin/internal/pkg/session"
	"stars_admin/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrActionInFlight means another action against the same entity has not
// completed yet; the UI disables controls while this holds.
var ErrActionInFlight = errors.New("moderation: action already in flight for entity")

// Recorder receives audit records off the action path.
type Recorder interface {
	Enqueue(record auditmodel.ActionRecord)
}

// Dispatcher executes moderation actions: it guards the session and the
// per-entity in-flight flag, invokes the matching mutation, notifies the
// operator, closes the open detail view and lets cache invalidation trigger
// the list refetch. A failed action leaves entity state untouched; the
// in-flight flag always clears.
type Dispatcher struct {
	posts     postclient.PostClient
	reels     contentclient.ContentClient
	notifier  notify.Notifier
	selection *Selection
	recorder  Recorder
	metrics   *metrics.MetricsCollector
	logger    *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewDispatcher creates a dispatcher. recorder may be nil.
func NewDispatcher(posts postclient.PostClient, reels contentclient.ContentClient, notifier notify.Notifier, selection *Selection, recorder Recorder, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		posts:     posts,
		reels:     reels,
		notifier:  notifier,
		selection: selection,
		recorder:  recorder,
		metrics:   metrics.GetGlobalCollector(),
		logger:    logger,
		inFlight:  make(map[string]bool),
	}
}

// InFlight reports whether an action against target is still running.
func (d *Dispatcher) InFlight(target Target) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inFlight[target.key()]
}

func (d *Dispatcher) begin(target Target) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inFlight[target.key()] {
		return false
	}
	d.inFlight[target.key()] = true
	return true
}

func (d *Dispatcher) end(target Target) {
	d.mu.Lock()
	delete(d.inFlight, target.key())
	d.mu.Unlock()
}

// Dispatch runs actionName against target on behalf of sess.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *session.Session, target Target, actionName string) error {
	if !sess.Authenticated() {
		// No token means no mutation can succeed upstream; skip silently.
		d.logger.Warn("moderation action skipped, no session token",
			zap.String("entity", string(target.Entity)),
			zap.String("id", target.ID),
			zap.String("action", actionName))
		return nil
	}

	if !d.begin(target) {
		return ErrActionInFlight
	}
	defer d.end(target)

	action := ParseAction(actionName)
	mutate, supported := d.mutation(sess, target, action)
	if !supported {
		// Unrecognized (or unsupported for this entity type) actions close
		// the detail view without mutating anything. Long-standing behavior;
		// kept until product says otherwise.
		d.logger.Warn("unrecognized moderation action, nothing dispatched",
			zap.String("entity", string(target.Entity)),
			zap.String("id", target.ID),
			zap.String("action", actionName))
		d.selection.Clear(sess.UserID)
		d.record(sess, target, actionName, auditmodel.OutcomeSkipped, "unrecognized action")
		d.metrics.RecordModerationAction(string(target.Entity), actionName, "noop")
		return nil
	}

	if err := mutate(ctx); err != nil {
		d.notifier.Error("Error", "An error occurred while processing the "+string(target.Entity)+".")
		d.record(sess, target, actionName, auditmodel.OutcomeFailure, err.Error())
		d.metrics.RecordModerationAction(string(target.Entity), actionName, "failure")
		return err
	}

	d.selection.Clear(sess.UserID)
	d.notifier.Success(successTitle(target.Entity, action), successMessage(target.Entity, action))
	d.record(sess, target, actionName, auditmodel.OutcomeSuccess, "")
	d.metrics.RecordModerationAction(string(target.Entity), actionName, "success")
	return nil
}

// mutation returns the client call matching (entity, action). Reels only
// support delete; posts support the full action set.
func (d *Dispatcher) mutation(sess *session.Session, target Target, action Action) (func(context.Context) error, bool) {
	switch target.Entity {
	case EntityPost:
		switch action {
		case ActionApprove:
			return func(ctx context.Context) error {
				return d.posts.ApprovePost(ctx, sess, target.ID)
			}, true
		case ActionReject:
			return func(ctx context.Context) error {
				return d.posts.RejectPost(ctx, sess, target.ID)
			}, true
		case ActionDelete:
			return func(ctx context.Context) error {
				return d.posts.DeletePost(ctx, sess, target.ID)
			}, true
		}
	case EntityReel:
		if action == ActionDelete {
			return func(ctx context.Context) error {
				return d.reels.DeleteReel(ctx, sess, target.ID)
			}, true
		}
	}
	return nil, false
}

func (d *Dispatcher) record(sess *session.Session, target Target, action, outcome, detail string) {
	if d.recorder == nil {
		return
	}
	d.recorder.Enqueue(auditmodel.ActionRecord{
		ID:        uuid.New(),
		ActorID:   sess.UserID,
		Entity:    string(target.Entity),
		EntityID:  target.ID,
		Action:    action,
		Outcome:   outcome,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
}

func successTitle(entity Entity, action Action) string {
	noun := "Post"
	if entity == EntityReel {
		noun = "Reel"
	}
	switch action {
	case ActionApprove:
		return noun + " approved"
	case ActionReject:
		return noun + " rejected"
	default:
		return noun + " deleted"
	}
}

func successMessage(entity Entity, action Action) string {
	noun := "post"
	if entity == EntityReel {
		noun = "reel"
	}
	switch action {
	case ActionApprove:
		return "The " + noun + " has been approved successfully."
	case ActionReject:
		return "The " + noun + " has been rejected successfully."
	default:
		return "The " + noun + " has been deleted successfully."
	}
}
