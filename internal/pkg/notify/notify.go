package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a user-visible outcome message produced by an action.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier delivers action outcomes to the operator.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(title, message string) {
	n.logger.Info("notification",
		zap.String("level", string(LevelSuccess)),
		zap.String("title", title),
		zap.String("message", message))
}

func (n *LogNotifier) Error(title, message string) {
	n.logger.Warn("notification",
		zap.String("level", string(LevelError)),
		zap.String("title", title),
		zap.String("message", message))
}

// Recorder keeps recent notifications in memory so the UI can poll them.
// It also satisfies Notifier, wrapping another notifier if given one.
type Recorder struct {
	next Notifier
	max  int

	mu    sync.Mutex
	items []Notification
}

// NewRecorder creates a recorder retaining up to max notifications.
func NewRecorder(next Notifier, max int) *Recorder {
	if max <= 0 {
		max = 50
	}
	return &Recorder{next: next, max: max}
}

func (r *Recorder) record(level Level, title, message string) {
	r.mu.Lock()
	r.items = append(r.items, Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if len(r.items) > r.max {
		r.items = r.items[len(r.items)-r.max:]
	}
	r.mu.Unlock()
}

func (r *Recorder) Success(title, message string) {
	r.record(LevelSuccess, title, message)
	if r.next != nil {
		r.next.Success(title, message)
	}
}

func (r *Recorder) Error(title, message string) {
	r.record(LevelError, title, message)
	if r.next != nil {
		r.next.Error(title, message)
	}
}

// Recent returns the retained notifications, newest last.
func (r *Recorder) Recent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}
