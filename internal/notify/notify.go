// Package notify delivers ephemeral user feedback. Services emit
// notifications after each operation; the feed is bounded and most-recent-first.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notifier accepts ephemeral user feedback.
type Notifier interface {
	Notify(severity Severity, message string)
}

// Notification is one entry in the feed.
type Notification struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed logs every notification and keeps a bounded in-memory history.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
	limit   int
	logger  logrus.FieldLogger
}

func NewFeed(limit int, logger logrus.FieldLogger) *Feed {
	if limit <= 0 {
		limit = 50
	}
	return &Feed{limit: limit, logger: logger}
}

func (f *Feed) Notify(severity Severity, message string) {
	entry := Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if f.logger != nil {
		log := f.logger.WithField("severity", severity)
		switch severity {
		case SeverityError:
			log.Error(message)
		case SeverityWarning:
			log.Warn(message)
		default:
			log.Info(message)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append([]Notification{entry}, f.entries...)
	if len(f.entries) > f.limit {
		f.entries = f.entries[:f.limit]
	}
}

// Recent returns the feed newest first.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.entries))
	copy(out, f.entries)
	return out
}

var _ Notifier = (*Feed)(nil)
