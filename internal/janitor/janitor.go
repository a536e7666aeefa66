// Package janitor deletes transient UI messages after a fixed delay.
// Deletion is best-effort: a message the user already removed is not an
// error worth reporting, and nothing here ever blocks the reply path.
package janitor

import (
	"log/slog"
	"strings"
	"time"
)

type Deleter interface {
	DeleteMessage(chatID int64, messageID int) error
}

type Janitor struct {
	deleter Deleter
	logger  *slog.Logger
	after   func(d time.Duration, fn func())
}

type Option func(*Janitor)

// WithAfterFunc replaces the timer used to fire deletions. Tests use it to
// run callbacks synchronously.
func WithAfterFunc(after func(d time.Duration, fn func())) Option {
	return func(j *Janitor) {
		j.after = after
	}
}

func New(deleter Deleter, logger *slog.Logger, opts ...Option) *Janitor {
	j := &Janitor{
		deleter: deleter,
		logger:  logger,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// ScheduleDelete arms a one-shot timer that deletes each message
// independently, so one failure does not block the rest. Timers are not
// cancelable.
func (j *Janitor) ScheduleDelete(chatID int64, delay time.Duration, messageIDs ...int) {
	if len(messageIDs) == 0 {
		return
	}
	ids := make([]int, len(messageIDs))
	copy(ids, messageIDs)
	j.after(delay, func() {
		for _, id := range ids {
			err := j.deleter.DeleteMessage(chatID, id)
			if err == nil {
				continue
			}
			if isAlreadyGone(err) {
				j.logger.Debug("message already gone", "chat_id", chatID, "message_id", id)
				continue
			}
			j.logger.Warn("delete message failed", "chat_id", chatID, "message_id", id, "error", err)
		}
	})
}

// isAlreadyGone matches the Telegram "message to delete not found" class of
// failures, which just means someone beat us to it.
func isAlreadyGone(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "message to delete not found") ||
		strings.Contains(msg, "message can't be deleted") ||
		strings.Contains(msg, "message_id_invalid")
}
