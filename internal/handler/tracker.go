package handler

import (
	"context"
	"sync"
	"time"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/crash"
	"tg-supportbot/internal/logger"
	"tg-supportbot/internal/service"
)

// closedNoticeDelay is the fixed lifetime of the "group is closed"
// notice, independent of the configurable auto-delete setting.
const closedNoticeDelay = 5 * time.Second

type messageDeleter interface {
	DeleteMessage(ctx context.Context, params *telego.DeleteMessageParams) error
}

type trackedMessage struct {
	messageID int
	sentAt    time.Time
}

// MessageTracker schedules best-effort delayed deletion of bot-sent
// messages. The registry is in-memory only: scheduled deletions do not
// survive a process restart. Timers are never cancelled; disabling
// auto-delete stops new messages from being scheduled but already
// scheduled deletions still fire.
type MessageTracker struct {
	bot   messageDeleter
	store *service.Store

	// unit scales AutoDeleteMinutes into a delay; time.Minute in
	// production, shortened in tests.
	unit time.Duration

	mu      sync.Mutex
	pending map[int64][]trackedMessage
}

func NewMessageTracker(transport messageDeleter, store *service.Store) *MessageTracker {
	return &MessageTracker{
		bot:     transport,
		store:   store,
		unit:    time.Minute,
		pending: make(map[int64][]trackedMessage),
	}
}

// Track registers a sent message for deletion after the currently
// configured auto-delete interval. A zero interval disables tracking.
func (t *MessageTracker) Track(chatID int64, messageID int) {
	minutes := t.store.Settings().AutoDeleteMinutes
	if minutes <= 0 {
		return
	}

	t.mu.Lock()
	t.pending[chatID] = append(t.pending[chatID], trackedMessage{messageID: messageID, sentAt: time.Now()})
	t.mu.Unlock()

	time.AfterFunc(time.Duration(minutes)*t.unit, func() {
		t.fire(chatID, messageID)
	})
}

// DeleteAfter deletes a message after a fixed delay without registering
// it. Used for the closed-group notice.
func (t *MessageTracker) DeleteAfter(chatID int64, messageID int, delay time.Duration) {
	time.AfterFunc(delay, func() {
		defer crash.RecoverWithStack("message-tracker")
		t.deleteMessage(chatID, messageID)
	})
}

// PendingCount reports how many deletions are scheduled for a chat.
func (t *MessageTracker) PendingCount(chatID int64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending[chatID])
}

func (t *MessageTracker) fire(chatID int64, messageID int) {
	defer crash.RecoverWithStack("message-tracker")

	// The entry is removed whether or not the delete succeeds: the
	// message may already be gone by user action, and there is no retry.
	t.deleteMessage(chatID, messageID)
	t.remove(chatID, messageID)
}

func (t *MessageTracker) deleteMessage(chatID int64, messageID int) {
	err := t.bot.DeleteMessage(context.Background(), &telego.DeleteMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		MessageID: messageID,
	})
	if err != nil {
		logger.Warningf("Error deleting scheduled message %d in chat %d: %v", messageID, chatID, err)
	}
}

func (t *MessageTracker) remove(chatID int64, messageID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.pending[chatID]
	kept := entries[:0]
	for _, entry := range entries {
		if entry.messageID != messageID {
			kept = append(kept, entry)
		}
	}
	if len(kept) == 0 {
		delete(t.pending, chatID)
		return
	}
	t.pending[chatID] = kept
}
