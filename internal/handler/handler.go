package handler

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/bot"
	"tg-supportbot/internal/config"
	"tg-supportbot/internal/logger"
	"tg-supportbot/internal/service"
)

// Router classifies each inbound update and dispatches it to exactly one
// terminal handler path. All collaborators are injected at construction;
// there is no package-level state.
type Router struct {
	bot     bot.Transport
	store   *service.Store
	msgr    *Messenger
	tracker *MessageTracker

	moderation *ModerationEngine
	responder  *AutoResponder

	adminID int64
	groupID int64

	// noticeDelay is how long the closed-group notice stays up.
	noticeDelay time.Duration
}

func NewRouter(transport bot.Transport, store *service.Store, tracker *MessageTracker, cfg *config.Config) *Router {
	msgr := NewMessenger(transport, tracker)
	return &Router{
		bot:         transport,
		store:       store,
		msgr:        msgr,
		tracker:     tracker,
		moderation:  NewModerationEngine(transport, store, msgr),
		responder:   NewAutoResponder(store, msgr),
		adminID:     cfg.Bot.AdminID,
		groupID:     cfg.Bot.GroupID,
		noticeDelay: closedNoticeDelay,
	}
}

// HandleUpdate routes one update. A panic anywhere below is converted
// into an error and the update is dropped: one malformed update must
// never take the process down.
func (r *Router) HandleUpdate(ctx context.Context, update telego.Update) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Errorf("PANIC routing update %d: %v\nStack trace:\n%s", update.UpdateID, rec, debug.Stack())
			err = fmt.Errorf("internal error routing update %d", update.UpdateID)
		}
	}()

	switch {
	case update.Message != nil:
		return r.routeMessage(ctx, *update.Message)
	case update.CallbackQuery != nil:
		return r.routeCallback(ctx, *update.CallbackQuery)
	}

	// Other update kinds are not subscribed to; drop silently.
	return nil
}

// routeMessage applies the classification rules in order; the first
// matching rule wins and no path double-dispatches.
func (r *Router) routeMessage(ctx context.Context, message telego.Message) error {
	if message.From == nil {
		return nil
	}

	text := message.Text
	userID := message.From.ID
	chatID := message.Chat.ID

	switch {
	case strings.HasPrefix(text, "/start"):
		return r.handleStart(ctx, message)

	case strings.HasPrefix(text, "/admin"):
		return r.handleAdminPanel(ctx, message)

	case message.Chat.Type == telego.ChatTypePrivate:
		return r.routePrivateMessage(ctx, message)

	case isGroupChat(message.Chat.Type) && chatID == r.groupID:
		if userID == r.adminID || r.isChatAdmin(ctx, chatID, userID) {
			return r.handleGroupCommand(ctx, message)
		}
		return r.handleGroupMessage(ctx, message)

	case isGroupChat(message.Chat.Type):
		// Outside the support group only admins get anything: the group
		// command set works anywhere the bot was added.
		if userID == r.adminID || r.isChatAdmin(ctx, chatID, userID) {
			return r.handleGroupCommand(ctx, message)
		}
		return nil
	}

	return nil
}

// handleGroupMessage runs the non-admin support-group pipeline: closed
// check, then banned words, then auto-responses. Each stage is terminal.
func (r *Router) handleGroupMessage(ctx context.Context, message telego.Message) error {
	chatID := message.Chat.ID

	if r.store.Settings().IsClosed {
		r.deleteMessage(ctx, chatID, message.MessageID)
		notice := r.msgr.Send(ctx, chatID, "🔒 Group is currently closed. Messages are not allowed.")
		if notice != nil {
			r.tracker.DeleteAfter(chatID, notice.MessageID, r.noticeDelay)
		}
		return nil
	}

	if containsBannedWord(message.Text, r.store.BannedWords()) {
		r.deleteMessage(ctx, chatID, message.MessageID)
		r.moderation.OnViolation(ctx, chatID, *message.From)
		return nil
	}

	r.responder.MaybeRespond(ctx, chatID, message.MessageID, message.Text)
	return nil
}

func (r *Router) deleteMessage(ctx context.Context, chatID int64, messageID int) {
	err := r.bot.DeleteMessage(ctx, &telego.DeleteMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		MessageID: messageID,
	})
	if err != nil {
		logger.Warningf("Error deleting message %d in chat %d: %v", messageID, chatID, err)
	}
}
