package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/bot"
	"tg-supportbot/internal/logger"
	"tg-supportbot/internal/models"
	"tg-supportbot/internal/service"
)

// ModerationEngine enforces the banned-word policy with escalating
// consequence: warnings accrue per violation, and reaching the threshold
// mutes the user and resets the count.
type ModerationEngine struct {
	bot   bot.Transport
	store *service.Store
	msgr  *Messenger
}

func NewModerationEngine(transport bot.Transport, store *service.Store, msgr *Messenger) *ModerationEngine {
	return &ModerationEngine{bot: transport, store: store, msgr: msgr}
}

// containsBannedWord reports whether any stored word occurs in the text,
// case-insensitively. The first match is sufficient evidence.
func containsBannedWord(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// OnViolation records a warning and escalates to a mute once the
// configured threshold is reached. The Router has already deleted the
// offending message.
func (e *ModerationEngine) OnViolation(ctx context.Context, chatID int64, user telego.User) {
	e.store.AddWarning(user.ID, models.WarningReasonBannedWord)

	count := e.store.WarningCount(user.ID)
	settings := e.store.Settings()
	name := escapeMarkdown(callName(user))

	// >= rather than == guards against racing violations overshooting
	// the threshold.
	if count >= settings.MaxWarnings {
		muteUntil := time.Now().Add(time.Duration(settings.MuteDuration) * time.Minute).Unix()
		e.restrict(ctx, chatID, user.ID, muteUntil)

		e.msgr.Send(ctx, chatID, fmt.Sprintf(
			"🔇 @%s has been muted for %d minutes due to repeated violations.",
			name, settings.MuteDuration))

		e.store.ClearWarnings(user.ID)
		return
	}

	e.msgr.Send(ctx, chatID, fmt.Sprintf(
		"⚠️ @%s, please avoid using banned words. Warning %d/%d",
		name, count, settings.MaxWarnings))
}

func (e *ModerationEngine) restrict(ctx context.Context, chatID, userID, untilDate int64) {
	canSend := false
	err := e.bot.RestrictChatMember(ctx, &telego.RestrictChatMemberParams{
		ChatID:      telego.ChatID{ID: chatID},
		UserID:      userID,
		UntilDate:   untilDate,
		Permissions: telego.ChatPermissions{CanSendMessages: &canSend},
	})
	if err != nil {
		logger.Warningf("Error restricting user %d in chat %d: %v", userID, chatID, err)
	}
}

// callName is how the user is addressed in moderation notices.
func callName(user telego.User) string {
	if user.Username != "" {
		return user.Username
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	return "User"
}
