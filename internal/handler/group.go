package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/models"
)

// handleGroupCommand processes the admin command set inside a group.
// Non-command admin messages are left alone: admins bypass moderation.
func (r *Router) handleGroupCommand(ctx context.Context, message telego.Message) error {
	text := message.Text
	chatID := message.Chat.ID

	switch {
	case text == "/closegroup":
		r.store.UpdateSettings(func(s *models.GroupSettings) { s.IsClosed = true })
		r.msgr.Send(ctx, chatID, "🔒 Group has been closed. Only admins can send messages.")

	case text == "/opengroup":
		r.store.UpdateSettings(func(s *models.GroupSettings) { s.IsClosed = false })
		r.msgr.Send(ctx, chatID, "🔓 Group has been opened. Users can send messages.")

	case strings.HasPrefix(text, "/addban "):
		word := strings.TrimPrefix(text, "/addban ")
		r.store.AddBannedWord(word)
		r.msgr.Send(ctx, chatID, fmt.Sprintf("✅ Added \"%s\" to banned words list.", escapeMarkdown(word)))

	case strings.HasPrefix(text, "/removeban "):
		word := strings.TrimPrefix(text, "/removeban ")
		r.store.RemoveBannedWord(word)
		r.msgr.Send(ctx, chatID, fmt.Sprintf("✅ Removed \"%s\" from banned words list.", escapeMarkdown(word)))

	case strings.HasPrefix(text, "/setautodelete "):
		r.handleSetAutoDelete(ctx, chatID, strings.TrimPrefix(text, "/setautodelete "))
	}

	return nil
}

// handleSetAutoDelete updates the auto-delete interval. Already
// scheduled deletions are not cancelled by disabling.
func (r *Router) handleSetAutoDelete(ctx context.Context, chatID int64, arg string) {
	minutes, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || minutes < 0 {
		r.msgr.Send(ctx, chatID, "❌ Please provide a valid number of minutes.")
		return
	}

	r.store.UpdateSettings(func(s *models.GroupSettings) { s.AutoDeleteMinutes = minutes })

	if minutes > 0 {
		r.msgr.Send(ctx, chatID, fmt.Sprintf("✅ Bot messages will now be auto-deleted after %d minutes.", minutes))
	} else {
		r.msgr.Send(ctx, chatID, "✅ Auto-delete disabled.")
	}
}
