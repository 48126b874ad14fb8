package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/logger"
)

const adminPanelText = "🔧 *Admin Control Panel*\n\nWelcome to the admin dashboard. Choose an option:"

// addResponseSeparator splits trigger from response in /addresponse. The
// spaces are part of the format: "foo|bar" is rejected.
const addResponseSeparator = " | "

// handleAdminPanel opens the admin dashboard for the configured admin.
// In a group the admin must also be a group admin there.
func (r *Router) handleAdminPanel(ctx context.Context, message telego.Message) error {
	userID := message.From.ID
	chatID := message.Chat.ID

	if userID != r.adminID {
		if message.Chat.Type == telego.ChatTypePrivate {
			r.msgr.Send(ctx, chatID, "❌ You don't have admin permissions.")
		}
		return nil
	}

	if isGroupChat(message.Chat.Type) && !r.isChatAdmin(ctx, chatID, userID) {
		r.msgr.Send(ctx, chatID, "❌ You need to be a group admin to use this command.")
		return nil
	}

	r.msgr.SendKeyboard(ctx, chatID, adminPanelText, adminPanelKeyboard())
	return nil
}

// routePrivateMessage handles private-chat messages past /start and
// /admin: the admin's command set first, anything else is a complaint.
func (r *Router) routePrivateMessage(ctx context.Context, message telego.Message) error {
	text := message.Text
	isAdmin := message.From.ID == r.adminID

	switch {
	case isAdmin && strings.HasPrefix(text, "/reply "):
		return r.handleAdminReply(ctx, message)

	case isAdmin && strings.HasPrefix(text, "/addban "):
		word := strings.TrimPrefix(text, "/addban ")
		r.store.AddBannedWord(word)
		r.msgr.Send(ctx, message.Chat.ID, fmt.Sprintf("✅ Added \"%s\" to banned words list.", escapeMarkdown(word)))
		return nil

	case isAdmin && strings.HasPrefix(text, "/removeban "):
		word := strings.TrimPrefix(text, "/removeban ")
		r.store.RemoveBannedWord(word)
		r.msgr.Send(ctx, message.Chat.ID, fmt.Sprintf("✅ Removed \"%s\" from banned words list.", escapeMarkdown(word)))
		return nil

	case isAdmin && strings.HasPrefix(text, "/addresponse "):
		return r.handleAddResponse(ctx, message)
	}

	return r.handleComplaint(ctx, message)
}

// handleAdminReply delivers `/reply <userId> <text>` to the user and
// confirms delivery to the admin. Malformed input is silently ignored.
func (r *Router) handleAdminReply(ctx context.Context, message telego.Message) error {
	parts := strings.SplitN(message.Text, " ", 3)
	if len(parts) < 3 {
		return nil
	}

	targetID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		logger.Warningf("Invalid user id in /reply: %q", parts[1])
		return nil
	}

	replyText := fmt.Sprintf("💬 *Response from Admin:*\n\n%s\n\nIf you have more questions, feel free to ask!", parts[2])
	if r.msgr.Send(ctx, targetID, replyText) == nil {
		return nil
	}

	r.msgr.Send(ctx, r.adminID, "✅ Reply sent successfully!")
	return nil
}

// handleAddResponse parses `/addresponse <trigger> | <response>`.
func (r *Router) handleAddResponse(ctx context.Context, message telego.Message) error {
	chatID := message.Chat.ID
	payload := strings.TrimPrefix(message.Text, "/addresponse ")

	trigger, response, found := strings.Cut(payload, addResponseSeparator)
	if !found {
		r.msgr.Send(ctx, chatID, "❌ Format: /addresponse <trigger> | <response>")
		return nil
	}

	trigger = strings.TrimSpace(trigger)
	response = strings.TrimSpace(response)
	r.store.AddAutoResponse(trigger, response)
	r.msgr.Send(ctx, chatID, fmt.Sprintf("✅ Added auto response for \"%s\"", escapeMarkdown(trigger)))
	return nil
}
