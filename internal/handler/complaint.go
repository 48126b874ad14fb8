package handler

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
)

// handleComplaint persists a free-text message from a private chat as a
// pending complaint, confirms to the sender with the assigned id, and
// notifies the admin. If persistence fails, neither message is sent.
func (r *Router) handleComplaint(ctx context.Context, message telego.Message) error {
	user := *message.From
	text := message.Text

	username := user.Username
	if username == "" {
		username = "No username"
	}

	complaintID := r.store.AddComplaint(user.ID, username, text)
	if complaintID == 0 {
		// Persistence failed; fail soft with no user-visible output.
		return nil
	}

	confirmation := fmt.Sprintf(
		"✅ *Thank you for your message!*\n\n"+
			"📝 Your complaint has been recorded with ID: *#%d*\n\n"+
			"👨‍💼 Our admin will review and respond to you shortly.\n\n"+
			"⏰ Average response time: 2-24 hours",
		complaintID)
	r.msgr.Send(ctx, message.Chat.ID, confirmation)

	notification := fmt.Sprintf(
		"🔔 *New Customer Complaint*\n\n"+
			"👤 User: @%s (%d)\n"+
			"📝 Message: %s\n"+
			"🆔 Complaint ID: #%d\n\n"+
			"To reply: `/reply %d Your response here`",
		escapeMarkdown(username), user.ID, escapeMarkdown(text), complaintID, user.ID)
	r.msgr.Send(ctx, r.adminID, notification)

	return nil
}
