package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/logger"
)

const contactInfoText = "📞 *Contact Information*\n\n" +
	"🤖 Bot Support: Available 24/7\n" +
	"👨‍💼 Admin: Contact through this bot\n" +
	"📧 Email: support@example.com\n" +
	"🌐 Website: https://example.com"

const faqText = "❓ *Frequently Asked Questions*\n\n" +
	"*Q: How long does it take to get a response?*\n" +
	"A: Usually within 2-24 hours.\n\n" +
	"*Q: Can I track my complaint?*\n" +
	"A: Yes, use the \"Check Status\" button.\n\n" +
	"*Q: Is this service free?*\n" +
	"A: Yes, our support is completely free!"

const newComplaintText = "📝 Please write your complaint or question below:\n\n" +
	"💡 Be as detailed as possible so we can help you better!"

// routeCallback acknowledges the button press, then dispatches to the
// admin or user submenu. Unknown callback data is a no-op. The
// acknowledgement comes first: without it the client shows a loading
// spinner until it times out.
func (r *Router) routeCallback(ctx context.Context, query telego.CallbackQuery) error {
	err := r.bot.AnswerCallbackQuery(ctx, &telego.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
	})
	if err != nil {
		logger.Warningf("Error answering callback query %s: %v", query.ID, err)
	}

	if query.Message == nil || query.Data == "" {
		return nil
	}

	chatID := query.Message.GetChat().ID
	messageID := query.Message.GetMessageID()

	if query.From.ID == r.adminID {
		r.handleAdminCallback(ctx, chatID, messageID, query.Data)
	} else {
		r.handleUserCallback(ctx, chatID, messageID, query.Data)
	}
	return nil
}

func (r *Router) handleUserCallback(ctx context.Context, chatID int64, messageID int, data string) {
	switch data {
	case "new_complaint":
		r.msgr.Edit(ctx, chatID, messageID, newComplaintText, nil)
	case "contact_info":
		r.msgr.Edit(ctx, chatID, messageID, contactInfoText, backToMenuKeyboard())
	case "faq":
		r.msgr.Edit(ctx, chatID, messageID, faqText, backToMenuKeyboard())
	case "back_to_menu":
		r.msgr.Edit(ctx, chatID, messageID, privateWelcomeText, mainMenuKeyboard())
	}
}

func (r *Router) handleAdminCallback(ctx context.Context, chatID int64, messageID int, data string) {
	switch data {
	case "admin_statistics":
		r.msgr.Edit(ctx, chatID, messageID, r.statisticsText(), backToAdminKeyboard())
	case "admin_group_settings":
		r.msgr.Edit(ctx, chatID, messageID, r.groupSettingsText(), backToAdminKeyboard())
	case "admin_banned_words":
		r.msgr.Edit(ctx, chatID, messageID, r.bannedWordsText(), backToAdminKeyboard())
	case "admin_auto_responses":
		r.msgr.Edit(ctx, chatID, messageID, r.autoResponsesText(), backToAdminKeyboard())
	case "admin_complaints":
		r.msgr.Edit(ctx, chatID, messageID, r.complaintsText(), backToAdminKeyboard())
	case "back_to_admin":
		r.msgr.Edit(ctx, chatID, messageID, adminPanelText, adminPanelKeyboard())
	}
}

func (r *Router) statisticsText() string {
	complaints := r.store.ComplaintStats()
	users := r.store.CountUsers()
	responses := r.store.CountAutoResponses()
	words := r.store.BannedWords()

	total := complaints.Total
	if total < 1 {
		total = 1
	}
	resolutionRate := float64(complaints.Resolved) / float64(total) * 100

	return fmt.Sprintf(
		"📊 *Bot Statistics*\n\n"+
			"👥 Total Users: %d\n"+
			"📋 Total Complaints: %d\n"+
			"⏳ Pending Complaints: %d\n"+
			"✅ Resolved Complaints: %d\n"+
			"🤖 Auto Responses: %d\n"+
			"🚫 Banned Words: %d\n\n"+
			"📈 Resolution Rate: %.1f%%",
		users, complaints.Total, complaints.Pending, complaints.Resolved,
		responses, len(words), resolutionRate)
}

func (r *Router) groupSettingsText() string {
	settings := r.store.Settings()

	status := "🔓 Open"
	if settings.IsClosed {
		status = "🔒 Closed"
	}

	return fmt.Sprintf(
		"⚙️ *Group Settings*\n\n"+
			"Group Status: %s\n"+
			"Max Warnings: %d\n"+
			"Mute Duration: %d minutes\n"+
			"Auto-delete: %d minutes\n\n"+
			"*Commands:*\n"+
			"`/closegroup` - Close group\n"+
			"`/opengroup` - Open group\n"+
			"`/setautodelete <minutes>` - Set auto-delete time (0 to disable)",
		status, settings.MaxWarnings, settings.MuteDuration, settings.AutoDeleteMinutes)
}

func (r *Router) bannedWordsText() string {
	words := r.store.BannedWords()
	if len(words) == 0 {
		return "🚫 *Banned Words Management*\n\nNo banned words set.\n\nTo add: `/addban <word>`"
	}

	var list strings.Builder
	for i, word := range words {
		fmt.Fprintf(&list, "%d. %s\n", i+1, escapeMarkdown(word))
	}
	return fmt.Sprintf(
		"🚫 *Banned Words Management*\n\nCurrent banned words:\n%s\nTo add: `/addban <word>`\nTo remove: `/removeban <word>`",
		list.String())
}

func (r *Router) autoResponsesText() string {
	responses := r.store.AutoResponses()
	if len(responses) == 0 {
		return "🤖 *Auto Responses Management*\n\nNo auto responses set.\n\nTo add: `/addresponse <trigger> | <response>`"
	}

	var list strings.Builder
	for i, response := range responses {
		preview := response.Response
		if len(preview) > 50 {
			preview = preview[:50]
		}
		fmt.Fprintf(&list, "%d. %s → %s...\n", i+1, escapeMarkdown(response.Trigger), escapeMarkdown(preview))
	}
	return fmt.Sprintf(
		"🤖 *Auto Responses Management*\n\nCurrent auto responses:\n%s\nTo add: `/addresponse <trigger> | <response>`",
		list.String())
}

func (r *Router) complaintsText() string {
	stats := r.store.ComplaintStats()
	return fmt.Sprintf(
		"📋 *Complaints Management*\n\n"+
			"📊 Total: %d\n"+
			"⏳ Pending: %d\n"+
			"✅ Resolved: %d\n\n"+
			"Use `/reply <user_id> <message>` to respond to complaints",
		stats.Total, stats.Pending, stats.Resolved)
}
