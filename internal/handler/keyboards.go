package handler

import "github.com/mymmrac/telego"

func mainMenuKeyboard() *telego.InlineKeyboardMarkup {
	return &telego.InlineKeyboardMarkup{
		InlineKeyboard: [][]telego.InlineKeyboardButton{
			{
				{Text: "📝 New Complaint", CallbackData: "new_complaint"},
				{Text: "📋 Check Status", CallbackData: "check_status"},
			},
			{
				{Text: "📞 Contact Info", CallbackData: "contact_info"},
				{Text: "❓ FAQ", CallbackData: "faq"},
			},
		},
	}
}

func adminPanelKeyboard() *telego.InlineKeyboardMarkup {
	return &telego.InlineKeyboardMarkup{
		InlineKeyboard: [][]telego.InlineKeyboardButton{
			{
				{Text: "📋 Complaints", CallbackData: "admin_complaints"},
				{Text: "🚫 Banned Words", CallbackData: "admin_banned_words"},
			},
			{
				{Text: "🤖 Auto Responses", CallbackData: "admin_auto_responses"},
				{Text: "⚙️ Group Settings", CallbackData: "admin_group_settings"},
			},
			{
				{Text: "📊 Statistics", CallbackData: "admin_statistics"},
			},
		},
	}
}

func backToMenuKeyboard() *telego.InlineKeyboardMarkup {
	return &telego.InlineKeyboardMarkup{
		InlineKeyboard: [][]telego.InlineKeyboardButton{
			{{Text: "🔙 Back to Menu", CallbackData: "back_to_menu"}},
		},
	}
}

func backToAdminKeyboard() *telego.InlineKeyboardMarkup {
	return &telego.InlineKeyboardMarkup{
		InlineKeyboard: [][]telego.InlineKeyboardButton{
			{{Text: "🔙 Back to Admin Panel", CallbackData: "back_to_admin"}},
		},
	}
}
