package handler

import (
	"context"
	"strings"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/logger"
)

// markdownEscaper escapes the characters the legacy Markdown parse mode
// treats as markup. User-supplied text interpolated into outbound
// messages goes through this so a stray asterisk cannot break a send.
var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// isChatAdmin reports whether the user is a creator or administrator of
// the chat. Lookup failures count as not admin.
func (r *Router) isChatAdmin(ctx context.Context, chatID, userID int64) bool {
	member, err := r.bot.GetChatMember(ctx, &telego.GetChatMemberParams{
		ChatID: telego.ChatID{ID: chatID},
		UserID: userID,
	})
	if err != nil {
		logger.Warningf("Error checking admin status of user %d in chat %d: %v", userID, chatID, err)
		return false
	}

	status := member.MemberStatus()
	return status == telego.MemberStatusCreator || status == telego.MemberStatusAdministrator
}

func isGroupChat(chatType string) bool {
	return chatType == telego.ChatTypeGroup || chatType == telego.ChatTypeSupergroup
}
