package handler

import (
	"context"

	"github.com/mymmrac/telego"
)

const privateWelcomeText = "👋 *Welcome to our Customer Support Bot!*\n\n" +
	"🎯 How can we help you today?\n\n" +
	"Please choose an option below or write your complaint/question and we'll get back to you soon!"

const groupWelcomeText = "👋 *Welcome!*\n\n" +
	"I'm your customer support bot. You can:\n" +
	"• Send me a private message for support\n" +
	"• Use commands here if you're an admin\n" +
	"• Follow group rules and guidelines"

const adminGroupCommandsText = "🔧 *Admin Group Commands:*\n\n" +
	"/closegroup - Close group for users\n" +
	"/opengroup - Open group for users\n" +
	"/addban <word> - Add banned word\n" +
	"/removeban <word> - Remove banned word\n" +
	"/setautodelete <minutes> - Set auto-delete time\n" +
	"/admin - Show admin panel"

// handleStart upserts the sender and replies according to where /start
// was issued and who issued it.
func (r *Router) handleStart(ctx context.Context, message telego.Message) error {
	user := *message.From
	chatID := message.Chat.ID

	r.store.UpsertUser(user.ID, user.Username, user.FirstName, user.LastName)

	if isGroupChat(message.Chat.Type) {
		if user.ID == r.adminID || r.isChatAdmin(ctx, chatID, user.ID) {
			r.msgr.Send(ctx, chatID, adminGroupCommandsText)
		} else {
			r.msgr.Send(ctx, chatID, groupWelcomeText)
		}
		return nil
	}

	r.msgr.SendKeyboard(ctx, chatID, privateWelcomeText, mainMenuKeyboard())
	return nil
}
