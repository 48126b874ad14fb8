package handler

import (
	"context"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/bot"
	"tg-supportbot/internal/logger"
)

// parseMode is the markup mode used for every outbound message.
const parseMode = "Markdown"

// Messenger sends and edits bot messages. Every successful send is
// handed to the tracker so the auto-delete schedule applies uniformly.
// Failures are logged and absorbed: a nil message tells the caller not
// to chain logic that depended on delivery.
type Messenger struct {
	bot     bot.Transport
	tracker *MessageTracker
}

func NewMessenger(transport bot.Transport, tracker *MessageTracker) *Messenger {
	return &Messenger{bot: transport, tracker: tracker}
}

// Send sends a plain text message.
func (m *Messenger) Send(ctx context.Context, chatID int64, text string) *telego.Message {
	return m.send(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: parseMode,
	})
}

// SendKeyboard sends a message with an inline keyboard attached.
func (m *Messenger) SendKeyboard(ctx context.Context, chatID int64, text string, keyboard *telego.InlineKeyboardMarkup) *telego.Message {
	return m.send(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: chatID},
		Text:        text,
		ParseMode:   parseMode,
		ReplyMarkup: keyboard,
	})
}

// Reply sends a message quoting the given message.
func (m *Messenger) Reply(ctx context.Context, chatID int64, text string, replyTo int) *telego.Message {
	return m.send(ctx, &telego.SendMessageParams{
		ChatID:          telego.ChatID{ID: chatID},
		Text:            text,
		ParseMode:       parseMode,
		ReplyParameters: &telego.ReplyParameters{MessageID: replyTo},
	})
}

func (m *Messenger) send(ctx context.Context, params *telego.SendMessageParams) *telego.Message {
	msg, err := m.bot.SendMessage(ctx, params)
	if err != nil {
		logger.Warningf("Error sending message to chat %d: %v", params.ChatID.ID, err)
		return nil
	}

	m.tracker.Track(msg.Chat.ID, msg.MessageID)
	return msg
}

// Edit replaces the text and keyboard of an existing bot message.
func (m *Messenger) Edit(ctx context.Context, chatID int64, messageID int, text string, keyboard *telego.InlineKeyboardMarkup) {
	_, err := m.bot.EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      telego.ChatID{ID: chatID},
		MessageID:   messageID,
		Text:        text,
		ParseMode:   parseMode,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Warningf("Error editing message %d in chat %d: %v", messageID, chatID, err)
	}
}
