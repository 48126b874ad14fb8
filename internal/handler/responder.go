package handler

import (
	"context"
	"strings"

	"tg-supportbot/internal/service"
)

// AutoResponder replies with a canned response when a stored trigger
// occurs in a message. At most one response fires per message, the first
// matching trigger in storage order.
type AutoResponder struct {
	store *service.Store
	msgr  *Messenger
}

func NewAutoResponder(store *service.Store, msgr *Messenger) *AutoResponder {
	return &AutoResponder{store: store, msgr: msgr}
}

// MaybeRespond sends the first matching canned reply, quoting the
// original message. Returns true if a response was sent.
func (a *AutoResponder) MaybeRespond(ctx context.Context, chatID int64, messageID int, text string) bool {
	lower := strings.ToLower(text)

	for _, response := range a.store.AutoResponses() {
		if strings.Contains(lower, response.Trigger) {
			a.msgr.Reply(ctx, chatID, response.Response, messageID)
			return true
		}
	}
	return false
}
