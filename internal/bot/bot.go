package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/config"
	"tg-supportbot/internal/logger"
)

// Transport is the outbound capability surface the handlers consume.
// *telego.Bot satisfies it; tests substitute a recording fake.
type Transport interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	EditMessageText(ctx context.Context, params *telego.EditMessageTextParams) (*telego.Message, error)
	DeleteMessage(ctx context.Context, params *telego.DeleteMessageParams) error
	RestrictChatMember(ctx context.Context, params *telego.RestrictChatMemberParams) error
	GetChatMember(ctx context.Context, params *telego.GetChatMemberParams) (telego.ChatMember, error)
	AnswerCallbackQuery(ctx context.Context, params *telego.AnswerCallbackQueryParams) error
}

// Initialize builds the telego bot and clears any stale webhook
// registration. The webhook itself is registered by the server, either at
// startup from configuration or on demand via the registration endpoint.
func Initialize(ctx context.Context, cfg *config.Config) (*telego.Bot, error) {
	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	b, err := telego.NewBot(cfg.Bot.Token, telego.WithDefaultDebugLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	botUser, err := b.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bot info: %w", err)
	}
	logger.Infof("Authorized on account %s", botUser.Username)

	setBotCommands(ctx, b)

	err = b.DeleteWebhook(ctx, &telego.DeleteWebhookParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to delete existing webhook: %w", err)
	}

	return b, nil
}

// setBotCommands sets the command menu shown by Telegram clients.
func setBotCommands(ctx context.Context, b *telego.Bot) {
	commands := []telego.BotCommand{
		{Command: "start", Description: "Start the bot and show the menu"},
		{Command: "admin", Description: "Open the admin control panel"},
	}

	err := b.SetMyCommands(ctx, &telego.SetMyCommandsParams{Commands: commands})
	if err != nil {
		logger.Warningf("Failed to set bot commands: %v", err)
	}
}
