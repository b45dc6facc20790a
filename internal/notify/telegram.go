package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramNotifier отправляет уведомления через Telegram Bot API
type TelegramNotifier struct {
	bot *bot.Bot
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: b}, nil
}

// Notify отправляет сообщение адресату. При наличии actionURL
// добавляет кнопку перехода к записи.
func (n *TelegramNotifier) Notify(ctx context.Context, target Target, text, actionURL string) error {
	params := &bot.SendMessageParams{Text: text}

	switch {
	case target.ChatID != 0:
		params.ChatID = target.ChatID
	case target.Username != "":
		params.ChatID = "@" + target.Username
	default:
		return fmt.Errorf("target has no telegram contact")
	}

	if actionURL != "" {
		params.ReplyMarkup = &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: "Открыть запись", URL: actionURL}},
			},
		}
	}

	if _, err := n.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
