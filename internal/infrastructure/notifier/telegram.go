package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/dylan-park/TradeBell/internal/domain"
	"github.com/dylan-park/TradeBell/pkg/errcodes"
)

// TelegramBot delivers trade notifications to a single chat. Safe for
// concurrent use by all account pollers.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Send delivers one HTML-formatted message. Failures are reported to the
// caller and never retried here.
func (b *TelegramBot) Send(ctx context.Context, text string) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return domain.WrapError(err, errcodes.NotificationError, "send message")
	}

	return nil
}

// SendText delivers a plain text message, used for the startup check.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}
