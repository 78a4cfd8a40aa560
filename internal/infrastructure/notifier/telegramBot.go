package notifier

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/pkg/logx"
)

var ErrQueueFull = errors.New("notice queue is full")

// TelegramBot отправляет уведомления доски в чат.
// Notify не ждёт сети: уведомление ставится в очередь, отправкой занимается Run.
type TelegramBot struct {
	bot     *telego.Bot
	chatID  int64
	notices chan pipeline.Notice
}

func NewTelegramBot(token string, chatID int64, queueSize int) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:     bot,
		chatID:  chatID,
		notices: make(chan pipeline.Notice, queueSize),
	}, nil
}

func (b *TelegramBot) Notify(ctx context.Context, notice pipeline.Notice) error {
	select {
	case b.notices <- notice:
		return nil
	default:
		logger(ctx).Warn("notice dropped", slog.Int64(logx.FieldDealID, notice.DealID))
		return ErrQueueFull
	}
}

// Run отправляет уведомления из очереди до отмены контекста.
func (b *TelegramBot) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case notice := <-b.notices:
			if err := b.SendNotice(ctx, notice); err != nil {
				logger(ctx).Error("failed to send notice", logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendNotice(ctx context.Context, notice pipeline.Notice) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		formatNotice(notice),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func formatNotice(notice pipeline.Notice) string {
	icon := "✅"
	if notice.Level == pipeline.NoticeError {
		icon = "❌"
	}

	text := icon + " " + html.EscapeString(notice.Text)

	if notice.DealID != 0 {
		text += fmt.Sprintf("\n\n<b>Deal:</b> #%d", notice.DealID)
	}

	if notice.Stage != "" {
		text += "\n<b>Stage:</b> " + html.EscapeString(notice.Stage.String())
	}

	if notice.Kind != "" {
		text += "\n<i>" + string(notice.Kind) + "</i>"
	}

	return text
}
