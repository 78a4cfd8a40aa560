package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/samber/lo"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	refresherStatus := "🔴 stopped"
	if h.refresher.IsRunning() {
		refresherStatus = "🟢 running"
	}

	summary := h.board.Summary()

	text := fmt.Sprintf("📊 <b>Status</b>\n\n🔄 <b>Refresher:</b> %s\n📦 <b>Deals loaded:</b> %d",
		refresherStatus,
		summary.TotalDeals,
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) OnBoard(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, formatBoard(h.board.Columns()))
}

func (h *Handler) OnSummary(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, formatSummary(h.board.Summary()))
}

// OnMove переносит сделку. Итог коммита придёт отдельным уведомлением.
// Использование: /move 12 Closed Won
func (h *Handler) OnMove(ctx *th.Context, msg telego.Message) error {
	dealID, stage, reply := parseMoveArgs(msg.Text)
	if reply != "" {
		return h.sendHTML(ctx, msg.Chat.ID, reply)
	}

	res, err := h.board.Move(ctx, dealID, stage)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "❌ "+moveErrorText(err))
	}

	return h.sendHTML(ctx, msg.Chat.ID, outcomeText(res.Outcome, dealID, stage))
}

func (h *Handler) OnRefresh(ctx *th.Context, msg telego.Message) error {
	if err := h.board.Refresh(ctx); err != nil {
		logger(ctx).Error("board refresh from bot failed", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, RefreshFailed)
	}

	return h.sendHTML(ctx, msg.Chat.ID, RefreshSucceeded)
}

// parseMoveArgs разбирает «/move ID Stage». Название стадии может состоять
// из нескольких слов и сравнивается без учёта регистра.
func parseMoveArgs(text string) (int64, value.Stage, string) {
	args := strings.Fields(text)
	if len(args) < 3 { //nolint:mnd
		return 0, "", MoveUsage
	}

	dealID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || dealID <= 0 {
		return 0, "", MoveInvalidID
	}

	stage, ok := value.NormalizeStage(strings.Join(args[2:], " "))
	if !ok {
		names := lo.Map(value.AllStages(), func(s value.Stage, _ int) string { return s.String() })
		return 0, "", fmt.Sprintf("❌ Unknown stage. Available: %s", strings.Join(names, ", "))
	}

	return dealID, stage, ""
}

func outcomeText(outcome pipeline.Outcome, dealID int64, stage value.Stage) string {
	switch outcome {
	case pipeline.OutcomeUnchanged:
		return fmt.Sprintf(MoveUnchanged, dealID)
	case pipeline.OutcomeInFlight:
		return fmt.Sprintf(MoveInFlight, dealID)
	default:
		return fmt.Sprintf(MoveCommitting, dealID, stage)
	}
}

func moveErrorText(err error) string {
	if domain.IsNotFound(err) {
		return "Deal not found"
	}

	return "Failed to move deal"
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})

	return err //nolint:wrapcheck
}
