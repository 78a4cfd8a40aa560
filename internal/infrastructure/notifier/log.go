package notifier

import (
	"context"
	"log/slog"

	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/pkg/logx"
)

// Log пишет уведомления в лог. Используется, когда бот не настроен.
type Log struct{}

func NewLog() Log {
	return Log{}
}

func (Log) Notify(ctx context.Context, notice pipeline.Notice) error {
	attrs := []any{
		slog.String("notice", string(notice.Level)),
		slog.Int64(logx.FieldDealID, notice.DealID),
		logx.Stringer(logx.FieldStage, notice.Stage),
	}

	if notice.Level == pipeline.NoticeError {
		logger(ctx).Warn(notice.Text, append(attrs, slog.String(logx.FieldErrorKind, string(notice.Kind)))...)
		return nil
	}

	logger(ctx).Info(notice.Text, attrs...)

	return nil
}
