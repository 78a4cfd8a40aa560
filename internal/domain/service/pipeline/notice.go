package pipeline

import (
	"context"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
)

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice — уведомление пользователю об исходе операции.
type Notice struct {
	Level  NoticeLevel
	DealID int64
	Stage  value.Stage
	Kind   entity.ErrorKind
	Text   string
}

//go:generate moq -rm -out notifier_mock.gen.go . Notifier:NotifierMock
type Notifier interface {
	Notify(ctx context.Context, notice Notice) error
}
