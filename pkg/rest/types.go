// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "github.com/shopspring/decimal"

// Deal Сделка
type Deal struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Stage             string          `json:"stage"`
	ContactID         *int64          `json:"contactId"`
	Probability       int             `json:"probability"`
	ExpectedCloseDate *string         `json:"expectedCloseDate"`
	Description       string          `json:"description"`
	CreatedAt         string          `json:"createdAt,omitempty"`
	UpdatedAt         string          `json:"updatedAt,omitempty"`
}

// DealInput Поля для создания и частичного обновления сделки.
// Отсутствующее поле при обновлении сохраняет прежнее значение.
type DealInput struct {
	Title             *string          `json:"title" validate:"omitempty,max=255"`
	Value             *decimal.Decimal `json:"value"`
	Stage             *string          `json:"stage"`
	ContactID         *int64           `json:"contactId" validate:"omitempty,gte=0"`
	Probability       *int             `json:"probability" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate *string          `json:"expectedCloseDate"`
	Description       *string          `json:"description" validate:"omitempty,max=4000"`
}

// Column Колонка доски
type Column struct {
	Stage string          `json:"stage"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Deals []Deal          `json:"deals"`
}

// Board Доска сделок
type Board struct {
	Columns []Column `json:"columns"`
}

// StageStat Агрегат по стадии
type StageStat struct {
	Stage string          `json:"stage"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// Summary Агрегаты воронки
type Summary struct {
	TotalDeals     int             `json:"totalDeals"`
	OpenValue      decimal.Decimal `json:"openValue"`
	ClosedWonCount int             `json:"closedWonCount"`
	ClosedWonValue decimal.Decimal `json:"closedWonValue"`
	ConversionRate int             `json:"conversionRate"`
	Stages         []StageStat     `json:"stages"`
}

// StageRequest Перевод сделки в стадию
type StageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// MoveResponse Итог переноса без коммита
type MoveResponse struct {
	Outcome string `json:"outcome"`
}

// StageChange Элемент пакетной смены стадий
type StageChange struct {
	DealID int64  `json:"dealId" validate:"required,gt=0"`
	Stage  string `json:"stage" validate:"required"`
}

// StagesRequest Пакетная смена стадий
type StagesRequest struct {
	Changes []StageChange `json:"changes" validate:"dive"`
	// Async Выполнить в фоне и вернуть id задачи
	Async bool `json:"async"`
}

// StageFailure Неуспешный элемент пакета
type StageFailure struct {
	DealID  int64  `json:"dealId"`
	Stage   string `json:"stage"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// BatchResult Итог пакетной смены стадий
type BatchResult struct {
	Succeeded []Deal         `json:"succeeded"`
	Failed    []StageFailure `json:"failed"`
}

// TaskAccepted Задача поставлена в очередь
type TaskAccepted struct {
	TaskID string `json:"taskId"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
