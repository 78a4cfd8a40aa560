package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"crm_pipeline/internal/domain/value"
)

// Deal — сделка в воронке продаж.
type Deal struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Stage             value.Stage     `json:"stage"`
	ContactID         int64           `json:"contactId"` // слабая ссылка на контакт, 0 — без контакта
	Probability       int             `json:"probability"`
	ExpectedCloseDate value.Date      `json:"expectedCloseDate"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Equal сравнивает сделки по всем полям.
// decimal.Decimal нельзя сравнивать через ==, поэтому отдельный метод.
func (d Deal) Equal(other Deal) bool {
	return d.ID == other.ID &&
		d.Title == other.Title &&
		d.Value.Equal(other.Value) &&
		d.Stage == other.Stage &&
		d.ContactID == other.ContactID &&
		d.Probability == other.Probability &&
		d.ExpectedCloseDate.Equal(other.ExpectedCloseDate.Time) &&
		d.Description == other.Description &&
		d.CreatedAt.Equal(other.CreatedAt) &&
		d.UpdatedAt.Equal(other.UpdatedAt)
}

// DealFields — входные данные создания и обновления.
// nil означает «поле не передано»: при обновлении сохраняется прежнее значение.
type DealFields struct {
	Title             *string
	Value             *decimal.Decimal
	Stage             *value.Stage
	ContactID         *int64
	Probability       *int
	ExpectedCloseDate *value.Date
	Description       *string
}

// Apply накладывает переданные поля на сделку.
func (f DealFields) Apply(d Deal) Deal {
	if f.Title != nil {
		d.Title = *f.Title
	}
	if f.Value != nil {
		d.Value = *f.Value
	}
	if f.Stage != nil {
		d.Stage = *f.Stage
	}
	if f.ContactID != nil {
		d.ContactID = *f.ContactID
	}
	if f.Probability != nil {
		d.Probability = *f.Probability
	}
	if f.ExpectedCloseDate != nil {
		d.ExpectedCloseDate = *f.ExpectedCloseDate
	}
	if f.Description != nil {
		d.Description = *f.Description
	}

	return d
}

// WithDefaults заполняет отсутствующие поля значениями для новой сделки.
func (f DealFields) WithDefaults() DealFields {
	if f.Stage == nil {
		stage := value.StageLead
		f.Stage = &stage
	}
	if f.Probability == nil {
		probability := 0
		f.Probability = &probability
	}

	return f
}

// StageChange — запрос на перевод сделки в стадию.
type StageChange struct {
	DealID int64       `json:"dealId"`
	Stage  value.Stage `json:"stage"`
}
