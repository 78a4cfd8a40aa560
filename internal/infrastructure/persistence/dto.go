package persistence

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
)

const dealColumns = `id, title, value, stage, contact_id, probability, expected_close_date, description, created_at, updated_at`

// dealSchema — внутренняя структура для маппинга строки таблицы deals.
type dealSchema struct {
	ID                int64           `db:"id"`
	Title             string          `db:"title"`
	Value             decimal.Decimal `db:"value"`
	Stage             string          `db:"stage"`
	ContactID         sql.NullInt64   `db:"contact_id"`
	Probability       int             `db:"probability"`
	ExpectedCloseDate value.Date      `db:"expected_close_date"`
	Description       string          `db:"description"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func (s *dealSchema) toDomain() entity.Deal {
	return entity.Deal{
		ID:                s.ID,
		Title:             s.Title,
		Value:             s.Value,
		Stage:             value.Stage(s.Stage),
		ContactID:         s.ContactID.Int64,
		Probability:       s.Probability,
		ExpectedCloseDate: s.ExpectedCloseDate,
		Description:       s.Description,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// FromDeal собирает строку для вставки или полной перезаписи.
func fromDeal(d entity.Deal) *dealSchema {
	return &dealSchema{
		ID:                d.ID,
		Title:             d.Title,
		Value:             d.Value,
		Stage:             d.Stage.String(),
		ContactID:         sql.NullInt64{Int64: d.ContactID, Valid: d.ContactID > 0},
		Probability:       d.Probability,
		ExpectedCloseDate: d.ExpectedCloseDate,
		Description:       d.Description,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
