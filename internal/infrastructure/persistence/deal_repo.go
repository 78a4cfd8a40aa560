package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
)

type DealRepository struct {
	db *sqlx.DB
}

// NewDealRepository создаёт новый экземпляр репозитория.
func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *DealRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.TransportError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.TransportError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.TransportError, "failed to commit")
	}

	return nil
}

// List возвращает все сделки в порядке создания.
func (r *DealRepository) List(ctx context.Context) ([]entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY id`

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.TransportError, "failed to list deals")
	}

	return toDomainList(schemas), nil
}

// ListByContact возвращает сделки контакта.
func (r *DealRepository) ListByContact(ctx context.Context, contactID int64) ([]entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE contact_id = $1 ORDER BY id`

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query, contactID); err != nil {
		return nil, domain.WrapError(err, errcodes.TransportError, "failed to list contact deals")
	}

	return toDomainList(schemas), nil
}

// GetByID возвращает сделку по идентификатору.
func (r *DealRepository) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDealNotFound(id)
		}
		return nil, domain.WrapError(err, errcodes.TransportError, "failed to get deal")
	}

	deal := schema.toDomain()

	return &deal, nil
}

// Create сохраняет новую сделку и возвращает её с присвоенным id.
func (r *DealRepository) Create(ctx context.Context, fields entity.DealFields) (*entity.Deal, error) {
	now := time.Now().UTC()
	schema := fromDeal(fields.WithDefaults().Apply(entity.Deal{CreatedAt: now, UpdatedAt: now}))

	query := `
		INSERT INTO deals (title, value, stage, contact_id, probability, expected_close_date, description, created_at, updated_at)
		VALUES (:title, :value, :stage, :contact_id, :probability, :expected_close_date, :description, :created_at, :updated_at)
		RETURNING ` + dealColumns

	var created dealSchema
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		rows, err := sqlx.NamedQueryContext(ctx, tx, query, schema)
		if err != nil {
			return mapWriteError(err, "failed to insert deal")
		}
		defer rows.Close()

		if !rows.Next() {
			return domain.NewError(errcodes.TransportError, "insert returned no rows")
		}

		return rows.StructScan(&created)
	})
	if err != nil {
		return nil, err
	}

	deal := created.toDomain()

	return &deal, nil
}

// Update перезаписывает только переданные поля. Строка блокируется на время
// чтения и записи, поэтому параллельные частичные обновления не теряют друг друга.
// Возвращается строка в том виде, в каком её сохранила база (округление
// NUMERIC, точность timestamptz).
func (r *DealRepository) Update(ctx context.Context, id int64, fields entity.DealFields) (*entity.Deal, error) {
	var updated dealSchema

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		current, err := r.lockTx(ctx, tx, id)
		if err != nil {
			return err
		}

		next := fields.Apply(current)
		next.UpdatedAt = time.Now().UTC()

		query := `
			UPDATE deals
			SET title = :title, value = :value, stage = :stage, contact_id = :contact_id,
				probability = :probability, expected_close_date = :expected_close_date,
				description = :description, updated_at = :updated_at
			WHERE id = :id
			RETURNING ` + dealColumns

		rows, err := sqlx.NamedQueryContext(ctx, tx, query, fromDeal(next))
		if err != nil {
			return mapWriteError(err, "failed to update deal")
		}
		defer rows.Close()

		if !rows.Next() {
			return domain.ErrDealNotFound(id)
		}

		return rows.StructScan(&updated)
	})
	if err != nil {
		return nil, err
	}

	deal := updated.toDomain()

	return &deal, nil
}

// UpdateStage меняет только стадию.
func (r *DealRepository) UpdateStage(ctx context.Context, id int64, stage value.Stage) (*entity.Deal, error) {
	query := `
		UPDATE deals
		SET stage = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + dealColumns

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, stage.String(), time.Now().UTC(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDealNotFound(id)
		}
		return nil, mapWriteError(err, "failed to update deal stage")
	}

	deal := schema.toDomain()

	return &deal, nil
}

// UpdateStages применяет изменения по одному: отказ одной записи не откатывает остальные.
// Ошибка всего вызова возвращается только если база недоступна.
func (r *DealRepository) UpdateStages(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error) {
	if err := r.db.PingContext(ctx); err != nil {
		return entity.BatchResult{}, domain.WrapError(err, errcodes.TransportError, "database unavailable")
	}

	var result entity.BatchResult

	for _, change := range changes {
		deal, err := r.UpdateStage(ctx, change.DealID, change.Stage)
		if err != nil {
			result.Failed = append(result.Failed, entity.StageFailure{
				Change: change,
				Kind:   domain.KindOf(err),
				Err:    err,
			})
			continue
		}

		result.Succeeded = append(result.Succeeded, *deal)
	}

	return result, nil
}

// Delete удаляет сделку.
func (r *DealRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return domain.WrapError(err, errcodes.TransportError, "failed to delete deal")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.TransportError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.ErrDealNotFound(id)
	}

	return nil
}

func (r *DealRepository) lockTx(ctx context.Context, tx *sqlx.Tx, id int64) (entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1 FOR UPDATE`

	var schema dealSchema
	if err := tx.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Deal{}, domain.ErrDealNotFound(id)
		}
		return entity.Deal{}, domain.WrapError(err, errcodes.TransportError, "failed to lock deal")
	}

	return schema.toDomain(), nil
}

// mapWriteError отличает отказ по ограничениям таблицы от сбоя связи.
func mapWriteError(err error, message string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation,
			pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
			return domain.WrapError(err, errcodes.RecordRejected, message)
		}
	}

	return domain.WrapError(err, errcodes.TransportError, message)
}

func toDomainList(schemas []dealSchema) []entity.Deal {
	deals := make([]entity.Deal, 0, len(schemas))
	for i := range schemas {
		deals = append(deals, schemas[i].toDomain())
	}

	return deals
}
