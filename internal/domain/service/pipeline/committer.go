package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/logx"
)

const (
	modeSingle = "single"
	modeBatch  = "batch"

	failedStageText = "Failed to update deal stage. Please try again."
)

//go:generate moq -rm -out stage_repository_mock.gen.go . StageRepository:StageRepositoryMock
type StageRepository interface {
	UpdateStage(ctx context.Context, id int64, stage value.Stage) (*entity.Deal, error)
	UpdateStages(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error)
}

// Committer выполняет авторитетную смену стадии и сверяет стор с результатом.
// Стор меняется только после успешного ответа хранилища.
type Committer struct {
	repo     StageRepository
	store    *Store
	notifier Notifier
}

func NewCommitter(repo StageRepository, store *Store, notifier Notifier) *Committer {
	return &Committer{
		repo:     repo,
		store:    store,
		notifier: notifier,
	}
}

// Commit переводит сделку в стадию. Повторный вызов с теми же аргументами
// даёт то же состояние: стадия перезаписывается целиком.
func (c *Committer) Commit(ctx context.Context, dealID int64, stage value.Stage) (entity.Deal, error) {
	if !stage.IsValid() {
		err := domain.NewError(errcodes.InvalidStage, fmt.Sprintf("unknown stage %q", stage))
		c.reportFailure(ctx, modeSingle, entity.StageChange{DealID: dealID, Stage: stage}, err)

		return entity.Deal{}, err
	}

	updated, err := c.repo.UpdateStage(ctx, dealID, stage)
	if err != nil {
		c.reportFailure(ctx, modeSingle, entity.StageChange{DealID: dealID, Stage: stage}, err)

		return entity.Deal{}, fmt.Errorf("repo.UpdateStage: %w", err)
	}

	c.adopt(ctx, *updated)
	observeCommit(modeSingle, "")

	logger(ctx).Info("deal stage committed",
		slog.Int64(logx.FieldDealID, dealID),
		logx.Stringer(logx.FieldStage, stage),
	)

	c.notify(ctx, Notice{
		Level:  NoticeSuccess,
		DealID: dealID,
		Stage:  stage,
		Text:   fmt.Sprintf("Deal moved to %s stage!", stage),
	})

	return *updated, nil
}

// CommitBatch отправляет пакет смен стадий одним вызовом. Каждая запись
// независима: успешные попадают в стор, каждая ошибка сообщается отдельно.
// Ошибка всего вызова возвращается целиком, стор при этом не меняется.
func (c *Committer) CommitBatch(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error) {
	if len(changes) == 0 {
		return entity.BatchResult{}, domain.NewError(errcodes.EmptyStageBatch, "no stage changes given")
	}

	var (
		result entity.BatchResult
		valid  = make([]entity.StageChange, 0, len(changes))
	)

	for _, change := range changes {
		if !change.Stage.IsValid() {
			err := domain.NewError(errcodes.InvalidStage, fmt.Sprintf("unknown stage %q", change.Stage))
			c.reportFailure(ctx, modeBatch, change, err)

			result.Failed = append(result.Failed, entity.StageFailure{
				Change: change,
				Kind:   entity.ErrorKindValidation,
				Err:    err,
			})

			continue
		}

		valid = append(valid, change)
	}

	if len(valid) == 0 {
		return result, nil
	}

	remote, err := c.repo.UpdateStages(ctx, valid)
	if err != nil {
		kind := domain.KindOf(err)
		observeCommit(modeBatch, kind)

		logger(ctx).Error("stage batch failed", slog.Int("changes", len(valid)), logx.Error(err))
		c.notify(ctx, Notice{Level: NoticeError, Kind: kind, Text: failedStageText})

		return result, fmt.Errorf("repo.UpdateStages: %w", err)
	}

	for _, deal := range remote.Succeeded {
		c.adopt(ctx, deal)
		observeCommit(modeBatch, "")
	}

	for _, failure := range remote.Failed {
		c.reportFailure(ctx, modeBatch, failure.Change, failure.Err)
	}

	result.Succeeded = remote.Succeeded
	result.Failed = append(result.Failed, remote.Failed...)

	logger(ctx).Info("stage batch committed",
		slog.Int("succeeded", result.SuccessCount()),
		slog.Int("failed", len(result.Failed)),
	)

	if result.SuccessCount() > 0 {
		c.notify(ctx, Notice{
			Level: NoticeSuccess,
			Text:  fmt.Sprintf("%d of %d deals moved", result.SuccessCount(), len(changes)),
		})
	}

	return result, nil
}

// adopt принимает ответ хранилища как истину для сделки с тем же id.
func (c *Committer) adopt(ctx context.Context, deal entity.Deal) {
	if !c.store.Replace(deal) {
		logger(ctx).Debug("committed deal is not on the board", slog.Int64(logx.FieldDealID, deal.ID))
	}
}

func (c *Committer) reportFailure(ctx context.Context, mode string, change entity.StageChange, err error) {
	kind := domain.KindOf(err)
	observeCommit(mode, kind)

	logger(ctx).Error("deal stage commit failed",
		slog.Int64(logx.FieldDealID, change.DealID),
		logx.Stringer(logx.FieldStage, change.Stage),
		slog.String(logx.FieldErrorKind, string(kind)),
		logx.Error(err),
	)

	c.notify(ctx, Notice{
		Level:  NoticeError,
		DealID: change.DealID,
		Stage:  change.Stage,
		Kind:   kind,
		Text:   failedStageText,
	})
}

func (c *Committer) notify(ctx context.Context, notice Notice) {
	if c.notifier == nil {
		return
	}

	if err := c.notifier.Notify(ctx, notice); err != nil {
		logger(ctx).Warn("failed to deliver notice", logx.Error(err))
	}
}
