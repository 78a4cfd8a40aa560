package deal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/logx"
)

const maxProbability = 100

//go:generate moq -rm -out deal_repository_mock.gen.go . DealRepository:DealRepositoryMock
type DealRepository interface {
	List(ctx context.Context) ([]entity.Deal, error)
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	ListByContact(ctx context.Context, contactID int64) ([]entity.Deal, error)
	Create(ctx context.Context, fields entity.DealFields) (*entity.Deal, error)
	Update(ctx context.Context, id int64, fields entity.DealFields) (*entity.Deal, error)
	Delete(ctx context.Context, id int64) error
}

// DealService — CRUD сделок. Успешные изменения зеркалируются в стор доски,
// чтобы доска не расходилась с хранилищем без полной перезагрузки.
type DealService struct {
	repo  DealRepository
	store *pipeline.Store
}

func NewDealService(repo DealRepository, store *pipeline.Store) *DealService {
	return &DealService{
		repo:  repo,
		store: store,
	}
}

func (s *DealService) List(ctx context.Context) ([]entity.Deal, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return deals, nil
}

func (s *DealService) Get(ctx context.Context, id int64) (entity.Deal, error) {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	return *deal, nil
}

func (s *DealService) ListByContact(ctx context.Context, contactID int64) ([]entity.Deal, error) {
	if contactID <= 0 {
		return nil, domain.NewError(errcodes.InvalidContactID, "contact id must be positive")
	}

	deals, err := s.repo.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByContact: %w", err)
	}

	return deals, nil
}

// Create создаёт сделку. Отсутствующая стадия становится Lead, вероятность — 0.
func (s *DealService) Create(ctx context.Context, fields entity.DealFields) (entity.Deal, error) {
	fields = fields.WithDefaults()

	if err := validate(fields, true); err != nil {
		return entity.Deal{}, err
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		logger(ctx).Error("failed to create deal", logx.Error(err))
		return entity.Deal{}, fmt.Errorf("repo.Create: %w", err)
	}

	s.store.Add(*created)
	logger(ctx).Info("deal created", slog.Int64(logx.FieldDealID, created.ID), logx.Stringer(logx.FieldStage, created.Stage))

	return *created, nil
}

// Update меняет только переданные поля, остальные сохраняют прежние значения.
func (s *DealService) Update(ctx context.Context, id int64, fields entity.DealFields) (entity.Deal, error) {
	if err := validate(fields, false); err != nil {
		return entity.Deal{}, err
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		logger(ctx).Error("failed to update deal", slog.Int64(logx.FieldDealID, id), logx.Error(err))
		return entity.Deal{}, fmt.Errorf("repo.Update: %w", err)
	}

	s.store.Add(*updated)
	logger(ctx).Info("deal updated", slog.Int64(logx.FieldDealID, id))

	return *updated, nil
}

// Delete удаляет сделку. Если хранилище её не нашло, стор не меняется.
func (s *DealService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger(ctx).Error("failed to delete deal", slog.Int64(logx.FieldDealID, id), logx.Error(err))
		return fmt.Errorf("repo.Delete: %w", err)
	}

	s.store.Remove(id)
	logger(ctx).Info("deal deleted", slog.Int64(logx.FieldDealID, id))

	return nil
}

func validate(fields entity.DealFields, creating bool) error {
	switch {
	case creating && fields.Title == nil,
		fields.Title != nil && strings.TrimSpace(*fields.Title) == "":
		return domain.NewError(errcodes.InvalidDealTitle, "title is required")
	case creating && fields.Value == nil:
		return domain.NewError(errcodes.InvalidDealValue, "value is required")
	case fields.Value != nil && fields.Value.IsNegative():
		return domain.NewError(errcodes.InvalidDealValue, "value must not be negative")
	case fields.Stage != nil && !fields.Stage.IsValid():
		return domain.NewError(errcodes.InvalidStage, fmt.Sprintf("unknown stage %q", *fields.Stage))
	case fields.Probability != nil && (*fields.Probability < 0 || *fields.Probability > maxProbability):
		return domain.NewError(errcodes.InvalidProbability, "probability must be between 0 and 100")
	case fields.ContactID != nil && *fields.ContactID < 0:
		return domain.NewError(errcodes.InvalidContactID, "contact id must not be negative")
	}

	return nil
}
