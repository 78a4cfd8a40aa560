package deal_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/deal"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
)

func existingDeal() entity.Deal {
	return entity.Deal{
		ID:                7,
		Title:             "Data migration",
		Value:             decimal.NewFromInt(5000),
		Stage:             value.StageProposal,
		ContactID:         3,
		Probability:       40,
		ExpectedCloseDate: value.NewDate(2024, time.September, 30),
		Description:       "phase one",
	}
}

// memoryRepo ведёт себя как хранилище с одной сделкой.
func memoryRepo(stored entity.Deal) *deal.DealRepositoryMock {
	nextID := stored.ID + 1

	return &deal.DealRepositoryMock{
		CreateFunc: func(_ context.Context, fields entity.DealFields) (*entity.Deal, error) {
			created := fields.Apply(entity.Deal{ID: nextID})
			return &created, nil
		},
		UpdateFunc: func(_ context.Context, id int64, fields entity.DealFields) (*entity.Deal, error) {
			if id != stored.ID {
				return nil, domain.ErrDealNotFound(id)
			}
			updated := fields.Apply(stored)
			return &updated, nil
		},
		DeleteFunc: func(_ context.Context, id int64) error {
			if id != stored.ID {
				return domain.ErrDealNotFound(id)
			}
			return nil
		},
		GetByIDFunc: func(_ context.Context, id int64) (*entity.Deal, error) {
			if id != stored.ID {
				return nil, domain.ErrDealNotFound(id)
			}
			return &stored, nil
		},
		ListFunc: func(context.Context) ([]entity.Deal, error) {
			return []entity.Deal{stored}, nil
		},
		ListByContactFunc: func(_ context.Context, contactID int64) ([]entity.Deal, error) {
			if contactID == stored.ContactID {
				return []entity.Deal{stored}, nil
			}
			return nil, nil
		},
	}
}

func TestCreate(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		fields   entity.DealFields
		wantCode string
	}{
		{
			name: "Minimal deal gets Lead and zero probability",
			fields: entity.DealFields{
				Title: lo.ToPtr("New deal"),
				Value: lo.ToPtr(decimal.NewFromInt(100)),
			},
		},
		{
			name: "Zero value is allowed",
			fields: entity.DealFields{
				Title: lo.ToPtr("Free pilot"),
				Value: lo.ToPtr(decimal.Zero),
				Stage: lo.ToPtr(value.StageQualified),
			},
		},
		{
			name:     "Missing title",
			fields:   entity.DealFields{Value: lo.ToPtr(decimal.NewFromInt(1))},
			wantCode: string(errcodes.InvalidDealTitle),
		},
		{
			name: "Blank title",
			fields: entity.DealFields{
				Title: lo.ToPtr("   "),
				Value: lo.ToPtr(decimal.NewFromInt(1)),
			},
			wantCode: string(errcodes.InvalidDealTitle),
		},
		{
			name:     "Missing value",
			fields:   entity.DealFields{Title: lo.ToPtr("No value")},
			wantCode: string(errcodes.InvalidDealValue),
		},
		{
			name: "Negative value",
			fields: entity.DealFields{
				Title: lo.ToPtr("Refund"),
				Value: lo.ToPtr(decimal.NewFromInt(-5)),
			},
			wantCode: string(errcodes.InvalidDealValue),
		},
		{
			name: "Probability above 100",
			fields: entity.DealFields{
				Title:       lo.ToPtr("Sure thing"),
				Value:       lo.ToPtr(decimal.NewFromInt(1)),
				Probability: lo.ToPtr(101),
			},
			wantCode: string(errcodes.InvalidProbability),
		},
		{
			name: "Unknown stage",
			fields: entity.DealFields{
				Title: lo.ToPtr("Odd"),
				Value: lo.ToPtr(decimal.NewFromInt(1)),
				Stage: lo.ToPtr(value.Stage("Won")),
			},
			wantCode: string(errcodes.InvalidStage),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			repo := memoryRepo(existingDeal())
			store := pipeline.NewStore(existingDeal())
			svc := deal.NewDealService(repo, store)

			created, err := svc.Create(context.Background(), tc.fields)
			if tc.wantCode != "" {
				rq.Error(err)
				rq.True(domain.IsValidation(err))
				code, _ := domain.GetCode(err)
				rq.Equal(tc.wantCode, string(code))
				rq.Empty(repo.CreateCalls())
				rq.Equal(1, store.Len())
				return
			}

			rq.NoError(err)
			rq.True(created.Stage.IsValid())
			if tc.fields.Stage == nil {
				rq.Equal(value.StageLead, created.Stage)
				rq.Zero(created.Probability)
			}

			stored, ok := store.Get(created.ID)
			rq.True(ok)
			rq.True(created.Equal(stored))
			rq.Equal(2, store.Len())
		})
	}
}

func TestUpdateKeepsOmittedFields(t *testing.T) {
	rq := require.New(t)

	before := existingDeal()
	store := pipeline.NewStore(before)
	svc := deal.NewDealService(memoryRepo(before), store)

	updated, err := svc.Update(context.Background(), before.ID, entity.DealFields{
		Probability: lo.ToPtr(75),
	})
	rq.NoError(err)

	rq.Equal(75, updated.Probability)
	rq.Equal(before.Title, updated.Title)
	rq.True(before.Value.Equal(updated.Value))
	rq.Equal(before.Stage, updated.Stage)
	rq.Equal(before.ContactID, updated.ContactID)
	rq.Equal(before.Description, updated.Description)
	rq.True(before.ExpectedCloseDate.Equal(updated.ExpectedCloseDate.Time))

	stored, ok := store.Get(before.ID)
	rq.True(ok)
	rq.Equal(75, stored.Probability)
}

func TestUpdateValidation(t *testing.T) {
	rq := require.New(t)

	before := existingDeal()
	repo := memoryRepo(before)
	svc := deal.NewDealService(repo, pipeline.NewStore(before))

	_, err := svc.Update(context.Background(), before.ID, entity.DealFields{Title: lo.ToPtr("")})
	rq.True(domain.IsValidation(err))

	_, err = svc.Update(context.Background(), before.ID, entity.DealFields{Probability: lo.ToPtr(-1)})
	rq.True(domain.IsValidation(err))

	rq.Empty(repo.UpdateCalls())
}

func TestUpdateUnknownDeal(t *testing.T) {
	rq := require.New(t)

	before := existingDeal()
	store := pipeline.NewStore(before)
	svc := deal.NewDealService(memoryRepo(before), store)

	_, err := svc.Update(context.Background(), 404, entity.DealFields{Probability: lo.ToPtr(10)})
	rq.True(domain.IsNotFound(err))
	rq.Equal(1, store.Len())
}

func TestDelete(t *testing.T) {
	rq := require.New(t)

	before := existingDeal()
	store := pipeline.NewStore(before)
	svc := deal.NewDealService(memoryRepo(before), store)

	err := svc.Delete(context.Background(), 404)
	rq.True(domain.IsNotFound(err))
	rq.Equal(1, store.Len())

	rq.NoError(svc.Delete(context.Background(), before.ID))
	rq.Zero(store.Len())
}

func TestGetAndList(t *testing.T) {
	rq := require.New(t)

	before := existingDeal()
	svc := deal.NewDealService(memoryRepo(before), pipeline.NewStore())

	got, err := svc.Get(context.Background(), before.ID)
	rq.NoError(err)
	rq.True(before.Equal(got))

	_, err = svc.Get(context.Background(), 404)
	rq.True(domain.IsNotFound(err))

	all, err := svc.List(context.Background())
	rq.NoError(err)
	rq.Len(all, 1)

	byContact, err := svc.ListByContact(context.Background(), before.ContactID)
	rq.NoError(err)
	rq.Len(byContact, 1)

	byContact, err = svc.ListByContact(context.Background(), 999)
	rq.NoError(err)
	rq.Empty(byContact)

	_, err = svc.ListByContact(context.Background(), 0)
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.InvalidContactID, code)
}
