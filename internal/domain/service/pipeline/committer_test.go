package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
)

func TestCommit(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name         string
		dealID       int64
		stage        value.Stage
		updateErr    error
		expectedKind entity.ErrorKind
		repoCalls    int
	}{
		{
			name:      "Success",
			dealID:    2,
			stage:     value.StageClosedWon,
			repoCalls: 1,
		},
		{
			name:         "Unknown stage is rejected before persistence",
			dealID:       2,
			stage:        value.Stage("Someday"),
			expectedKind: entity.ErrorKindValidation,
		},
		{
			name:         "Deal not found",
			dealID:       77,
			stage:        value.StageProposal,
			updateErr:    domain.ErrDealNotFound(77),
			expectedKind: entity.ErrorKindNotFound,
			repoCalls:    1,
		},
		{
			name:         "Rejected by storage",
			dealID:       1,
			stage:        value.StageProposal,
			updateErr:    domain.NewError(errcodes.RecordRejected, "stage_c: read only"),
			expectedKind: entity.ErrorKindRejected,
			repoCalls:    1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			repo := repoMovingStages(scenarioDeals())
			if tc.updateErr != nil {
				repo.UpdateStageFunc = func(context.Context, int64, value.Stage) (*entity.Deal, error) {
					return nil, tc.updateErr
				}
			}

			notifier := okNotifier()
			store := pipeline.NewStore(scenarioDeals()...)
			committer := pipeline.NewCommitter(repo, store, notifier)

			deal, err := committer.Commit(ctx, tc.dealID, tc.stage)

			rq.Len(repo.UpdateStageCalls(), tc.repoCalls)
			rq.Len(notifier.NotifyCalls(), 1)

			if tc.expectedKind != "" {
				rq.Error(err)
				rq.Equal(tc.expectedKind, domain.KindOf(err))
				rq.Equal(pipeline.NoticeError, notifier.NotifyCalls()[0].Notice.Level)
				requireSameDeals(t, scenarioDeals(), store.Snapshot())

				return
			}

			rq.NoError(err)
			rq.Equal(tc.stage, deal.Stage)

			stored, ok := store.Get(tc.dealID)
			rq.True(ok)
			rq.True(deal.Equal(stored))
		})
	}
}

func TestCommitIsIdempotent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := pipeline.NewStore(scenarioDeals()...)
	committer := pipeline.NewCommitter(repoMovingStages(scenarioDeals()), store, okNotifier())

	_, err := committer.Commit(ctx, 1, value.StageNegotiation)
	rq.NoError(err)
	once := store.Snapshot()

	_, err = committer.Commit(ctx, 1, value.StageNegotiation)
	rq.NoError(err)

	requireSameDeals(t, once, store.Snapshot())
}

func TestCommitNotifierFailureIsNotFatal(t *testing.T) {
	rq := require.New(t)

	notifier := &pipeline.NotifierMock{
		NotifyFunc: func(context.Context, pipeline.Notice) error {
			return errors.New("telegram: too many requests")
		},
	}
	store := pipeline.NewStore(scenarioDeals()...)
	committer := pipeline.NewCommitter(repoMovingStages(scenarioDeals()), store, notifier)

	deal, err := committer.Commit(context.Background(), 1, value.StageQualified)
	rq.NoError(err)
	rq.Equal(value.StageQualified, deal.Stage)
}

func TestCommitBatchPartialFailure(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	deals := append(scenarioDeals(), entity.Deal{ID: 3, Title: "Pilot", Stage: value.StageProposal})
	rejection := domain.NewError(errcodes.RecordRejected, "probability_c: must be between 0 and 100")

	inner := repoMovingStages(deals)
	repo := &pipeline.StageRepositoryMock{
		UpdateStagesFunc: func(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error) {
			result, err := inner.UpdateStages(ctx, changes[:2])
			rq.NoError(err)

			result.Failed = append(result.Failed, entity.StageFailure{
				Change: changes[2],
				Kind:   entity.ErrorKindRejected,
				Err:    rejection,
			})

			return result, nil
		},
	}
	notifier := okNotifier()
	store := pipeline.NewStore(deals...)
	committer := pipeline.NewCommitter(repo, store, notifier)

	changes := []entity.StageChange{
		{DealID: 1, Stage: value.StageQualified},
		{DealID: 2, Stage: value.StageProposal},
		{DealID: 3, Stage: value.StageClosedWon},
	}

	result, err := committer.CommitBatch(ctx, changes)
	rq.NoError(err)
	rq.Equal(2, result.SuccessCount())
	rq.Len(result.Failed, 1)
	rq.Equal(int64(3), result.Failed[0].Change.DealID)
	rq.Equal(entity.ErrorKindRejected, result.Failed[0].Kind)
	rq.ErrorIs(result.Failed[0].Err, rejection)

	expected := append(scenarioDeals(), deals[2])
	expected[0].Stage = value.StageQualified
	expected[1].Stage = value.StageProposal
	requireSameDeals(t, expected, store.Snapshot())

	var errorNotices, successNotices int
	for _, call := range notifier.NotifyCalls() {
		switch call.Notice.Level {
		case pipeline.NoticeError:
			errorNotices++
			rq.Equal(int64(3), call.Notice.DealID)
		case pipeline.NoticeSuccess:
			successNotices++
			rq.Equal("2 of 3 deals moved", call.Notice.Text)
		}
	}

	rq.Equal(1, errorNotices)
	rq.Equal(1, successNotices)
}

func TestCommitBatchValidation(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := repoMovingStages(scenarioDeals())
	store := pipeline.NewStore(scenarioDeals()...)
	committer := pipeline.NewCommitter(repo, store, okNotifier())

	_, err := committer.CommitBatch(ctx, nil)
	rq.True(domain.IsValidation(err))

	result, err := committer.CommitBatch(ctx, []entity.StageChange{
		{DealID: 1, Stage: value.Stage("Nope")},
		{DealID: 2, Stage: value.StageNegotiation},
	})
	rq.NoError(err)
	rq.Equal(1, result.SuccessCount())
	rq.Len(result.Failed, 1)
	rq.Equal(entity.ErrorKindValidation, result.Failed[0].Kind)

	calls := repo.UpdateStagesCalls()
	rq.Len(calls, 1)
	rq.Equal([]entity.StageChange{{DealID: 2, Stage: value.StageNegotiation}}, calls[0].Changes)
}

func TestCommitBatchTransportFailure(t *testing.T) {
	rq := require.New(t)

	repo := &pipeline.StageRepositoryMock{
		UpdateStagesFunc: func(context.Context, []entity.StageChange) (entity.BatchResult, error) {
			return entity.BatchResult{}, domain.WrapError(errors.New("i/o timeout"), errcodes.TransportError, "records api")
		},
	}
	notifier := okNotifier()
	store := pipeline.NewStore(scenarioDeals()...)
	committer := pipeline.NewCommitter(repo, store, notifier)

	result, err := committer.CommitBatch(context.Background(), []entity.StageChange{
		{DealID: 1, Stage: value.StageProposal},
		{DealID: 2, Stage: value.StageProposal},
	})

	rq.True(domain.IsTransport(err))
	rq.Zero(result.SuccessCount())
	rq.Len(notifier.NotifyCalls(), 1)
	requireSameDeals(t, scenarioDeals(), store.Snapshot())
}
