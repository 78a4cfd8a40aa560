package pipeline_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
)

const commitWait = 2 * time.Second

func scenarioDeals() []entity.Deal {
	return []entity.Deal{
		{
			ID:                1,
			Title:             "Website redesign",
			Value:             decimal.NewFromInt(1000),
			Stage:             value.StageLead,
			ContactID:         10,
			Probability:       20,
			ExpectedCloseDate: value.NewDate(2024, time.June, 1),
		},
		{
			ID:                2,
			Title:             "Annual support",
			Value:             decimal.NewFromInt(2000),
			Stage:             value.StageQualified,
			ContactID:         11,
			Probability:       50,
			ExpectedCloseDate: value.NewDate(2024, time.July, 15),
		},
	}
}

// repoMovingStages отвечает так, как ответило бы хранилище: берёт сделку
// из исходного набора и меняет ей стадию.
func repoMovingStages(deals []entity.Deal) *pipeline.StageRepositoryMock {
	byID := make(map[int64]entity.Deal, len(deals))
	for _, d := range deals {
		byID[d.ID] = d
	}

	move := func(id int64, stage value.Stage) (*entity.Deal, error) {
		deal, ok := byID[id]
		if !ok {
			return nil, domain.ErrDealNotFound(id)
		}

		deal.Stage = stage

		return &deal, nil
	}

	return &pipeline.StageRepositoryMock{
		UpdateStageFunc: func(_ context.Context, id int64, stage value.Stage) (*entity.Deal, error) {
			return move(id, stage)
		},
		UpdateStagesFunc: func(_ context.Context, changes []entity.StageChange) (entity.BatchResult, error) {
			var result entity.BatchResult

			for _, change := range changes {
				deal, err := move(change.DealID, change.Stage)
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
		},
	}
}

func okNotifier() *pipeline.NotifierMock {
	return &pipeline.NotifierMock{
		NotifyFunc: func(context.Context, pipeline.Notice) error { return nil },
	}
}

func waitCommit(t *testing.T, res pipeline.DropResult) pipeline.CommitResult {
	t.Helper()

	select {
	case result, ok := <-res.Done:
		if !ok {
			t.Fatal("commit channel closed without result")
		}
		return result
	case <-time.After(commitWait):
		t.Fatal("commit did not finish in time")
	}

	return pipeline.CommitResult{}
}

func requireSameDeals(t *testing.T, expected, actual []entity.Deal) {
	t.Helper()

	if len(expected) != len(actual) {
		t.Fatalf("expected %d deals, got %d", len(expected), len(actual))
	}

	for i := range expected {
		if !expected[i].Equal(actual[i]) {
			t.Fatalf("deal #%d differs:\nexpected %s\nactual   %s", i, dump(expected[i]), dump(actual[i]))
		}
	}
}

func dump(d entity.Deal) string {
	return fmt.Sprintf("{id:%d stage:%s value:%s title:%q}", d.ID, d.Stage, d.Value, d.Title)
}
