package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/internal/worker"
	"crm_pipeline/pkg/contextx"
)

func TestStageBatchHandle(t *testing.T) {
	rq := require.New(t)

	changes := []entity.StageChange{
		{DealID: 1, Stage: value.StageProposal},
		{DealID: 2, Stage: value.StageClosedLost},
	}

	validTask, err := worker.NewStageBatchTask(changes, contextx.TraceID("cr9h3kbl0s7bb0e4pd2g"))
	rq.NoError(err)
	rq.Equal(worker.TypeStageBatch, validTask.Type())
	rq.Contains(string(validTask.Payload()), `"traceId":"cr9h3kbl0s7bb0e4pd2g"`)

	testCases := []struct {
		name      string
		task      *asynq.Task
		commitErr error
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "Commits all changes",
			task:      validTask,
			wantCalls: 1,
		},
		{
			name:    "Broken payload",
			task:    asynq.NewTask(worker.TypeStageBatch, []byte(`{"changes":`)),
			wantErr: true,
		},
		{
			name:    "Empty payload",
			task:    asynq.NewTask(worker.TypeStageBatch, []byte(`{"changes":[]}`)),
			wantErr: true,
		},
		{
			name:      "Whole batch failed",
			task:      validTask,
			commitErr: errors.New("records service unavailable"),
			wantErr:   true,
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			committer := &worker.BatchCommitterMock{
				CommitBatchFunc: func(ctx context.Context, got []entity.StageChange) (entity.BatchResult, error) {
					rq.Equal(changes, got)

					traceID, err := contextx.TraceIDFromContext(ctx)
					rq.NoError(err)
					rq.Equal("cr9h3kbl0s7bb0e4pd2g", traceID.String())

					if tc.commitErr != nil {
						return entity.BatchResult{}, tc.commitErr
					}
					return entity.BatchResult{Succeeded: []entity.Deal{{ID: 1}, {ID: 2}}}, nil
				},
			}

			err := worker.NewStageBatch(committer).Handle(context.Background(), tc.task)
			if tc.wantErr {
				rq.Error(err)
				rq.ErrorIs(err, asynq.SkipRetry)
			} else {
				rq.NoError(err)
			}

			rq.Len(committer.CommitBatchCalls(), tc.wantCalls)
		})
	}
}

func TestStageBatchHandlerPattern(t *testing.T) {
	rq := require.New(t)

	h := worker.NewStageBatch(&worker.BatchCommitterMock{}).Handler()
	rq.Equal("pipeline:stage_batch", h.Pattern)
	rq.NotNil(h.Handle)
}
