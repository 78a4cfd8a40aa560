package server

import (
	"context"
	"fmt"
	"net/http"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/httpx/reply"
	"crm_pipeline/pkg/httpx/req"
	"crm_pipeline/pkg/rest"
)

type board interface {
	Columns() []pipeline.Column
	Summary() pipeline.Summary
	Refresh(ctx context.Context) error
	Move(ctx context.Context, dealID int64, target value.Stage) (pipeline.DropResult, error)
}

type batchCommitter interface {
	CommitBatch(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error)
}

//go:generate moq -rm -out batch_enqueuer_mock.gen.go . batchEnqueuer:batchEnqueuerMock
type batchEnqueuer interface {
	EnqueueStageBatch(ctx context.Context, changes []entity.StageChange) (string, error)
}

type BoardServer struct {
	board     board
	committer batchCommitter
	enqueuer  batchEnqueuer
}

func NewBoardServer(board board, committer batchCommitter, enqueuer batchEnqueuer) BoardServer {
	return BoardServer{
		board:     board,
		committer: committer,
		enqueuer:  enqueuer,
	}
}

func (s BoardServer) getV1Board(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTBoard(s.board.Columns()))

	return nil
}

func (s BoardServer) getV1BoardSummary(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTSummary(s.board.Summary()))

	return nil
}

func (s BoardServer) postV1BoardRefresh(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := s.board.Refresh(ctx); err != nil {
		return fmt.Errorf("board.Refresh: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBoard(s.board.Columns()))

	return nil
}

// postV1DealStage переносит сделку и ждёт коммита, пока жив запрос.
// Если клиент ушёл раньше, коммит доводится до конца в фоне.
func (s BoardServer) postV1DealStage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(r.PathValue("id"))
	if err != nil {
		return err
	}

	var request rest.StageRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	stage, err := value.ParseStage(request.Stage)
	if err != nil {
		return fmt.Errorf("value.ParseStage: %w", err)
	}

	res, err := s.board.Move(ctx, id, stage)
	if err != nil {
		return fmt.Errorf("board.Move: %w", err)
	}

	if res.Outcome != pipeline.OutcomeCommitting {
		reply.JSON(ctx, w, http.StatusOK, rest.MoveResponse{Outcome: string(res.Outcome)})
		return nil
	}

	select {
	case result := <-res.Done:
		if result.Err != nil {
			return fmt.Errorf("committer.Commit: %w", result.Err)
		}

		reply.JSON(ctx, w, http.StatusOK, newRESTDeal(result.Deal))
	case <-ctx.Done():
		reply.JSON(ctx, w, http.StatusAccepted, rest.MoveResponse{Outcome: string(res.Outcome)})
	}

	return nil
}

func (s BoardServer) postV1DealStages(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.StagesRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	changes := newDomainStageChanges(request.Changes)

	if request.Async {
		if len(changes) == 0 {
			return domain.NewError(errcodes.EmptyStageBatch, "no stage changes given")
		}

		taskID, err := s.enqueuer.EnqueueStageBatch(ctx, changes)
		if err != nil {
			return fmt.Errorf("enqueuer.EnqueueStageBatch: %w", err)
		}

		reply.JSON(ctx, w, http.StatusAccepted, rest.TaskAccepted{TaskID: taskID})

		return nil
	}

	result, err := s.committer.CommitBatch(ctx, changes)
	if err != nil {
		return fmt.Errorf("committer.CommitBatch: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBatchResult(result))

	return nil
}
