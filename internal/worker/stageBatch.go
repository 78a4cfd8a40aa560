package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/pkg/application/modules"
	"crm_pipeline/pkg/contextx"
	"crm_pipeline/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const TypeStageBatch = "pipeline:stage_batch"

var errEmptyPayload = errors.New("stage batch payload has no changes")

type StageBatchPayload struct {
	Changes []entity.StageChange `json:"changes"`
	// TraceID запроса, поставившего задачу; логи обработки пишутся с ним же
	TraceID string `json:"traceId,omitempty"`
}

//go:generate moq -rm -out batch_committer_mock.gen.go . BatchCommitter:BatchCommitterMock
type BatchCommitter interface {
	CommitBatch(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error)
}

// StageBatch выполняет пакетную смену стадий в фоне.
// Повторов нет: о каждом отказе коммиттер уже уведомил, повтор уведомил бы снова.
type StageBatch struct {
	committer BatchCommitter
}

func NewStageBatch(committer BatchCommitter) *StageBatch {
	return &StageBatch{committer: committer}
}

func (w *StageBatch) Handler() modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TypeStageBatch,
		Handle:  w.Handle,
	}
}

func (w *StageBatch) Handle(ctx context.Context, task *asynq.Task) error {
	var payload StageBatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	ctx = taskContext(ctx, payload.TraceID)

	if len(payload.Changes) == 0 {
		return fmt.Errorf("%w: %w", errEmptyPayload, asynq.SkipRetry)
	}

	result, err := w.committer.CommitBatch(ctx, payload.Changes)
	if err != nil {
		logger(ctx).Error("stage batch failed", slog.Int("changes", len(payload.Changes)), logx.Error(err))
		return fmt.Errorf("committer.CommitBatch: %w: %w", err, asynq.SkipRetry)
	}

	logger(ctx).Info(
		"stage batch processed",
		slog.Int("succeeded", result.SuccessCount()),
		slog.Int("failed", len(result.Failed)),
	)

	return nil
}

// Enqueuer ставит пакетные задачи в очередь asynq.
type Enqueuer struct {
	client *asynq.Client
	queue  string
}

func NewEnqueuer(client *asynq.Client, queue string) *Enqueuer {
	return &Enqueuer{
		client: client,
		queue:  queue,
	}
}

// EnqueueStageBatch возвращает id поставленной задачи.
func (e *Enqueuer) EnqueueStageBatch(ctx context.Context, changes []entity.StageChange) (string, error) {
	traceID, _ := contextx.TraceIDFromContext(ctx)

	task, err := NewStageBatchTask(changes, traceID)
	if err != nil {
		return "", err
	}

	info, err := e.client.EnqueueContext(ctx, task, asynq.Queue(e.queue))
	if err != nil {
		return "", fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Info("stage batch enqueued", slog.String(logx.FieldTaskID, info.ID), slog.Int("changes", len(changes)))

	return info.ID, nil
}

func NewStageBatchTask(changes []entity.StageChange, traceID contextx.TraceID) (*asynq.Task, error) {
	payload, err := json.Marshal(StageBatchPayload{Changes: changes, TraceID: traceID.String()})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(
		TypeStageBatch,
		payload,
		asynq.TaskID(uuid.NewString()),
		asynq.MaxRetry(0),
	), nil
}

// taskContext продолжает trace запроса в логах задачи.
func taskContext(ctx context.Context, rawTraceID string) context.Context {
	attrs := make([]any, 0, 2) //nolint:mnd

	if taskID, ok := asynq.GetTaskID(ctx); ok {
		attrs = append(attrs, slog.String(logx.FieldTaskID, taskID))
	}

	if traceID, ok := contextx.ParseTraceID(rawTraceID); ok {
		ctx = contextx.WithTraceID(ctx, traceID)
		attrs = append(attrs, slog.String(logx.FieldTraceID, traceID.String()))
	}

	return contextx.WithLogger(ctx, logger(ctx).With(attrs...))
}
