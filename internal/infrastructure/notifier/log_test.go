package notifier_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/infrastructure/notifier"
	"crm_pipeline/pkg/contextx"
)

func TestLogNotifier(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	err := notifier.NewLog().Notify(ctx, pipeline.Notice{
		Level:  pipeline.NoticeError,
		DealID: 9,
		Kind:   entity.ErrorKindRejected,
		Text:   "Failed to update deal stage. Please try again.",
	})
	rq.NoError(err)

	rq.Contains(buf.String(), `"level":"WARN"`)
	rq.Contains(buf.String(), `"error-kind":"rejected"`)
	rq.Contains(buf.String(), `"deal-id":9`)
}
