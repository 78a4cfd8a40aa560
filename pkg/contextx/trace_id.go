package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// MaxTraceIDLen ограничивает длину trace id, пришедшего извне.
const MaxTraceIDLen = 64

// TraceID связывает HTTP-запрос, его логи и порождённые им фоновые задачи.
type TraceID string

type contextKeyTraceID struct{}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID принимает внешний trace id, если он непуст и не слишком длинный.
func ParseTraceID(s string) (TraceID, bool) {
	if s == "" || len(s) > MaxTraceIDLen {
		return "", false
	}

	return TraceID(s), true
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
