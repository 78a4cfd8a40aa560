package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/httpx/reply"
	"crm_pipeline/pkg/logx"
)

// Recovery превращает панику обработчика в ответ 500 с обычным телом ошибки.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, &reply.StatusError{
					Status:  http.StatusInternalServerError,
					Code:    errcodes.InternalServerError,
					Message: "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
