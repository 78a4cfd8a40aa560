package middlewarex

import (
	"net/http"

	"crm_pipeline/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID берёт trace id из заголовка запроса или выдаёт новый и
// возвращает его клиенту тем же заголовком.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
