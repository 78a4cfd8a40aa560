package middlewarex

import (
	"log/slog"
	"mime"
	"net/http"
	"net/http/httputil"

	"crm_pipeline/pkg/logx"
)

// RequestLogging пишет дамп входящего запроса. Тело попадает в лог только
// для JSON и текста; logFieldMaxLen 0 снимает ограничение длины.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			attrs := []any{
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldURL, r.URL.RequestURI()),
			}

			dump, err := httputil.DumpRequest(r, dumpableBody(r.Header.Get("Content-Type")))
			if err != nil {
				attrs = append(attrs, logx.Error(err))
			}

			dump = sensitiveDataMasker.Mask(logx.Truncate(dump, logFieldMaxLen))
			attrs = append(attrs, slog.String(logx.FieldRequestBody, string(dump)))

			logger(ctx).Info(logx.FieldHTTPRequest, attrs...)

			next.ServeHTTP(w, r)
		})
	}
}

func dumpableBody(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch mediaType {
	case "application/json", "text/plain":
		return true
	default:
		return false
	}
}
