package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"crm_pipeline/pkg/contextx"
	"crm_pipeline/pkg/logx"
	"crm_pipeline/pkg/middlewarex"
)

func TestTraceIDAndLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middlewarex.TraceID(middlewarex.Logger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextx.LoggerFromContextOrDefault(r.Context()).Info("handled")
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/board", http.NoBody)
	req.Header.Set("X-Trace-Id", "abc")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	rq.Equal(http.StatusNoContent, rec.Code)
	rq.Equal("abc", rec.Header().Get("X-Trace-Id"))
	rq.Contains(buf.String(), `"`+logx.FieldTraceID+`":"abc"`)
	rq.Contains(buf.String(), `"`+logx.FieldURL+`":"/v1/board"`)
}

func TestTraceIDGenerated(t *testing.T) {
	rq := require.New(t)

	var seen contextx.TraceID

	h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = contextx.TraceIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Len(seen.String(), 20)
	rq.Equal(seen.String(), rec.Header().Get("X-Trace-Id"))
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.Contains(rec.Body.String(), `"code":"InternalServerError"`)
}

func TestTraceIDTooLong(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Trace-Id", strings.Repeat("a", contextx.MaxTraceIDLen+1))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	rq.Len(rec.Header().Get("X-Trace-Id"), 20)
}

func TestResponseLoggingLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		status int
		level  string
	}{
		{name: "ok", status: http.StatusOK, level: "INFO"},
		{name: "client error", status: http.StatusNotFound, level: "WARN"},
		{name: "storage unavailable", status: http.StatusBadGateway, level: "ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var buf bytes.Buffer

			h := middlewarex.Logger(slog.New(slog.NewJSONHandler(&buf, nil)))(
				middlewarex.ResponseLogging(logx.NewNopSensitiveDataMasker(), 0)(
					http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						w.WriteHeader(tc.status)
						w.Write([]byte(`{"code":"x"}`)) //nolint:errcheck
					}),
				),
			)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/deals", http.NoBody))

			rq.Contains(buf.String(), `"level":"`+tc.level+`"`)
			rq.Contains(buf.String(), `{\"code\":\"x\"}`)
		})
	}
}

func TestRequestLoggingBody(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		contentType string
		body        string
		logged      bool
	}{
		{name: "json", contentType: "application/json; charset=utf-8", body: `{"title":"Renewal"}`, logged: true},
		{name: "no content type", body: `{"title":"Renewal"}`, logged: true},
		{name: "binary", contentType: "application/octet-stream", body: "Renewal", logged: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var buf bytes.Buffer

			h := middlewarex.Logger(slog.New(slog.NewJSONHandler(&buf, nil)))(
				middlewarex.RequestLogging(logx.NewNopSensitiveDataMasker(), 0)(
					http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						w.WriteHeader(http.StatusNoContent)
					}),
				),
			)

			req := httptest.NewRequest(http.MethodPost, "/v1/deals?x=1", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			h.ServeHTTP(httptest.NewRecorder(), req)

			rq.Contains(buf.String(), `"http-method":"POST"`)
			rq.Contains(buf.String(), `"url":"/v1/deals?x=1"`)
			rq.Equal(tc.logged, strings.Contains(buf.String(), "Renewal"))
		})
	}
}
