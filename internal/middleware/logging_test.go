package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLogLines は JSON ハンドラの出力を1行ずつデコードします
func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		lines = append(lines, m)
	}
	return lines
}

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "正常系: 2xx は INFO", status: http.StatusOK, expectedLevel: "INFO"},
		{name: "正常系: 4xx は WARN", status: http.StatusNotFound, expectedLevel: "WARN"},
		{name: "正常系: 5xx は ERROR", status: http.StatusInternalServerError, expectedLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newBufferLogger(&buf, slog.LevelDebug)

			var fromCtx *slog.Logger
			handler := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = GetLogger(r.Context())
				w.WriteHeader(tt.status)
				w.Write([]byte("hello"))
			})))

			req := httptest.NewRequest(http.MethodGet, "/api/words?lesson=1", nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			require.NotNil(t, fromCtx)
			assert.NotSame(t, slog.Default(), fromCtx, "handler should see the request-scoped logger")

			lines := decodeLogLines(t, &buf)
			require.Len(t, lines, 1)
			entry := lines[0]
			assert.Equal(t, "Request completed", entry["msg"])
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/api/words", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, 5, entry["bytes_out"])
			assert.NotEmpty(t, entry["request_id"])
		})
	}
}

func TestLoggingMiddleware_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingMiddleware(newBufferLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/study/x", nil))

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 1)
	assert.EqualValues(t, http.StatusOK, lines[0]["status"])
}

func TestGetLogger(t *testing.T) {
	t.Run("正常系: 格納されていなければデフォルト", func(t *testing.T) {
		assert.Same(t, slog.Default(), GetLogger(context.Background()))
		_, ok := LoggerFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("正常系: 格納したロガーを返す", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := WithLogger(context.Background(), logger)
		assert.Same(t, logger, GetLogger(ctx))
	})

	t.Run("正常系: nil は格納されていない扱い", func(t *testing.T) {
		ctx := WithLogger(context.Background(), nil)
		_, ok := LoggerFromContext(ctx)
		assert.False(t, ok)
		assert.Same(t, slog.Default(), GetLogger(ctx))
	})
}

func TestDetailLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelDebug)

	var seenBody string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := new(bytes.Buffer)
		b.ReadFrom(r.Body)
		seenBody = b.String()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad"}`))
	})
	handler := LoggingMiddleware(logger)(DetailLoggingMiddleware()(inner))

	req := httptest.NewRequest(http.MethodPost, "/api/handoffs", strings.NewReader(`{"words":["বই"]}`))
	req.Header.Set("Authorization", "secret-token")
	req.Header.Set("X-Trace", "abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, `{"words":["বই"]}`, seenBody, "body must still be readable by the handler")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var detail map[string]any
	for _, line := range decodeLogLines(t, &buf) {
		if line["msg"] == "HTTP request detail" {
			detail = line
		}
	}
	require.NotNil(t, detail, buf.String())
	assert.Equal(t, "WARN", detail["level"])
	assert.EqualValues(t, http.StatusBadRequest, detail["status_code"])
	assert.Equal(t, `{"words":["বই"]}`, detail["request_body"])
	assert.Equal(t, `{"error":"bad"}`, detail["response_body"])

	headers, ok := detail["request_headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "[SENSITIVE]", headers["authorization"])
	assert.Equal(t, "abc", headers["x_trace"])
}

func TestDetailLoggingMiddleware_SkipsWhenLevelDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo)

	handler := LoggingMiddleware(logger)(DetailLoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	for _, line := range decodeLogLines(t, &buf) {
		assert.NotEqual(t, "HTTP request detail", line["msg"], "2xx detail is debug only")
	}
}

func TestTruncateBody(t *testing.T) {
	long := strings.Repeat("a", maxLogBodySizeBytes+10)
	got := truncateBody([]byte(long))
	assert.True(t, strings.HasSuffix(got, "... (truncated)"))
	assert.Len(t, got, maxLogBodySizeBytes+len("... (truncated)"))
	assert.Equal(t, "short", truncateBody([]byte("short")))
}
