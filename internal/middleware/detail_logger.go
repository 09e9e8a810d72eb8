package middleware

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// 詳細ログに載せるボディの上限
const maxLogBodySizeBytes = 2048

// detailRecorder はステータスコードとレスポンスボディを記録します
type detailRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rec *detailRecorder) WriteHeader(statusCode int) {
	rec.statusCode = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}

func (rec *detailRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	if n > 0 && rec.body.Len() < maxLogBodySizeBytes {
		rec.body.Write(b[:n])
	}
	return n, err
}

func (rec *detailRecorder) Flush() {
	if flusher, ok := rec.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// DetailLoggingMiddleware はリクエスト/レスポンスのヘッダーとボディを記録します。
// 4xx/5xx は Warn/Error、それ以外は Debug。
func DetailLoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			var reqBody []byte
			if r.Body != nil && r.ContentLength != 0 {
				var err error
				reqBody, err = io.ReadAll(r.Body)
				if err != nil {
					logger.ErrorContext(r.Context(), "Failed to read request body in middleware", slog.Any("error", err))
				}
				r.Body = io.NopCloser(bytes.NewReader(reqBody))
			}

			rec := &detailRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := slog.LevelDebug
			if rec.statusCode >= 500 {
				level = slog.LevelError
			} else if rec.statusCode >= 400 {
				level = slog.LevelWarn
			}
			if !logger.Enabled(r.Context(), level) {
				return
			}

			attrs := []slog.Attr{
				slog.String("uri", r.RequestURI),
				slog.Int("status_code", rec.statusCode),
				headerGroup("request_headers", r.Header),
				headerGroup("response_headers", rec.Header()),
			}
			if len(reqBody) > 0 {
				attrs = append(attrs, slog.String("request_body", truncateBody(reqBody)))
			}
			contentType := rec.Header().Get("Content-Type")
			switch {
			case rec.body.Len() == 0:
				attrs = append(attrs, slog.String("response_body_info", "(empty body)"))
			case strings.HasPrefix(contentType, "application/json"), strings.HasPrefix(contentType, "text/"):
				attrs = append(attrs, slog.String("response_body", truncateBody(rec.body.Bytes())))
			default:
				attrs = append(attrs, slog.String("response_body_info",
					fmt.Sprintf("[body not logged: %d bytes, Content-Type: %s]", rec.body.Len(), contentType)))
			}

			logger.LogAttrs(r.Context(), level, "HTTP request detail", attrs...)
		})
	}
}

func headerGroup(name string, headers http.Header) slog.Attr {
	formatted := formatHeaders(headers)
	args := make([]any, 0, len(formatted))
	for k, v := range formatted {
		args = append(args, slog.String(k, v))
	}
	return slog.Group(name, args...)
}

func truncateBody(b []byte) string {
	if len(b) > maxLogBodySizeBytes {
		return string(b[:maxLogBodySizeBytes]) + "... (truncated)"
	}
	return string(b)
}
