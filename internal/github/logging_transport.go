package github

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/douhashi/issue-labeler/internal/logger"
)

const bodyPreviewLimit = 200

// loggingRoundTripper はHTTPリクエスト/レスポンスをログ出力するラウンドトリッパー
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger logger.Logger
}

// RoundTrip はHTTPリクエストを実行し、リクエスト/レスポンスの詳細をログ出力する
func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	rt.logRequest(req)

	resp, err := rt.base.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		rt.logger.Error("github_api_error",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	rt.logResponse(req, resp, duration)

	return resp, nil
}

// logRequest はHTTPリクエストの詳細をログ出力する
func (rt *loggingRoundTripper) logRequest(req *http.Request) {
	fields := []interface{}{
		"method", req.Method,
		"url", req.URL.String(),
	}

	// トークンは出さず、認証方式だけを記録する
	if scheme := authScheme(req.Header.Get("Authorization")); scheme != "" {
		fields = append(fields, "auth_scheme", scheme)
	}

	if ua := req.Header.Get("User-Agent"); ua != "" {
		fields = append(fields, "user_agent", ua)
	}

	rt.logger.Debug("github_api_request", fields...)
}

// logResponse はHTTPレスポンスの詳細をログ出力する
func (rt *loggingRoundTripper) logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	fields := []interface{}{
		"method", req.Method,
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	}

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		fields = append(fields, "rate_limit_remaining", remaining)
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		fields = append(fields, "rate_limit_reset", reset)
	}

	// エラーレスポンスの場合のみ本文の先頭を記録する
	if resp.StatusCode >= 400 && resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			rt.logger.Error("failed_to_read_response_body", "error", err.Error())
		} else {
			resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

			preview := string(bodyBytes)
			if len(preview) > bodyPreviewLimit {
				preview = preview[:bodyPreviewLimit] + "..."
			}
			fields = append(fields, "body_preview", preview)
		}
	}

	rt.logger.Debug("github_api_response", fields...)
}

// authScheme はAuthorizationヘッダーの認証方式（Bearer など）を返す
func authScheme(auth string) string {
	if auth == "" {
		return ""
	}
	scheme, _, found := strings.Cut(auth, " ")
	if !found {
		return "unknown"
	}
	return scheme
}
