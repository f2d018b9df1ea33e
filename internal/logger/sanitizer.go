package logger

import (
	"regexp"
	"strings"
)

const masked = "***MASKED***"

// センシティブなキーのパターン（大文字小文字を区別しない、"-" は "_" として扱う）
var sensitiveKeyPatterns = []string{
	"token",
	"repo_token",
	"github_token",
	"authorization",
	"password",
	"secret",
	"credential",
}

// GitHubトークンのプレフィックス
// ghp_: personal access token, gho_: OAuth, ghu_: user-to-server, ghs_: server-to-server (GITHUB_TOKEN), ghr_: refresh
var tokenPrefixes = []string{"ghp_", "gho_", "ghu_", "ghs_", "ghr_", "github_pat_"}

var (
	tokenValueRegex = regexp.MustCompile(`^(gh[pousr]_[A-Za-z0-9]{36,}|github_pat_[A-Za-z0-9_]{22,})$`)
	authHeaderRegex = regexp.MustCompile(`(?i)^(bearer|token)\s+\S{20,}$`)
)

// SanitizeValue は値がセンシティブな場合にマスクした値を返す
func SanitizeValue(value interface{}) interface{} {
	if isSensitiveValue(value) {
		return maskValue(value)
	}
	return value
}

// SanitizeKeyValue はキーと値の組み合わせをチェックし、センシティブな情報をマスクする
func SanitizeKeyValue(key string, value interface{}) (string, interface{}) {
	if isSensitiveKey(key) {
		if isSensitiveValue(value) {
			return key, maskValue(value)
		}
		if s, ok := value.(string); ok && s == "" {
			return key, s
		}
		return key, masked
	}

	return key, SanitizeValue(value)
}

// SanitizeArgs はログ引数（key-valueペア）をサニタイズする
func SanitizeArgs(args ...interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}

	sanitized := make([]interface{}, len(args))
	copy(sanitized, args)

	// 偶数インデックスがkey、奇数インデックスがvalue
	for i := 0; i < len(sanitized)-1; i += 2 {
		if key, ok := sanitized[i].(string); ok {
			_, sanitized[i+1] = SanitizeKeyValue(key, sanitized[i+1])
		}
	}

	return sanitized
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ReplaceAll(strings.ToLower(key), "-", "_")

	for _, pattern := range sensitiveKeyPatterns {
		if lowerKey == pattern ||
			strings.HasPrefix(lowerKey, pattern+"_") ||
			strings.HasSuffix(lowerKey, "_"+pattern) ||
			strings.Contains(lowerKey, "_"+pattern+"_") {
			return true
		}
	}

	return false
}

func isSensitiveValue(value interface{}) bool {
	str, ok := value.(string)
	if !ok || str == "" {
		return false
	}
	return tokenValueRegex.MatchString(str) || authHeaderRegex.MatchString(str)
}

// maskValue はセンシティブな値をマスクする（種類がわかるようプレフィックスは残す）
func maskValue(value interface{}) string {
	str, ok := value.(string)
	if !ok || str == "" {
		return masked
	}

	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(str, prefix) {
			return prefix + masked
		}
	}

	if scheme, _, found := strings.Cut(str, " "); found && authHeaderRegex.MatchString(str) {
		return scheme + " " + masked
	}

	return masked
}
