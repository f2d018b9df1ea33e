package github

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/go-github/v67/github"
)

// GitHubErrorType represents the type of GitHub API error
type GitHubErrorType int

const (
	// ErrorTypeRateLimit indicates rate limit exceeded
	ErrorTypeRateLimit GitHubErrorType = iota
	// ErrorTypeNetworkTimeout indicates network timeout
	ErrorTypeNetworkTimeout
	// ErrorTypeAuthentication indicates authentication or permission failure
	ErrorTypeAuthentication
	// ErrorTypeNotFound indicates resource not found
	ErrorTypeNotFound
	// ErrorTypeServerError indicates server error (5xx)
	ErrorTypeServerError
	// ErrorTypeUnknown indicates unknown error type
	ErrorTypeUnknown
)

// String returns the string representation of the error type
func (t GitHubErrorType) String() string {
	switch t {
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeNetworkTimeout:
		return "NetworkTimeout"
	case ErrorTypeAuthentication:
		return "Authentication"
	case ErrorTypeNotFound:
		return "NotFound"
	case ErrorTypeServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// GitHubError represents a classified GitHub API error.
// The classification is only used for diagnostics; nothing is retried.
type GitHubError struct {
	Type        GitHubErrorType
	StatusCode  int
	Message     string
	RetryAfter  time.Duration
	OriginalErr error
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GitHub API error [%s] %d: %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GitHub API error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the original error
func (e *GitHubError) Unwrap() error {
	return e.OriginalErr
}

// ClassifyError converts an error returned by go-github into a *GitHubError
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return err
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &GitHubError{
			Type:        ErrorTypeRateLimit,
			StatusCode:  statusCode(rateErr.Response),
			Message:     rateErr.Message,
			RetryAfter:  time.Until(rateErr.Rate.Reset.Time),
			OriginalErr: err,
		}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		e := &GitHubError{
			Type:        ErrorTypeRateLimit,
			StatusCode:  statusCode(abuseErr.Response),
			Message:     abuseErr.Message,
			OriginalErr: err,
		}
		if abuseErr.RetryAfter != nil {
			e.RetryAfter = *abuseErr.RetryAfter
		}
		return e
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		code := statusCode(respErr.Response)
		return &GitHubError{
			Type:        typeForStatus(code),
			StatusCode:  code,
			Message:     respErr.Message,
			OriginalErr: err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &GitHubError{
			Type:        ErrorTypeNetworkTimeout,
			Message:     netErr.Error(),
			OriginalErr: err,
		}
	}

	return &GitHubError{
		Type:        ErrorTypeUnknown,
		Message:     err.Error(),
		OriginalErr: err,
	}
}

func typeForStatus(code int) GitHubErrorType {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrorTypeAuthentication
	case code == http.StatusNotFound:
		return ErrorTypeNotFound
	case code == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case code >= 500 && code < 600:
		return ErrorTypeServerError
	default:
		return ErrorTypeUnknown
	}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// ErrorType returns the classified type of err, or ErrorTypeUnknown
func ErrorType(err error) GitHubErrorType {
	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Type
	}
	return ErrorTypeUnknown
}

// IsRateLimitError checks if the error is a rate limit error
func IsRateLimitError(err error) bool {
	return err != nil && ErrorType(err) == ErrorTypeRateLimit
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return err != nil && ErrorType(err) == ErrorTypeNotFound
}

// IsAuthenticationError checks if the error is an authentication error
func IsAuthenticationError(err error) bool {
	return err != nil && ErrorType(err) == ErrorTypeAuthentication
}
