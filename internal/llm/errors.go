package llm

import "errors"

var (
	// ErrProxyUnavailable indicates the chat proxy is unreachable.
	ErrProxyUnavailable = errors.New("chat proxy unavailable")

	// ErrTimeout indicates the chat request exceeded the configured timeout.
	ErrTimeout = errors.New("chat request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("chat retry attempts exhausted")
)
