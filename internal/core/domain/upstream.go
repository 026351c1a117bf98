package domain

import (
	"errors"
	"fmt"
)

// ErrUpstream marks transient upstream failures: 5xx responses, timeouts and
// network errors. Callers surface these as retryable.
var ErrUpstream = errors.New("upstream unavailable")

// ErrUpstreamTimeout is the timeout subclass of ErrUpstream. It still matches
// errors.Is(err, ErrUpstream), so retry handling is unchanged; only the HTTP
// status differs (504 instead of 502).
var ErrUpstreamTimeout = fmt.Errorf("upstream timed out: %w", ErrUpstream)

// UpstreamError carries a non-2xx upstream response whose body the caller is
// expected to interpret (typically a {"message": ...} envelope). 401, 403 and
// 5xx are mapped to sentinels before this type is used.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}
