package adapter

import "errors"

var (
	// ErrUpstreamUnreachable means the upstream could not be reached at all:
	// connection refused, DNS failure, timeout or a cancelled context.
	ErrUpstreamUnreachable = errors.New("upstream unreachable")

	// ErrUpstreamStatus means the upstream answered with a non-2xx status.
	ErrUpstreamStatus = errors.New("upstream returned non-success status")

	// ErrUnexpectedShape means the upstream body is not a JSON array.
	ErrUnexpectedShape = errors.New("upstream returned unexpected data shape")
)
