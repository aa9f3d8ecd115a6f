package adapter

import "errors"

var (
	// ErrNetworkFailure is returned when the endpoint is unreachable or
	// answers with a non-2xx status.
	ErrNetworkFailure = errors.New("network failure")

	// ErrInvalidAddress is returned by the constructor for an unusable
	// endpoint URL.
	ErrInvalidAddress = errors.New("invalid remote storage address")
)
