package adapter

import "errors"

var (
	// ErrUpstreamStatus is returned when the jobs API answers with a
	// non-2xx status.
	ErrUpstreamStatus = errors.New("jobs API returned an error status")

	// ErrDecodeResponse is returned when the jobs API payload cannot be
	// decoded.
	ErrDecodeResponse = errors.New("cannot decode jobs API response")
)
