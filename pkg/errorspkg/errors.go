// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrBadRequest is returned when a request body cannot be decoded.
	ErrBadRequest = errors.New("bad request")
)
