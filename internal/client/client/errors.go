package client

import (
	"errors"
	"fmt"
)

var (
	ErrConnection = errors.New("connection error")
	ErrServer     = errors.New("server error")
	ErrDataFormat = errors.New("data format error")
	ErrSchema     = errors.New("schema error")
)

// StatusError is returned for non-2xx responses. It matches ErrServer.
type StatusError struct {
	Resource string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Resource, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrServer
}

// StatusCode extracts the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
