package api

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("resource not found")

// StatusError is any non-2xx reply. Message carries the server's own text
// when the body had one, so business rejections (an expired discount code,
// say) can be shown to the user verbatim.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ServerMessage extracts the server-provided message from err, if err wraps
// a StatusError that carried one.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
