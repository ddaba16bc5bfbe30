package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by backends that can tell a missing task apart.
var ErrNotFound = errors.New("not found")

// StoreError is a non-OK response from the task store.
type StoreError struct {
	// Op is the operation that failed: create, list, get, update or delete.
	Op string

	// Code is the HTTP status code returned by the store.
	Code int

	// Text is the store's human-readable error text, if any.
	Text string
}

func (e *StoreError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s: store returned status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: store returned status %d: %s", e.Op, e.Code, e.Text)
}

// Detail returns the store's error text for err.
// Errors that did not come from a store response yield err.Error().
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var se *StoreError
	if errors.As(err, &se) {
		if se.Text != "" {
			return se.Text
		}
		return fmt.Sprintf("status %d", se.Code)
	}
	return err.Error()
}
