// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"errors"
	"strings"
)

// Status is the completion state of a task.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ErrInvalidStatus indicates a status outside Pending and Completed.
var ErrInvalidStatus = errors.New("invalid status")

// Statuses returns the valid statuses in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// ParseStatus parses a status name (case-insensitive, trimmed).
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	}
	return "", ErrInvalidStatus
}

// Valid reports whether s is one of the two known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

func (s Status) String() string { return string(s) }

// Task represents a single task record held by the store.
type Task struct {
	ID          string
	Description string
	Status      Status
}
