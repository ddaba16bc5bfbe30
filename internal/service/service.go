package service

import "context"

// Service defines the interface for task store operations.
// Every method issues exactly one request to the store.
// Callers never import a backend package directly.
type Service interface {
	// CreateTask creates a task. The store assigns the ID.
	CreateTask(ctx context.Context, description string, status Status) error

	// ListTasks returns all tasks in store order (no client-side sorting).
	ListTasks(ctx context.Context) ([]Task, error)

	// GetTask returns a single task by ID.
	GetTask(ctx context.Context, id string) (Task, error)

	// UpdateTask overwrites description and status of the task with task.ID.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) error
}
