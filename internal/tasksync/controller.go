// Package tasksync implements the task synchronization flow between a UI
// and the remote task store.
//
// The Controller holds no task state. Every call is one round trip to the
// store, and callers re-fetch with List after every mutation.
package tasksync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tasksync/internal/logging"
	"tasksync/internal/service"
)

// Controller issues store requests on behalf of the UI.
type Controller struct {
	svc    service.Service
	logger *slog.Logger
}

// New creates a Controller. A nil logger discards output.
func New(svc service.Service, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{svc: svc, logger: logger}
}

// WithLogger returns a Controller on the same store that logs to logger.
func (c *Controller) WithLogger(logger *slog.Logger) *Controller {
	return New(c.svc, logger)
}

// Create asks the store to create a task.
// An invalid status is rejected without contacting the store.
func (c *Controller) Create(ctx context.Context, description string, status service.Status) error {
	if !status.Valid() {
		return fmt.Errorf("create: %w: %q", service.ErrInvalidStatus, status)
	}
	c.logger.DebugContext(ctx, "creating task", "op", "create", "status", status)

	err := c.svc.CreateTask(ctx, description, status)
	c.logOutcome(ctx, "create", "", err)
	return err
}

// List returns every task in store order.
// On failure the slice is empty and err says why.
func (c *Controller) List(ctx context.Context) ([]service.Task, error) {
	c.logger.DebugContext(ctx, "listing tasks", "op", "list")

	tasks, err := c.svc.ListTasks(ctx)
	c.logOutcome(ctx, "list", "", err)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get returns a single task.
func (c *Controller) Get(ctx context.Context, id string) (service.Task, error) {
	c.logger.DebugContext(ctx, "fetching task", "op", "get", "id", id)

	task, err := c.svc.GetTask(ctx, id)
	c.logOutcome(ctx, "get", id, err)
	return task, err
}

// Update overwrites description and status of task id.
func (c *Controller) Update(ctx context.Context, id, description string, status service.Status) error {
	if !status.Valid() {
		return fmt.Errorf("update: %w: %q", service.ErrInvalidStatus, status)
	}
	c.logger.DebugContext(ctx, "updating task", "op", "update", "id", id, "status", status)

	err := c.svc.UpdateTask(ctx, service.Task{
		ID:          id,
		Description: description,
		Status:      status,
	})
	c.logOutcome(ctx, "update", id, err)
	return err
}

// Delete removes task id from the store.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.logger.DebugContext(ctx, "deleting task", "op", "delete", "id", id)

	err := c.svc.DeleteTask(ctx, id)
	c.logOutcome(ctx, "delete", id, err)
	return err
}

// Complete marks task id Completed, keeping its description.
// It costs two round trips: a get followed by an update.
func (c *Controller) Complete(ctx context.Context, id string) error {
	task, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.Update(ctx, id, task.Description, service.StatusCompleted)
}

func (c *Controller) logOutcome(ctx context.Context, op, id string, err error) {
	attrs := []any{"op", op}
	if id != "" {
		attrs = append(attrs, "id", id)
	}
	if err == nil {
		c.logger.InfoContext(ctx, "store call succeeded", attrs...)
		return
	}
	var se *service.StoreError
	if errors.As(err, &se) {
		attrs = append(attrs, "status_code", se.Code)
	}
	attrs = append(attrs, "error", err)
	c.logger.WarnContext(ctx, "store call failed", attrs...)
}
