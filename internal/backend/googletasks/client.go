// Package googletasks implements the service.Service interface using the
// Google Tasks API. Tasks live in the user's default list.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasksync/internal/config"
	"tasksync/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks requested per page.
	PageSize = 100

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"

	statusNeedsAction = "needsAction"
	statusCompleted   = "completed"
)

// Client implements service.Service using Google Tasks API.
type Client struct {
	svc     *tasks.Service
	listID  string
	timeout time.Duration
}

// OAuthConfig reads oauth_client.json from the config directory.
func OAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.OAuthClientFile, err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.OAuthClientFile, err)
	}
	return oauthConfig, nil
}

// LoadToken reads the stored OAuth token.
func LoadToken(cfg *config.Config) (*oauth2.Token, error) {
	data, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.TokenFile, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.TokenFile, err)
	}
	return &token, nil
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg)
	if err != nil {
		return nil, err
	}

	// Token source refreshes automatically
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))

	c, err := NewWithHTTPClient(ctx, httpClient)
	if err != nil {
		return nil, err
	}
	c.timeout = cfg.Timeout
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
// Extra options, such as option.WithEndpoint, are passed to the API client.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc, listID: DefaultListID}, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// CreateTask inserts a task into the default list.
func (c *Client) CreateTask(ctx context.Context, description string, status service.Status) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	task := &tasks.Task{
		Title:           description,
		Status:          toGoogleStatus(status),
		ForceSendFields: []string{"Title"},
	}
	if _, err := c.svc.Tasks.Insert(c.listID, task).Context(ctx).Do(); err != nil {
		return wrapError("create", err)
	}
	return nil
}

// ListTasks returns every task in the default list, completed and hidden
// ones included, in API order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	result := []service.Task{}
	err := c.svc.Tasks.List(c.listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				result = append(result, fromGoogle(t))
			}
			return nil
		})
	if err != nil {
		return nil, wrapError("list", err)
	}
	return result, nil
}

// GetTask returns one task from the default list.
func (c *Client) GetTask(ctx context.Context, id string) (service.Task, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	t, err := c.svc.Tasks.Get(c.listID, id).Context(ctx).Do()
	if err != nil {
		return service.Task{}, wrapError("get", err)
	}
	return fromGoogle(t), nil
}

// UpdateTask patches title and status. Reopening a task clears its
// completion time.
func (c *Client) UpdateTask(ctx context.Context, task service.Task) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	patch := &tasks.Task{
		Title:           task.Description,
		Status:          toGoogleStatus(task.Status),
		ForceSendFields: []string{"Title"},
	}
	if task.Status == service.StatusPending {
		patch.NullFields = []string{"Completed"}
	}
	if _, err := c.svc.Tasks.Patch(c.listID, task.ID, patch).Context(ctx).Do(); err != nil {
		return wrapError("update", err)
	}
	return nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.svc.Tasks.Delete(c.listID, id).Context(ctx).Do(); err != nil {
		return wrapError("delete", err)
	}
	return nil
}

func fromGoogle(t *tasks.Task) service.Task {
	status := service.StatusPending
	if t.Status == statusCompleted {
		status = service.StatusCompleted
	}
	return service.Task{ID: t.Id, Description: t.Title, Status: status}
}

func toGoogleStatus(s service.Status) string {
	if s == service.StatusCompleted {
		return statusCompleted
	}
	return statusNeedsAction
}

// wrapError converts API errors into store errors with user-friendly text.
func wrapError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: request timed out", op)
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	text := gerr.Message
	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		text = "token expired or revoked (run: tasksync login)"
	case http.StatusNotFound:
		text = "not found"
	}
	return &service.StoreError{Op: op, Code: gerr.Code, Text: text}
}
