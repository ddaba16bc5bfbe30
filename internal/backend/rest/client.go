// Package rest implements the service.Service interface against a REST task store.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/googleapi"

	"tasksync/internal/config"
	"tasksync/internal/service"
)

// maxErrorBody bounds how much of a failed response body is read.
const maxErrorBody = 64 << 10

// Client implements service.Service over HTTP.
//
// The store exposes one collection endpoint (the base URL):
//
//	POST   <base>       create
//	GET    <base>       list
//	GET    <base>/<id>  get
//	PUT    <base>/<id>  update
//	DELETE <base>/<id>  delete
//
// Only 200 counts as success.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
}

// New creates a client for cfg.BaseURL.
func New(cfg *config.Config) (*Client, error) {
	c, err := NewWithHTTPClient(cfg.BaseURL, &http.Client{})
	if err != nil {
		return nil, err
	}
	c.timeout = cfg.Timeout
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base url: %s", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		http: httpClient,
	}, nil
}

// BaseURL returns the collection endpoint.
func (c *Client) BaseURL() string {
	return c.base
}

// CreateTask sends POST <base> with description and status.
func (c *Client) CreateTask(ctx context.Context, description string, status service.Status) error {
	body := createRequest{Description: description, Status: string(status)}
	return c.do(ctx, "create", http.MethodPost, c.base, body, nil)
}

// ListTasks sends GET <base> and returns the records in store order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var records []record
	if err := c.do(ctx, "list", http.MethodGet, c.base, nil, &records); err != nil {
		return nil, err
	}

	tasks := make([]service.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.task())
	}
	return tasks, nil
}

// GetTask sends GET <base>/<id>.
func (c *Client) GetTask(ctx context.Context, id string) (service.Task, error) {
	if id == "" {
		return service.Task{}, errors.New("get: task id required")
	}
	var r record
	if err := c.do(ctx, "get", http.MethodGet, c.taskURL(id), nil, &r); err != nil {
		return service.Task{}, err
	}
	return r.task(), nil
}

// UpdateTask sends PUT <base>/<id> with the full record.
func (c *Client) UpdateTask(ctx context.Context, task service.Task) error {
	if task.ID == "" {
		return errors.New("update: task id required")
	}
	body := updateRequest{
		ID:          recordID(task.ID),
		Description: task.Description,
		Status:      string(task.Status),
	}
	return c.do(ctx, "update", http.MethodPut, c.taskURL(task.ID), body, nil)
}

// DeleteTask sends DELETE <base>/<id>.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("delete: task id required")
	}
	return c.do(ctx, "delete", http.MethodDelete, c.taskURL(id), nil, nil)
}

func (c *Client) taskURL(id string) string {
	return c.base + "/" + url.PathEscape(id)
}

// do performs one request. body, if non-nil, is sent as JSON; out, if
// non-nil, receives the decoded response.
func (c *Client) do(ctx context.Context, op, method, target string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return wrapError(op, err)
	}
	defer res.Body.Close()

	if err := checkResponse(op, res); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		// An empty 200 body is treated like "null".
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// checkResponse turns anything but 200 into a *service.StoreError.
func checkResponse(op string, res *http.Response) error {
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res.Body = io.NopCloser(io.LimitReader(res.Body, maxErrorBody))

	var gerr *googleapi.Error
	if !errors.As(googleapi.CheckResponse(res), &gerr) {
		// CheckResponse accepts every 2xx; the store contract does not.
		data, _ := io.ReadAll(res.Body)
		gerr = &googleapi.Error{Code: res.StatusCode, Body: string(data), Header: res.Header}
	}

	return &service.StoreError{
		Op:   op,
		Code: res.StatusCode,
		Text: errorText(gerr),
	}
}

// errorText prefers a JSON error envelope message over the raw body.
func errorText(e *googleapi.Error) string {
	if e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(e.Body)
}

// wrapError wraps transport errors with the operation name.
func wrapError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: request timed out: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
