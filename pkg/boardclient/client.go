package boardclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("boardclient: %d %s", e.StatusCode, e.Message)
}

// Client talks to the board API with a bearer access token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ TaskPatcher = (*Client)(nil)

// PatchTask sends PATCH /tasks/{id}.
func (c *Client) PatchTask(ctx context.Context, id uuid.UUID, patch Patch) (*Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id.String(), patch, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

type boardPayload struct {
	Columns []struct {
		Column
		Tasks []Task `json:"tasks"`
	} `json:"columns"`
}

// LoadBoard fetches GET /board and returns it as a local snapshot.
func (c *Client) LoadBoard(ctx context.Context) (*Board, error) {
	var payload boardPayload
	if err := c.do(ctx, http.MethodGet, "/board", nil, &payload); err != nil {
		return nil, err
	}

	columns := make([]Column, 0, len(payload.Columns))
	var tasks []Task
	for _, col := range payload.Columns {
		columns = append(columns, col.Column)
		tasks = append(tasks, col.Tasks...)
	}
	return NewBoard(columns, tasks), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("boardclient: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("boardclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("boardclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("boardclient: decode response: %w", err)
	}
	return nil
}
