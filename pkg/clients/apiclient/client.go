// Package apiclient is the typed gateway to the volunteer-management
// REST backend. Each backend capability maps to exactly one method;
// there is no retrying, no caching and no state beyond the HTTP
// client itself. All failures surface to the caller as one of the
// error kinds in errors.go.
package apiclient

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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const DefaultTimeout = 10 * time.Second

// Client wraps the backend HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	validate   *validator.Validate
}

// NewClient creates a gateway for the API rooted at baseURL (for
// example "http://localhost:5000/api"). timeout bounds every call;
// zero means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		validate:   validator.New(),
	}
}

// checkInput validates a request struct before any network I/O.
func (c *Client) checkInput(op string, req interface{}) error {
	if err := c.validate.Struct(req); err != nil {
		return &ValidationError{Op: op + " request", Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("apiclient: build %s request: %w", op, err)
	}
	return c.do(op, req, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("apiclient: encode %s request: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("apiclient: build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

// do issues the request and decodes the response into out (which may
// be nil when the caller ignores the body). Transport failures map
// to NetworkError or ErrTimeout, non-2xx statuses to APIError, and
// undecodable bodies to ValidationError.
func (c *Client) do(op string, req *http.Request, out interface{}) error {
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(op, req.URL.String(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(op, req.URL.String(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ValidationError{Op: op + " response", Err: err}
	}
	return nil
}

func classifyTransportError(op, rawURL string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, op)
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, op)
	}
	return &NetworkError{Op: op, URL: rawURL, Err: err}
}

// errorMessage pulls a human-readable message out of an error body.
// The backend uses either {"error": ...} or {"message": ...}.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}
