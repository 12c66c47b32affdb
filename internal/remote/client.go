// Package remote is the client for the external entity store, the REST API
// that is the source of truth for users, orders, order details and products.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrNotFound = errors.New("record not found")

// StatusError is a non-success response from the store. Message carries the
// server-supplied message field when one was decodable.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote store returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: serverMessage(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// serverMessage pulls the message field out of an error body, falling back to
// a templated message when the body is not the expected JSON shape.
func serverMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("request failed with status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

func list[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, "/"+resource, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func get[T any](ctx context.Context, c *Client, resource string, id int) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/%d", resource, id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func create[T any](ctx context.Context, c *Client, resource string, record *T) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPost, "/"+resource, record, out); err != nil {
		return nil, err
	}
	return out, nil
}

// replace submits the full record; the store does whole-record replacement,
// never field-level patch.
func replace[T any](ctx context.Context, c *Client, resource string, id int, record *T) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/%s/%d", resource, id), record, out); err != nil {
		return nil, err
	}
	return out, nil
}

func remove(ctx context.Context, c *Client, resource string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", resource, id), nil, nil)
}
