package library

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Catalog defines the remote calls the client makes against the book service.
// This interface is implemented by *Client and can be used for testing.
type Catalog interface {
	ListBooks(ctx context.Context) ([]Book, error)
	CreateBook(ctx context.Context, input BookInput) error
	UpdateBook(ctx context.Context, id int64, input BookInput) error
	DeleteBook(ctx context.Context, id int64) error
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// Client talks to the book catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerURL = "127.0.0.1:8000"
	defaultUserAgent = "shelf/0.1"
	requestTimeout   = 10 * time.Second
)

// APIError is a non-success response from the catalog service. Detail holds
// the service's human-readable message when the body carried one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Detail) == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Detail)
}

// NewClient builds a Client using the provided server URL or host:port value.
func NewClient(serverURL string) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListBooks retrieves the whole collection in its server ordering.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var books []Book
	if err := c.do(ctx, http.MethodGet, "/books/get", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook submits a new entry. The service assigns the id.
func (c *Client) CreateBook(ctx context.Context, input BookInput) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/books/add", input, nil)
}

// UpdateBook patches an existing entry by id.
func (c *Client) UpdateBook(ctx context.Context, id int64, input BookInput) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("book id required")
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/books/edit/%d", id), input, nil)
}

// DeleteBook removes an entry by id.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("book id required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/delete/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s: %w", rel.String(), statusError(resp))
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError builds an APIError, pulling the detail text out of the
// response body when it decodes as the service's message envelope.
func statusError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err == nil {
		apiErr.Detail = strings.TrimSpace(msg.Detail)
	}
	return apiErr
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
