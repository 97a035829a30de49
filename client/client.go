// Package client is the typed Go client for the shop API. Every call goes
// through a single pipeline that attaches the stored bearer token on the way
// out and surfaces failures as user-facing notifications on the way back.
package client

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

	"beaute-shop/config"
	"beaute-shop/models"
)

// FallbackErrorMessage is shown when a failing response carries no usable
// message field.
const FallbackErrorMessage = "Une erreur est survenue"

var ErrMissingBaseURL = errors.New("client: API base URL is not set")

// APIError is what callers receive for any non-2xx response. The message has
// already been shown to the user through the notifier; the error itself is
// never swallowed.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL  string
	mediaURL string
	http     *http.Client
	creds    CredentialStore
	notify   Notifier
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithCredentialStore(s CredentialStore) Option {
	return func(c *Client) { c.creds = s }
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notify = n }
}

func WithMediaBaseURL(u string) Option {
	return func(c *Client) { c.mediaURL = strings.TrimRight(u, "/") }
}

// New builds a client against the given API base URL. An empty base URL is
// refused outright rather than defaulting anywhere.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("client: invalid API base URL: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		creds:   NewMemoryStore(),
		notify:  defaultNotifier,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromEnv builds a client from the loaded configuration.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg := config.AppConfig
	if cfg == nil {
		return nil, errors.New("client: configuration not loaded")
	}

	all := []Option{WithMediaBaseURL(cfg.MediaBaseURL)}
	if cfg.CredentialsFile != "" {
		all = append(all, WithCredentialStore(NewFileStore(cfg.CredentialsFile)))
	}
	all = append(all, opts...)

	return New(cfg.APIBaseURL, all...)
}

// MediaURL resolves a relative media path against the media base URL.
// Absolute URLs pass through untouched.
func (c *Client) MediaURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.mediaURL + "/" + strings.TrimLeft(path, "/")
}

// Credentials exposes the token store so callers can manage the login
// lifecycle themselves.
func (c *Client) Credentials() CredentialStore {
	return c.creds
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do runs one request through both hooks: the stored access token is
// attached when present, and any non-2xx response is turned into an
// APIError whose message has been pushed through the notifier.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tokens, ok := c.creds.Tokens(); ok && tokens.Access != "" {
		req.Header.Set("Authorization", "Bearer "+tokens.Access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(data),
		}
		c.notify.Notify(apiErr.Message)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error body,
// trying the conventional "message" field, then DRF's "detail".
func extractMessage(data []byte) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	return FallbackErrorMessage
}
