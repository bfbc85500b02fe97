package flowservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flowdeck/internal/errors"
	"flowdeck/internal/flow"
	"flowdeck/internal/logging"
)

// instancesPath is where the flow service exposes its instance resource.
const instancesPath = "/api/v1/flows"

// Client is the HTTP implementation of Service.
//
// The contract it consumes:
//
//	GET    {base}/api/v1/flows         -> ["name", ...]
//	GET    {base}/api/v1/flows/{name}  -> {"name": ..., "pipeline": ...}
//	DELETE {base}/api/v1/flows/{name}  -> 204, or an error body
//
// Error bodies are plain text; for delete failures that text is the
// human-readable message shown on the alert surface.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithToken sets a bearer token attached to every request.
func WithToken(token string) ClientOption {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Client for the flow service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListInstanceNames implements Service.
func (c *Client) ListInstanceNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.getJSON(ctx, instancesPath, &names); err != nil {
		return nil, errors.NewListFetchError(err)
	}
	c.logger.Debug("listed flow instances", "count", len(names))
	return names, nil
}

// GetInstanceDetails implements Service.
func (c *Client) GetInstanceDetails(ctx context.Context, name string) (flow.Instance, error) {
	var inst flow.Instance
	if err := c.getJSON(ctx, instancePath(name), &inst); err != nil {
		return flow.Instance{}, errors.NewDetailFetchError(name, err)
	}
	return inst, nil
}

// DeleteInstance implements Service.
func (c *Client) DeleteInstance(ctx context.Context, name string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, instancePath(name), nil)
	if err != nil {
		return errors.NewDeleteError(name, "", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewDeleteError(name, "", fmt.Errorf("%w: %v", errors.ErrServiceUnavailable, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK:
		c.logger.Info("deleted flow instance", "name", name)
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewDeleteError(name, "instance not found", errors.ErrInstanceNotFound)
	default:
		return errors.NewDeleteError(name, readErrorBody(resp.Body), statusError(resp.StatusCode))
	}
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return errors.ErrInstanceNotFound
	default:
		if msg := readErrorBody(resp.Body); msg != "" {
			return fmt.Errorf("%w: %s", statusError(resp.StatusCode), msg)
		}
		return statusError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// instancePath returns the resource path for one named instance.
// Names come from the service but are escaped anyway.
func instancePath(name string) string {
	return instancesPath + "/" + url.PathEscape(name)
}

// readErrorBody returns the trimmed error body, capped to keep alert text
// and logs reasonable.
func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 1024))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}

func statusError(code int) error {
	return fmt.Errorf("flow service returned %d %s", code, http.StatusText(code))
}
