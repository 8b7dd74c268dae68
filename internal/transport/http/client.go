package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// maxErrorBody caps how much of a failed response is kept for display
const maxErrorBody = 4096

// Result is the outcome of a single round-trip to the catalog
type Result struct {
	StatusCode int
	Reason     string
	// Body holds the start of the response for non-2xx answers
	Body string
}

// OK reports whether the catalog answered with a 2xx status
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r Result) String() string {
	return fmt.Sprintf("%d %s", r.StatusCode, r.Reason)
}

// Client talks to the remote product catalog.
// It is safe to share once constructed.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	logger  hclog.Logger
}

// NewClient creates a client for the catalog at baseURL.
// A nil httpClient uses a fresh http.Client with default settings.
func NewClient(baseURL string, httpClient *http.Client, logger hclog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	// endpoints are resolved relative to the base, which needs a trailing slash
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: u,
		client:  httpClient,
		logger:  logger,
	}, nil
}

// Create handles POST /products
func (c *Client) Create(ctx context.Context, req CreateRequest) (Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, fmt.Errorf("encoding product: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "products", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	res := newResult(resp)
	if !res.OK() {
		c.logger.Warn("Catalog rejected product", "sku", req.SerialNum, "status", res.StatusCode, "body", res.Body)
	}

	return res, nil
}

// Fetch handles GET /products/{serialNum}.
// A 404 is reported as a nil view without an error.
func (c *Client) Fetch(ctx context.Context, sku string) (*ProductView, Result, error) {
	resp, err := c.do(ctx, http.MethodGet, productPath(sku), nil)
	if err != nil {
		return nil, Result{}, err
	}
	defer resp.Body.Close()

	res := newResult(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.logger.Debug("Product not found", "sku", sku)
		return nil, res, nil
	case !res.OK():
		c.logger.Error("Unexpected status fetching product", "sku", sku, "status", res.StatusCode)
		return nil, res, &StatusError{Result: res}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, res, fmt.Errorf("reading product response: %w", err)
	}

	view, err := DecodeProductView(body)
	if err != nil {
		c.logger.Error("Unable to decode product", "sku", sku, "error", err)
		return nil, res, err
	}

	return view, res, nil
}

// Remove handles DELETE /products/{serialNum}
func (c *Client) Remove(ctx context.Context, sku string) (Result, error) {
	resp, err := c.do(ctx, http.MethodDelete, productPath(sku), nil)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	return newResult(resp), nil
}

// Close releases idle connections held by the client
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	target, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("building url for %q: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	c.logger.Debug("Sending request", "method", method, "url", target.String(), "request_id", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Request failed", "method", method, "url", target.String(), "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, target.Path, err)
	}

	c.logger.Debug("Received response", "method", method, "url", target.String(), "request_id", requestID, "status", resp.StatusCode)

	return resp, nil
}

func productPath(sku string) string {
	return "products/" + url.PathEscape(sku)
}

// newResult captures the status of resp, and the head of its body when the
// status is not a success. The body of a 2xx response is left unread.
func newResult(resp *http.Response) Result {
	res := Result{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
	}

	if !res.OK() {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		res.Body = strings.TrimSpace(string(b))
	}

	return res
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
