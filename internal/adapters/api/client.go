package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/avasile/resx-cli/internal/domain"
)

const maxResponseBytes = 1 << 20

// Client talks to the marketplace backend. Every authenticated request reads
// the bearer token through the token source at call time, so a login or
// logout between calls is picked up without rebuilding the client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
}

func NewClient(baseURL string, httpClient *http.Client, token func() string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if token == nil {
		token = func() string { return "" }
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		token:      token,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON issues a request with an optional JSON body and decodes the
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// statusError maps HTTP failures onto the client error taxonomy. The backend
// reports details as {"message": "..."}; the message is carried along when
// present.
func statusError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload)

	var kind error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = domain.ErrUnauthorized
	case http.StatusForbidden:
		kind = domain.ErrForbidden
	case http.StatusNotFound:
		kind = domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = domain.ErrValidation
	default:
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, payload.Message)
	}

	if payload.Message != "" {
		return fmt.Errorf("%w: %s", kind, payload.Message)
	}
	return kind
}
