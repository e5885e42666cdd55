package wcg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Response is the decoded outcome of one API call.
type Response struct {
	StatusCode int
	Feedback   string
	Body       []byte
}

// Client is a thin wrapper over the two WCG endpoints. It performs no
// retries and no error translation: a transport failure is returned as-is
// and fails the calling check.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithTimeout adjusts the client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient creates a client for the deployment at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register submits a registration payload.
func (c *Client) Register(ctx context.Context, info RegistrationInfo) (*Response, error) {
	return c.postForm(ctx, "/registration", info.Values())
}

// Reserve submits a reservation payload.
func (c *Client) Reserve(ctx context.Context, info ReservationInfo) (*Response, error) {
	return c.postForm(ctx, "/reservation", info.Values())
}

// DeleteRegistration removes a citizen's registration. Used to reset
// upstream state between checks; an unknown citizen still yields a Response,
// only transport failures return an error.
func (c *Client) DeleteRegistration(ctx context.Context, citizenID string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/registration/"+url.PathEscape(citizenID), nil)
	if err != nil {
		return nil, fmt.Errorf("build delete request: %w", err)
	}
	return c.do(req)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	out := &Response{StatusCode: res.StatusCode, Body: body}

	// A body without a feedback field leaves Feedback empty; the mismatch
	// report then carries the raw body instead of a decode error.
	var payload struct {
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		out.Feedback = payload.Feedback
	}
	return out, nil
}
