// Package api is the HTTP client for the rental REST API.
//
// Every request carries a JSON Accept header, a User-Agent, a fresh
// X-Request-ID and, when a token source is configured, a bearer token.
// Bodies are JSON except for Upload, which sends multipart/form-data.
// Any failure is reported as *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/rentverse/internal/common"
	"github.com/dmitrijs2005/rentverse/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const maxErrorBody = 1 << 20

// TokenStore is where the client reads the bearer token and writes the pair
// obtained from a refresh.
type TokenStore interface {
	GetToken(ctx context.Context) (string, error)
	GetRefreshToken(ctx context.Context) (string, error)
	SaveTokens(ctx context.Context, access, refresh string) error
}

type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenStore
	limiter   *rate.Limiter
	log       logging.Logger
	userAgent string
	skew      time.Duration
	now       func() time.Time

	refreshMu sync.Mutex
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithTokenStore(s TokenStore) Option { return func(c *Client) { c.tokens = s } }

func WithLogger(l logging.Logger) Option { return func(c *Client) { c.log = l } }

func WithUserAgent(ua string) Option { return func(c *Client) { c.userAgent = ua } }

// WithRateLimit caps outbound requests; rps <= 0 disables the limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRefreshSkew sets how close to expiry a JWT access token is refreshed
// before being sent.
func WithRefreshSkew(d time.Duration) Option { return func(c *Client) { c.skew = d } }

// New returns a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     logging.Nop(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// request describes one call; body is already encoded so it can be resent
// after a token refresh.
type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	// anonymous requests carry no token and never trigger a refresh.
	anonymous bool
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out, false)
}

// PostAnonymous is Post without credentials, used for login-type endpoints.
func (c *Client) PostAnonymous(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out, true)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, in, out, false)
}

func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, in, out, false)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path}, out)
}

// Upload posts r as the file part field of a multipart form.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	}, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, anonymous bool) error {
	req := request{method: method, path: path, anonymous: anonymous}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		req.body = b
		req.contentType = "application/json"
	}
	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	if req.anonymous || c.tokens == nil {
		return c.send(ctx, req, "", out)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	err = c.send(ctx, req, token, out)
	if !IsUnauthorized(err) || token == "" {
		return err
	}

	fresh, rerr := c.refresh(ctx, token)
	if rerr != nil {
		c.log.Warn(ctx, "token refresh failed", "path", req.path, "error", rerr)
		return err
	}
	return c.send(ctx, req, fresh, out)
}

func (c *Client) send(ctx context.Context, req request, token string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return newNetworkError("rate limiter", err)
		}
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	hr, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	hr.Header.Set("Accept", "application/json")
	hr.Header.Set(common.RequestIDHeaderName, requestID)
	if req.contentType != "" {
		hr.Header.Set("Content-Type", req.contentType)
	}
	if c.userAgent != "" {
		hr.Header.Set(common.UserAgentHeaderName, c.userAgent)
	}
	if token != "" {
		hr.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	start := c.now()
	resp, err := c.http.Do(hr)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", req.method, "path", req.path, "request_id", requestID, "error", err)
		return newNetworkError(req.method+" "+req.path, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", c.now().Sub(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newStatusError(resp.StatusCode, data)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &Error{Status: resp.StatusCode, Kind: KindServer, Message: "invalid response body", Err: err}
	}
	return nil
}
