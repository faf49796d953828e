package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

const platformOriginURL = "/open-metadata/platform-services/users/{1}/server-platform/origin"

// Client issues requests to the services of one server on an OMAG server platform
type Client struct {
	platformURL string
	serverName  string
	httpClient  *http.Client
	tokens      TokenSource
	logger      *zap.Logger
	attempts    uint
	delay       time.Duration
	maxPageSize int
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRetry retries transport failures and gateway errors up to attempts
// times, waiting delay between tries
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		if attempts == 0 {
			attempts = 1
		}
		c.attempts = attempts
		c.delay = delay
	}
}

// WithTokenSource adds a bearer token to every request
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithMaxPageSize bounds the page size callers may ask for. 0 disables the check.
func WithMaxPageSize(max int) Option {
	return func(c *Client) {
		c.maxPageSize = max
	}
}

// NewClient creates a client for serverName hosted on the platform at platformURL
func NewClient(platformURL, serverName string, opts ...Option) (*Client, error) {
	const method = "NewClient"
	if err := Validate(method,
		Name(platformURL, "platformURLRoot"),
		Name(serverName, "serverName"),
	); err != nil {
		return nil, err
	}

	c := &Client{
		platformURL: strings.TrimRight(platformURL, "/"),
		serverName:  serverName,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      zap.NewNop(),
		attempts:    1,
		delay:       500 * time.Millisecond,
		maxPageSize: DefaultMaxPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ServerName returns the name of the server the client calls
func (c *Client) ServerName() string {
	return c.serverName
}

// PlatformURL returns the root URL of the platform
func (c *Client) PlatformURL() string {
	return c.platformURL
}

// MaxPageSize returns the largest page callers may ask for, 0 when unbounded
func (c *Client) MaxPageSize() int {
	return c.maxPageSize
}

// Post sends body to the expanded template and decodes the response into out.
// params fill the placeholders from {1} onwards; the first one is the calling user.
func (c *Client) Post(ctx context.Context, method, template string, body any, out Response, params ...any) error {
	return c.call(ctx, http.MethodPost, method, template, body, out, params)
}

// Get calls the expanded template and decodes the response into out
func (c *Client) Get(ctx context.Context, method, template string, out Response, params ...any) error {
	return c.call(ctx, http.MethodGet, method, template, nil, out, params)
}

// PlatformOrigin returns the description of the platform's build. It is a
// cheap way to check the platform is up.
func (c *Client) PlatformOrigin(ctx context.Context, userID string) (string, error) {
	const method = "PlatformOrigin"
	if err := Validate(method, UserID(userID)); err != nil {
		return "", err
	}
	var resp StringResponse
	if err := c.Get(ctx, method, platformOriginURL, &resp, userID); err != nil {
		return "", err
	}
	return resp.ResultString, nil
}

func (c *Client) call(ctx context.Context, httpMethod, method, template string, body any, out Response, params []any) error {
	path, err := ExpandTemplate(template, append([]any{c.serverName}, params...)...)
	if err != nil {
		return newPropertyServerError(method, 0, err)
	}
	userID := ""
	if len(params) > 0 {
		userID, _ = params[0].(string)
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return newPropertyServerError(method, 0, fmt.Errorf("failed to encode request body: %w", err))
		}
	}

	start := time.Now()
	err = retry.Do(
		func() error {
			return c.do(ctx, httpMethod, method, userID, c.platformURL+path, payload, out)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying request", zap.String("method", method), zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	var te *transportError
	if errors.As(err, &te) {
		err = te.error
	}

	c.logger.Debug("rest call",
		zap.String("method", method),
		zap.String("verb", httpMethod),
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return err
}

func (c *Client) do(ctx context.Context, httpMethod, method, userID, url string, payload []byte, out Response) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, httpMethod, url, reqBody)
	if err != nil {
		return newPropertyServerError(method, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return &UserNotAuthorizedError{
				OMAGError: &OMAGError{ReportedHTTPCode: http.StatusUnauthorized, ActionDescription: method, cause: err},
				UserID:    userID,
			}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{newPropertyServerError(method, 0, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transportError{newPropertyServerError(method, resp.StatusCode, err)}
	}

	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
		c.tokens.Invalidate()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The platform still sends an envelope for most failures
		var envelope FFDCResponse
		if json.Unmarshal(data, &envelope) == nil && envelope.RelatedHTTPCode != 0 {
			if err := exceptionFromResponse(method, userID, &envelope); err != nil {
				return err
			}
		}
		err := exceptionFromStatus(method, userID, resp.StatusCode, data)
		if isGatewayStatus(resp.StatusCode) {
			return &transportError{err}
		}
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newPropertyServerError(method, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return exceptionFromResponse(method, userID, out.ffdc())
}

// transportError marks a failure worth retrying
type transportError struct {
	error
}

func (e *transportError) Unwrap() error {
	return e.error
}

func isRetryable(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

func isGatewayStatus(status int) bool {
	return status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout
}
