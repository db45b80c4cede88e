// Package restapi implements the service.Service interface over the storefront REST API.
package restapi

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

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"caseshop/internal/config"
	"caseshop/internal/logging"
	"caseshop/internal/service"
)

// DefaultTimeout bounds each API call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Client implements service.Service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *zap.Logger
}

// New creates a client for the API configured in cfg.
func New(cfg *config.Config, log *zap.Logger) (*Client, error) {
	return NewWithHTTPClient(cfg.APIURL, http.DefaultClient, cfg.APITimeout, log)
}

// NewWithHTTPClient creates a client with a custom base HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, timeout time.Duration, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url: %s", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    httpClient,
		timeout: timeout,
		log:     logging.OrNop(log),
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var tok oauth2.Token
	err := c.do(ctx, c.http, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &tok)
	if err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: login response has no access_token", service.ErrTransport)
	}
	return tok.AccessToken, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, name, email, password string) (service.Profile, error) {
	var p service.Profile
	err := c.do(ctx, c.http, http.MethodPost, "/api/auth/register", registerRequest{Name: name, Email: email, Password: password}, &p)
	return p, err
}

// Me resolves the profile owning token.
func (c *Client) Me(ctx context.Context, token string) (service.Profile, error) {
	hc, err := c.authed(ctx, token)
	if err != nil {
		return service.Profile{}, err
	}
	var p service.Profile
	err = c.do(ctx, hc, http.MethodGet, "/api/auth/me", nil, &p)
	return p, err
}

// ListTasks returns the user's tasks in API order.
func (c *Client) ListTasks(ctx context.Context, token string) ([]service.Task, error) {
	hc, err := c.authed(ctx, token)
	if err != nil {
		return nil, err
	}
	var tasks []service.Task
	if err := c.do(ctx, hc, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the stored record.
func (c *Client) CreateTask(ctx context.Context, token string, draft service.TaskDraft) (service.Task, error) {
	hc, err := c.authed(ctx, token)
	if err != nil {
		return service.Task{}, err
	}
	var t service.Task
	err = c.do(ctx, hc, http.MethodPost, "/api/tasks", draft, &t)
	return t, err
}

// UpdateTask applies patch and returns the stored record.
func (c *Client) UpdateTask(ctx context.Context, token, id string, patch service.TaskPatch) (service.Task, error) {
	hc, err := c.authed(ctx, token)
	if err != nil {
		return service.Task{}, err
	}
	var t service.Task
	err = c.do(ctx, hc, http.MethodPut, "/api/tasks/"+url.PathEscape(id), patch, &t)
	return t, err
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	hc, err := c.authed(ctx, token)
	if err != nil {
		return err
	}
	return c.do(ctx, hc, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

// authed returns an HTTP client that sends token as a bearer credential.
func (c *Client) authed(ctx context.Context, token string) (*http.Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: no token", service.ErrUnauthorized)
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return oauth2.NewClient(ctx, src), nil
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := hc.Do(req)
	if err != nil {
		c.log.Debug("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return wrapError(err)
	}
	defer res.Body.Close()

	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if err := googleapi.CheckResponse(res); err != nil {
		return wrapError(err)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: invalid response body: %v", service.ErrTransport, err)
	}
	return nil
}

// wrapError maps transport and status errors onto the service sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		detail := errorDetail(apiErr)
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return withDetail(service.ErrUnauthorized, detail)
		case http.StatusNotFound:
			return withDetail(service.ErrNotFound, detail)
		default:
			return withDetail(service.ErrRejected, fmt.Sprintf("status %d %s", apiErr.Code, detail))
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out", service.ErrTransport)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: cancelled", service.ErrTransport)
	}
	return fmt.Errorf("%w: %v", service.ErrTransport, err)
}

// errorDetail extracts the "detail" field of an API error body, if any.
func errorDetail(apiErr *googleapi.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal([]byte(apiErr.Body), &body); err == nil && body.Detail != nil {
		if s, ok := body.Detail.(string); ok {
			return s
		}
		return fmt.Sprint(body.Detail)
	}
	return strings.TrimSpace(apiErr.Body)
}

func withDetail(sentinel error, detail string) error {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}
