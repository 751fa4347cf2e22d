package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecopulse/ecopulse/internal/client/models"
	"github.com/ecopulse/ecopulse/internal/common"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API at baseURL. A positive timeout
// bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Status string                `json:"status"`
	Error  string                `json:"error"`
	UserID string                `json:"userId"`
	Token  string                `json:"token"`
	Name   string                `json:"name"`
	Log    *models.EmissionLog   `json:"log"`
	Logs   []*models.EmissionLog `json:"logs"`
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in any) (*envelope, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AccessTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected HTTP status %d", ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	if env.Status != common.StatusOK {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}
		return nil, &APIError{Message: msg}
	}

	return &env, nil
}

// Register creates an account and returns the new user id.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if err != nil {
		return "", err
	}
	return env.UserID, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/login", "", map[string]string{
		"email": email, "password": password,
	})
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: env.Token, Name: env.Name}, nil
}

func (c *HTTPClient) CreateLog(ctx context.Context, token string, log models.NewLog) (*models.EmissionLog, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/logs", token, log)
	if err != nil {
		return nil, err
	}
	if env.Log == nil {
		return nil, fmt.Errorf("%w: response has no log", ErrUnavailable)
	}
	return env.Log, nil
}

// ListLogs returns the caller's logs, newest first. The result is never nil.
func (c *HTTPClient) ListLogs(ctx context.Context, token string) ([]*models.EmissionLog, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/logs", token, nil)
	if err != nil {
		return nil, err
	}
	if env.Logs == nil {
		return []*models.EmissionLog{}, nil
	}
	return env.Logs, nil
}

// Ping checks that the server answers its health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", "", nil)
	return err
}
