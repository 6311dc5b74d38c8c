package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-form/config"
	"user-form/internal/domain/user"
)

const (
	jsonContentType = "application/json"
	// cap on what is drained from an ignored or rejected body
	respBodyReadLimit = 1 << 12
)

// Client reads and creates users at a single endpoint. GET lists, POST creates.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger, mCounter *prometheus.CounterVec) (*Client, error) {
	endpoint, err := cfg.EndpointURL()
	if err != nil {
		return nil, err
	}

	transport := NewTransport(
		DefaultPooledTransport(),
		RequestCounter(mCounter),
		UserAgent(cfg.App.Name, cfg.App.Version),
		RequestLog(logger),
	)

	return NewWithHTTPClient(endpoint, &http.Client{
		Transport: transport,
		Timeout:   cfg.UserAPI.Timeout,
	}, logger), nil
}

// NewWithHTTPClient uses hc as is; the endpoint is not validated.
func NewWithHTTPClient(endpoint string, hc *http.Client, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     hc,
		logger:   logger,
	}
}

func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) FetchUsers(ctx context.Context) (user.Users, error) {
	req, err := c.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, &user.NetworkError{Op: user.OpList, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &user.NetworkError{Op: user.OpList, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		drain(resp.Body)
		return nil, &user.NetworkError{Op: user.OpList, Status: resp.StatusCode}
	}

	var payload []User
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &user.NetworkError{
			Op:  user.OpList,
			Err: fmt.Errorf("decode response body: %w", err),
		}
	}

	return fromPayloads(payload), nil
}

func (c *Client) CreateUser(ctx context.Context, u user.User) error {
	b, err := json.Marshal(toPayload(u))
	if err != nil {
		return &user.NetworkError{Op: user.OpCreate, Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, b)
	if err != nil {
		return &user.NetworkError{Op: user.OpCreate, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &user.NetworkError{Op: user.OpCreate, Err: err}
	}
	defer resp.Body.Close()
	// the body of a create response carries nothing we use
	drain(resp.Body)

	if !isSuccess(resp.StatusCode) {
		return &user.NetworkError{Op: user.OpCreate, Status: resp.StatusCode}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method string, body []byte) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", jsonContentType+"; charset=utf-8")
	}
	req.Header.Set("Accept", jsonContentType)

	return req, nil
}

func isSuccess(status int) bool { return status >= 200 && status < 300 }

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, respBodyReadLimit))
}
