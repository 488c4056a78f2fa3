package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	employeeerrors "hrboard/internal/employee/errors"
	"hrboard/internal/shared/apperror"

	"go.uber.org/zap"
)

// Client fetches raw user records from the upstream test API. One attempt
// per call: failures surface to the caller, there is no retry or backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("employee.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.client")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     l,
	}
}

type usersEnvelope struct {
	Users []User `json:"users"`
}

// FetchUsers returns up to limit users from GET {base}/users?limit=N.
func (c *Client) FetchUsers(ctx context.Context, limit int) ([]User, error) {
	url := fmt.Sprintf("%s/users?limit=%d", c.baseURL, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upstream fetch failed", zap.String("url", url), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeUpstreamError, "Failed to fetch employees", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, employeeerrors.ErrDirectoryUnavailable
	}

	var envelope usersEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUpstreamError, "Failed to decode employees", http.StatusBadGateway)
	}

	return envelope.Users, nil
}

// FetchUser returns one user from GET {base}/users/{id}.
func (c *Client) FetchUser(ctx context.Context, id int) (User, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return User{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upstream fetch failed", zap.String("url", url), zap.Error(err))
		return User{}, apperror.Wrap(err, apperror.CodeUpstreamError, "Failed to fetch employee", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return User{}, employeeerrors.ErrEmployeeNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return User{}, employeeerrors.ErrDirectoryUnavailable
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, apperror.Wrap(err, apperror.CodeUpstreamError, "Failed to decode employee", http.StatusBadGateway)
	}

	return user, nil
}
