// Package backend is the single outbound gateway to the remote ordering
// API. Every request funnels through Client, which decorates it with the
// persisted auth/zone/geo headers before transmission.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"nosh/config"
	domainerrors "nosh/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Snapshot *HeaderSnapshot
}

// Client is the decorated HTTP gateway to the ordering backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	snapshot   *HeaderSnapshot
	logger     *slog.Logger

	hookMu         sync.RWMutex
	onUnauthorized func()
}

// NewClient is the constructor for Client.
func NewClient(params ClientParams) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: params.Config.Backend.Timeout},
		baseURL:    strings.TrimRight(params.Config.Backend.BaseURL, "/"),
		snapshot:   params.Snapshot,
		logger:     params.Logger,
	}
}

// SetUnauthorizedHook registers the callback fired when the backend
// rejects an authenticated request with 401. The session layer uses it
// to force a logout instead of every caller handling expiry ad hoc.
func (c *Client) SetUnauthorizedHook(hook func()) {
	c.hookMu.Lock()
	defer c.hookMu.Unlock()

	c.onUnauthorized = hook
}

// Get issues a decorated GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a decorated POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a decorated PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a decorated DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	c.decorate(req, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrBackendUnavailable, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrBackendUnavailable, "failed to read response body")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(path, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", path)
	}

	return nil
}

// decorate attaches the ambient headers. Header values come from the
// write-through snapshot, so decoration is synchronous and fail-open: a
// value that never made it into the snapshot is simply omitted.
func (c *Client) decorate(req *http.Request, path string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// The customer-info endpoint is deliberately excluded from bearer
	// decoration; the backend identifies it by the zone/geo headers only.
	if token := c.snapshot.Token(); token != "" && path != EndpointCustomerInfo {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if zoneID := c.snapshot.ZoneID(); zoneID != "" {
		req.Header.Set("zoneId", zoneID)
	}

	lat, lng := c.snapshot.Coordinates()
	if lng != "" {
		req.Header.Set("longitude", lng)
	}
	if lat != "" {
		req.Header.Set("latitude", lat)
	}
}

func (c *Client) mapError(path string, status int, raw []byte) error {
	message := extractMessage(raw)

	switch status {
	case http.StatusUnauthorized:
		c.fireUnauthorized()

		return errors.Wrapf(domainerrors.ErrSessionExpired, "backend rejected %s", path)
	case http.StatusNotFound:
		return errors.Wrapf(domainerrors.ErrNotFound, "backend has no %s", path)
	default:
		return errors.WithStack(domainerrors.NewBackendError(status, message))
	}
}

func (c *Client) fireUnauthorized() {
	c.hookMu.RLock()
	hook := c.onUnauthorized
	c.hookMu.RUnlock()

	if hook != nil {
		hook()
	}
}

// extractMessage pulls a human-readable message out of the backend's
// error body, which is either {"message": ...} or
// {"errors": [{"message": ...}, ...]}.
func extractMessage(raw []byte) string {
	if m := gjson.GetBytes(raw, "message"); m.Exists() {
		return m.String()
	}
	if m := gjson.GetBytes(raw, "errors.0.message"); m.Exists() {
		return m.String()
	}

	return ""
}
