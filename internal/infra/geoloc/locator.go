// Package geoloc acquires the device's position from a local positioning
// service, the piece of platform hardware this process has no direct
// access to.
package geoloc

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"nosh/config"
	"nosh/internal/domain/entity"
	"nosh/internal/domain/service"
	"nosh/internal/errors"

	"go.uber.org/fx"
)

// LocatorParams holds dependencies for the locator, injected by Fx.
type LocatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type httpLocator struct {
	httpClient *http.Client
	cfg        *config.GeolocationConfig
	logger     *slog.Logger
}

// NewLocator is the constructor for the position source client.
func NewLocator(params LocatorParams) service.Locator {
	return &httpLocator{
		httpClient: &http.Client{},
		cfg:        params.Config.Geolocation,
		logger:     params.Logger,
	}
}

// Current acquires a single position fix. The wait is bounded by the
// configured acquisition timeout, and a cached fix older than the
// configured maximum age is rejected rather than silently served.
func (l *httpLocator) Current(ctx context.Context) (*entity.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.AcquireTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.SourceURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build position request")
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.WithStack(service.ErrPositionTimeout)
		}

		return nil, errors.Wrap(err, "failed to reach position source")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("position source returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read position response")
	}

	var position entity.Position
	if err := json.Unmarshal(raw, &position); err != nil {
		return nil, errors.Wrap(err, "failed to decode position response")
	}

	if l.cfg.MaxPositionAge > 0 && position.AgeMs > l.cfg.MaxPositionAge.Milliseconds() {
		l.logger.Debug("Rejecting stale position fix", slog.Int64("ageMs", position.AgeMs))

		return nil, errors.WithStack(service.ErrPositionStale)
	}

	return &position, nil
}
