package geoloc

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nosh/config"
	"nosh/internal/domain/service"
	"nosh/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocator(sourceURL string, acquireTimeout, maxAge time.Duration) service.Locator {
	cfg := &config.Config{}
	cfg.Geolocation = &config.GeolocationConfig{
		SourceURL:      sourceURL,
		AcquireTimeout: acquireTimeout,
		MaxPositionAge: maxAge,
	}

	return NewLocator(LocatorParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestLocatorCurrent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"latitude": 23.78, "longitude": 90.42, "accuracy": 12.5, "age_ms": 800}`))
	}))
	defer server.Close()

	position, err := newTestLocator(server.URL, 15*time.Second, 10*time.Second).Current(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 23.78, position.Latitude, 1e-9)
	assert.InDelta(t, 90.42, position.Longitude, 1e-9)
	assert.InDelta(t, 12.5, position.Accuracy, 1e-9)
}

func TestLocatorTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := newTestLocator(server.URL, 50*time.Millisecond, 10*time.Second).Current(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrPositionTimeout))
}

func TestLocatorRejectsStaleFix(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"latitude": 23.78, "longitude": 90.42, "age_ms": 60000}`))
	}))
	defer server.Close()

	_, err := newTestLocator(server.URL, 15*time.Second, 10*time.Second).Current(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrPositionStale))
}
