package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nosh/config"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(baseURL string) *googleGeocoder {
	cfg := &config.Config{}
	cfg.Geocoding = &config.GeocodingConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}

	return NewGeocoder(GeocoderParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*googleGeocoder)
}

func TestGeocoderForward(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Dhanmondi 27", r.URL.Query().Get("address"))

		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Road 27, Dhanmondi, Dhaka",
				"geometry": {"location": {"lat": 23.7808, "lng": 90.4219}}
			}]
		}`))
	}))
	defer server.Close()

	result, err := newTestGeocoder(server.URL).Forward(context.Background(), "Dhanmondi 27")
	require.NoError(t, err)
	assert.Equal(t, "Road 27, Dhanmondi, Dhaka", result.FormattedAddress)
	assert.InDelta(t, 23.7808, result.Point.Lat(), 1e-9)
	assert.InDelta(t, 90.4219, result.Point.Lon(), 1e-9)
}

func TestGeocoderReverse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "23.7808,90.4219", r.URL.Query().Get("latlng"))

		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "Road 27, Dhanmondi, Dhaka"}]
		}`))
	}))
	defer server.Close()

	address, err := newTestGeocoder(server.URL).Reverse(context.Background(), orb.Point{90.4219, 23.7808})
	require.NoError(t, err)
	assert.Equal(t, "Road 27, Dhanmondi, Dhaka", address)
}

func TestGeocoderFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"zero results", `{"status": "ZERO_RESULTS", "results": []}`},
		{"denied in band", `{"status": "REQUEST_DENIED"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestGeocoder(server.URL).Forward(context.Background(), "nowhere")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrGeocodeFailed))
		})
	}
}
