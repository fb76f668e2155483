package backend

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
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) (*Client, *HeaderSnapshot) {
	snapshot := NewHeaderSnapshot()
	cfg := &config.Config{}
	cfg.Backend = config.BackendConfig{BaseURL: baseURL, Timeout: 5 * time.Second}

	client := NewClient(ClientParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Snapshot: snapshot,
	})

	return client, snapshot
}

func TestClientDecoration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		token      string
		zoneID     string
		latitude   string
		longitude  string
		wantAuth   string
		wantZoneID string
		wantLat    string
		wantLng    string
	}{
		{
			name:       "full session and location",
			path:       "/api/v1/banners/",
			token:      "tok-1",
			zoneID:     "[3]",
			latitude:   "23.81",
			longitude:  "90.41",
			wantAuth:   "Bearer tok-1",
			wantZoneID: "[3]",
			wantLat:    "23.81",
			wantLng:    "90.41",
		},
		{
			name:     "no session, no location",
			path:     "/api/v1/banners/",
			wantAuth: "",
		},
		{
			name:       "customer info skips authorization",
			path:       EndpointCustomerInfo,
			token:      "tok-1",
			zoneID:     "[3]",
			wantAuth:   "",
			wantZoneID: "[3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got http.Header
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Clone()
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client, snapshot := newTestClient(server.URL)
			snapshot.apply(repository.KeyUserToken, tt.token)
			snapshot.apply(repository.KeyZoneID, tt.zoneID)
			snapshot.apply(repository.KeyLatitude, tt.latitude)
			snapshot.apply(repository.KeyLongitude, tt.longitude)

			err := client.Get(context.Background(), tt.path, nil, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAuth, got.Get("Authorization"))
			assert.Equal(t, tt.wantZoneID, got.Get("zoneId"))
			assert.Equal(t, tt.wantLat, got.Get("latitude"))
			assert.Equal(t, tt.wantLng, got.Get("longitude"))
			assert.Equal(t, "application/json", got.Get("Content-Type"))
		})
	}
}

func TestClientUnauthorizedFiresHook(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)

	fired := 0
	client.SetUnauthorizedHook(func() { fired++ })

	err := client.Get(context.Background(), "/api/v1/customer/order/list", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	assert.Equal(t, 1, fired)
}

func TestClientErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantTarget  error
		wantMessage string
	}{
		{
			name:       "not found",
			status:     http.StatusNotFound,
			wantTarget: domainerrors.ErrNotFound,
		},
		{
			name:        "flat message",
			status:      http.StatusForbidden,
			body:        `{"message":"account blocked"}`,
			wantMessage: "account blocked",
		},
		{
			name:        "nested errors",
			status:      http.StatusUnprocessableEntity,
			body:        `{"errors":[{"code":"phone","message":"phone already taken"}]}`,
			wantMessage: "phone already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, _ := newTestClient(server.URL)

			err := client.Get(context.Background(), "/api/v1/categories", nil, nil)
			require.Error(t, err)

			if tt.wantTarget != nil {
				assert.True(t, errors.Is(err, tt.wantTarget))
			}
			if tt.wantMessage != "" {
				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantMessage, appErr.Message())
				assert.Equal(t, tt.status, appErr.HTTPCode())
			}
		})
	}
}

func TestClientTransportErrorIsBackendUnavailable(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient("http://127.0.0.1:1")

	err := client.Get(context.Background(), "/api/v1/categories", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBackendUnavailable))
}

func TestWatchedStoreWriteThrough(t *testing.T) {
	t.Parallel()

	snapshot := NewHeaderSnapshot()
	store := NewWatchedStore(storage.NewMemoryStore(), snapshot)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyUserToken, "tok-9"))
	require.NoError(t, store.Set(ctx, repository.KeyZoneID, "[7]"))
	require.NoError(t, store.Set(ctx, repository.KeyLatitude, "1.5"))
	require.NoError(t, store.Set(ctx, repository.KeyLongitude, "-2.5"))

	assert.Equal(t, "tok-9", snapshot.Token())
	assert.Equal(t, "[7]", snapshot.ZoneID())

	lat, lng := snapshot.Coordinates()
	assert.Equal(t, "1.5", lat)
	assert.Equal(t, "-2.5", lng)

	// Untracked keys must not disturb the snapshot.
	require.NoError(t, store.Set(ctx, repository.KeyAlreadyLaunched, "true"))
	assert.Equal(t, "tok-9", snapshot.Token())

	require.NoError(t, store.Delete(ctx, repository.KeyUserToken))
	assert.Empty(t, snapshot.Token())
}

func TestHeaderSnapshotSeed(t *testing.T) {
	t.Parallel()

	inner := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, inner.Set(ctx, repository.KeyUserToken, "persisted"))
	require.NoError(t, inner.Set(ctx, repository.KeyZoneID, "[2]"))

	snapshot := NewHeaderSnapshot()
	snapshot.Seed(ctx, inner, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, "persisted", snapshot.Token())
	assert.Equal(t, "[2]", snapshot.ZoneID())

	lat, lng := snapshot.Coordinates()
	assert.Empty(t, lat)
	assert.Empty(t, lng)
}
