// Package geocode resolves between addresses and coordinates through a
// Google-style geocoding HTTP API.
package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"nosh/config"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/service"
	"nosh/internal/errors"
	"nosh/internal/util"

	"github.com/paulmach/orb"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

// GeocoderParams holds dependencies for the geocoder, injected by Fx.
type GeocoderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type googleGeocoder struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewGeocoder is the constructor for the geocoding provider client.
func NewGeocoder(params GeocoderParams) service.Geocoder {
	cfg := params.Config.Geocoding

	return &googleGeocoder{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     params.Logger,
	}
}

func (g *googleGeocoder) Forward(ctx context.Context, address string) (*service.GeocodeResult, error) {
	query := url.Values{"address": {address}}

	raw, err := g.query(ctx, query)
	if err != nil {
		return nil, err
	}

	first := gjson.GetBytes(raw, "results.0")
	if !first.Exists() {
		return nil, errors.Wrapf(domainerrors.ErrGeocodeFailed, "no match for %q", address)
	}

	return &service.GeocodeResult{
		Point: orb.Point{
			first.Get("geometry.location.lng").Float(),
			first.Get("geometry.location.lat").Float(),
		},
		FormattedAddress: first.Get("formatted_address").String(),
	}, nil
}

func (g *googleGeocoder) Reverse(ctx context.Context, point orb.Point) (string, error) {
	query := url.Values{"latlng": {util.FormatLatLng(point)}}

	raw, err := g.query(ctx, query)
	if err != nil {
		return "", err
	}

	formatted := gjson.GetBytes(raw, "results.0.formatted_address")
	if !formatted.Exists() {
		return "", errors.Wrapf(domainerrors.ErrGeocodeFailed, "no address at %s", util.FormatLatLng(point))
	}

	return formatted.String(), nil
}

func (g *googleGeocoder) query(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("key", g.apiKey)
	target := g.baseURL + "/maps/api/geocode/json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocode request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("Geocode request failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGeocodeFailed, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrGeocodeFailed, "failed to read geocode response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(domainerrors.ErrGeocodeFailed, "provider returned %d", resp.StatusCode)
	}

	// The provider reports errors in-band with a 200 status.
	if status := gjson.GetBytes(raw, "status").String(); status != "OK" && status != "ZERO_RESULTS" {
		return nil, errors.Wrapf(domainerrors.ErrGeocodeFailed, "provider status %s", status)
	}

	return raw, nil
}
