package backend

import (
	"context"
	"net/url"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/util"
)

type zoneAPI struct {
	client *Client
}

// NewZoneAPI is the constructor for the service zone gateway.
func NewZoneAPI(client *Client) repository.ZoneGateway {
	return &zoneAPI{client: client}
}

func (a *zoneAPI) ZoneID(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{
		"lat": {util.FormatCoordinate(lat)},
		"lng": {util.FormatCoordinate(lng)},
	}

	var resp struct {
		ZoneID string `json:"zone_id"`
	}
	if err := a.client.Get(ctx, endpointGetZoneID, query, &resp); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", errors.Wrapf(domainerrors.ErrOutsideZone, "no zone covers %f,%f", lat, lng)
		}

		return "", err
	}

	if resp.ZoneID == "" {
		return "", errors.Wrapf(domainerrors.ErrOutsideZone, "no zone covers %f,%f", lat, lng)
	}

	return resp.ZoneID, nil
}

func (a *zoneAPI) Check(ctx context.Context, lat, lng float64, zoneID string) (bool, error) {
	query := url.Values{
		"lat":     {util.FormatCoordinate(lat)},
		"lng":     {util.FormatCoordinate(lng)},
		"zone_id": {zoneID},
	}

	if err := a.client.Get(ctx, endpointZoneCheck, query, nil); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (a *zoneAPI) List(ctx context.Context) ([]entity.Zone, error) {
	return listGet[entity.Zone](ctx, a.client, endpointZoneList, nil, "")
}

func (a *zoneAPI) UpdateZone(ctx context.Context, zoneID string) error {
	return a.client.Post(ctx, endpointCustomerUpdateZone, map[string]string{"zone_id": zoneID}, nil)
}
