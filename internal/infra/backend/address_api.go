package backend

import (
	"context"
	"net/url"
	"strconv"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

type addressAPI struct {
	client *Client
}

// NewAddressAPI is the constructor for the address book gateway.
func NewAddressAPI(client *Client) repository.AddressGateway {
	return &addressAPI{client: client}
}

func (a *addressAPI) List(ctx context.Context) ([]entity.Address, error) {
	return listGet[entity.Address](ctx, a.client, endpointAddressList, nil, "addresses")
}

func (a *addressAPI) Add(ctx context.Context, address entity.Address) error {
	return a.client.Post(ctx, endpointAddressAdd, address, nil)
}

func (a *addressAPI) Update(ctx context.Context, id int, address entity.Address) error {
	return a.client.Put(ctx, withID(endpointAddressUpdate, id), address, nil)
}

func (a *addressAPI) Delete(ctx context.Context, id int) error {
	query := url.Values{"address_id": {strconv.Itoa(id)}}

	return a.client.Delete(ctx, endpointAddressDelete, query, nil)
}
