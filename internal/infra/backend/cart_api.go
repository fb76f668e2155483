package backend

import (
	"context"
	"net/url"
	"strconv"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

type cartAPI struct {
	client *Client
}

// NewCartAPI is the constructor for the server-side cart gateway.
func NewCartAPI(client *Client) repository.CartGateway {
	return &cartAPI{client: client}
}

func (a *cartAPI) List(ctx context.Context) ([]entity.CartItem, error) {
	return listGet[entity.CartItem](ctx, a.client, endpointCartList, nil, "")
}

func (a *cartAPI) Add(ctx context.Context, m entity.CartMutation) error {
	return a.client.Post(ctx, endpointCartAdd, m, nil)
}

func (a *cartAPI) Update(ctx context.Context, m entity.CartMutation) error {
	return a.client.Post(ctx, endpointCartUpdate, m, nil)
}

func (a *cartAPI) Remove(ctx context.Context, itemID int) error {
	query := url.Values{"cart_id": {strconv.Itoa(itemID)}}

	return a.client.Delete(ctx, endpointCartRemoveItem, query, nil)
}

func (a *cartAPI) AddMultiple(ctx context.Context, ms []entity.CartMutation) error {
	return a.client.Post(ctx, endpointCartAddMultiple, map[string][]entity.CartMutation{"carts": ms}, nil)
}

func (a *cartAPI) Clear(ctx context.Context) error {
	return a.client.Delete(ctx, endpointCartRemove, nil, nil)
}
