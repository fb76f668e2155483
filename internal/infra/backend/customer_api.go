package backend

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

type customerAPI struct {
	client *Client
}

// NewCustomerAPI is the constructor for the customer profile gateway.
func NewCustomerAPI(client *Client) repository.CustomerGateway {
	return &customerAPI{client: client}
}

func (a *customerAPI) Info(ctx context.Context) (*entity.Customer, error) {
	var customer entity.Customer
	if err := a.client.Get(ctx, EndpointCustomerInfo, nil, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (a *customerAPI) UpdateProfile(ctx context.Context, update entity.ProfileUpdate) error {
	return a.client.Post(ctx, endpointCustomerUpdateProfile, update, nil)
}

func (a *customerAPI) RemoveAccount(ctx context.Context) error {
	return a.client.Delete(ctx, endpointCustomerRemoveAccount, nil, nil)
}

func (a *customerAPI) UpdateInterest(ctx context.Context, categoryIDs []int) error {
	return a.client.Post(ctx, endpointCustomerUpdateInterest, map[string][]int{"interest": categoryIDs}, nil)
}

func (a *customerAPI) SuggestedFoods(ctx context.Context) ([]entity.Product, error) {
	return listGet[entity.Product](ctx, a.client, endpointCustomerSuggestedFoods, nil, "")
}

func (a *customerAPI) FoodList(ctx context.Context) ([]entity.Product, error) {
	return listGet[entity.Product](ctx, a.client, endpointCustomerFoodList, nil, "products")
}
