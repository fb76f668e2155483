package backend

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

type walletAPI struct {
	client *Client
}

// NewWalletAPI is the constructor for the wallet and loyalty gateway.
func NewWalletAPI(client *Client) repository.WalletGateway {
	return &walletAPI{client: client}
}

func (a *walletAPI) Transactions(ctx context.Context) ([]entity.WalletTransaction, error) {
	return listGet[entity.WalletTransaction](ctx, a.client, endpointWalletTransactions, nil, "transactions")
}

func (a *walletAPI) AddFund(ctx context.Context, payload entity.AddFundPayload) error {
	return a.client.Post(ctx, endpointWalletAddFund, payload, nil)
}

func (a *walletAPI) Bonuses(ctx context.Context) ([]entity.WalletBonus, error) {
	return listGet[entity.WalletBonus](ctx, a.client, endpointWalletBonuses, nil, "")
}

func (a *walletAPI) LoyaltyTransactions(ctx context.Context) ([]entity.LoyaltyTransaction, error) {
	return listGet[entity.LoyaltyTransaction](ctx, a.client, endpointLoyaltyTransactions, nil, "transactions")
}

func (a *walletAPI) TransferPoints(ctx context.Context, payload entity.PointTransferPayload) error {
	return a.client.Post(ctx, endpointLoyaltyPointTransfer, payload, nil)
}

func (a *walletAPI) OfflinePaymentMethods(ctx context.Context) ([]entity.OfflinePaymentMethod, error) {
	return listGet[entity.OfflinePaymentMethod](ctx, a.client, endpointOfflinePaymentList, nil, "")
}
