package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// WalletUsecase covers the wallet balance, loyalty points and the
// offline payment channels.
type WalletUsecase interface {
	Transactions(ctx context.Context) ([]entity.WalletTransaction, error)
	AddFund(ctx context.Context, payload entity.AddFundPayload) error
	Bonuses(ctx context.Context) ([]entity.WalletBonus, error)

	LoyaltyTransactions(ctx context.Context) ([]entity.LoyaltyTransaction, error)
	TransferPoints(ctx context.Context, payload entity.PointTransferPayload) error

	OfflinePaymentMethods(ctx context.Context) ([]entity.OfflinePaymentMethod, error)
}
