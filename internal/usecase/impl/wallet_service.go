package impl

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"
)

type walletService struct {
	gateway repository.WalletGateway
}

// NewWalletService creates a new wallet service instance
func NewWalletService(gateway repository.WalletGateway) usecase.WalletUsecase {
	return &walletService{gateway: gateway}
}

func (s *walletService) Transactions(ctx context.Context) ([]entity.WalletTransaction, error) {
	return s.gateway.Transactions(ctx)
}

func (s *walletService) AddFund(ctx context.Context, payload entity.AddFundPayload) error {
	if err := validateStruct(payload); err != nil {
		return err
	}

	return s.gateway.AddFund(ctx, payload)
}

func (s *walletService) Bonuses(ctx context.Context) ([]entity.WalletBonus, error) {
	return s.gateway.Bonuses(ctx)
}

func (s *walletService) LoyaltyTransactions(ctx context.Context) ([]entity.LoyaltyTransaction, error) {
	return s.gateway.LoyaltyTransactions(ctx)
}

func (s *walletService) TransferPoints(ctx context.Context, payload entity.PointTransferPayload) error {
	if err := validateStruct(payload); err != nil {
		return err
	}

	return s.gateway.TransferPoints(ctx, payload)
}

func (s *walletService) OfflinePaymentMethods(ctx context.Context) ([]entity.OfflinePaymentMethod, error) {
	return s.gateway.OfflinePaymentMethods(ctx)
}
