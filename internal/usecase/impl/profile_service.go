package impl

import (
	"context"
	"log/slog"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"
)

type profileService struct {
	gateway repository.CustomerGateway
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	gateway repository.CustomerGateway,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		gateway: gateway,
		session: session,
		logger:  logger,
	}
}

func (s *profileService) Info(ctx context.Context) (*entity.Customer, error) {
	return s.gateway.Info(ctx)
}

func (s *profileService) Update(ctx context.Context, update entity.ProfileUpdate) error {
	if err := validateStruct(update); err != nil {
		return err
	}

	return s.gateway.UpdateProfile(ctx, update)
}

// RemoveAccount deletes the account on the backend, then tears the local
// session down. The local teardown runs even though the remote account
// is already gone, so a storage failure here is logged, not returned.
func (s *profileService) RemoveAccount(ctx context.Context) error {
	if err := s.gateway.RemoveAccount(ctx); err != nil {
		return err
	}

	if err := s.session.Logout(ctx); err != nil {
		s.logger.Warn("Local session teardown after account removal failed", slog.Any("error", err))
		s.session.ForceLogout(ctx)
	}

	return nil
}

func (s *profileService) UpdateInterest(ctx context.Context, categoryIDs []int) error {
	return s.gateway.UpdateInterest(ctx, categoryIDs)
}

func (s *profileService) SuggestedFoods(ctx context.Context) ([]entity.Product, error) {
	return s.gateway.SuggestedFoods(ctx)
}

func (s *profileService) FoodList(ctx context.Context) ([]entity.Product, error) {
	return s.gateway.FoodList(ctx)
}
