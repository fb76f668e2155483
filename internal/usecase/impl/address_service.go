package impl

import (
	"context"
	"log/slog"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"
)

type addressService struct {
	gateway repository.AddressGateway
	logger  *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(gateway repository.AddressGateway, logger *slog.Logger) usecase.AddressUsecase {
	return &addressService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *addressService) List(ctx context.Context) ([]entity.Address, error) {
	return s.gateway.List(ctx)
}

func (s *addressService) Add(ctx context.Context, address entity.Address) error {
	if err := validateStruct(address); err != nil {
		return err
	}

	return s.gateway.Add(ctx, address)
}

func (s *addressService) Update(ctx context.Context, id int, address entity.Address) error {
	if err := validateStruct(address); err != nil {
		return err
	}

	return s.gateway.Update(ctx, id, address)
}

func (s *addressService) Delete(ctx context.Context, id int) error {
	return s.gateway.Delete(ctx, id)
}
