package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// AddressUsecase manages the delivery address book. Every call is a
// round trip; nothing is cached between calls.
type AddressUsecase interface {
	List(ctx context.Context) ([]entity.Address, error)
	Add(ctx context.Context, address entity.Address) error
	Update(ctx context.Context, id int, address entity.Address) error
	Delete(ctx context.Context, id int) error
}
