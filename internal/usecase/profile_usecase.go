package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// ProfileUsecase covers the registered customer's profile.
type ProfileUsecase interface {
	Info(ctx context.Context) (*entity.Customer, error)
	Update(ctx context.Context, update entity.ProfileUpdate) error

	// RemoveAccount deletes the account on the backend and tears the
	// local session down.
	RemoveAccount(ctx context.Context) error

	UpdateInterest(ctx context.Context, categoryIDs []int) error
	SuggestedFoods(ctx context.Context) ([]entity.Product, error)
	FoodList(ctx context.Context) ([]entity.Product, error)
}
