package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// CartUsecase mirrors the server-side cart. The backend is
// authoritative; the local list is a cache refreshed after every own
// mutation. Mutations are serialized so concurrent callers cannot
// interleave a mutation with its refresh.
type CartUsecase interface {
	// Items returns the cached cart lines.
	Items() []entity.CartItem

	// Refresh reloads the cache from the backend.
	Refresh(ctx context.Context) ([]entity.CartItem, error)

	Add(ctx context.Context, m entity.CartMutation) ([]entity.CartItem, error)
	Update(ctx context.Context, m entity.CartMutation) ([]entity.CartItem, error)
	Remove(ctx context.Context, itemID int) ([]entity.CartItem, error)
	AddMultiple(ctx context.Context, ms []entity.CartMutation) ([]entity.CartItem, error)

	// Clear empties the backend cart and, on success, the cache directly
	// without a refetch.
	Clear(ctx context.Context) error
}
