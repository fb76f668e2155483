package impl

import (
	"context"
	"log/slog"
	"sync"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"
)

type cartService struct {
	gateway repository.CartGateway
	logger  *slog.Logger

	mu    sync.Mutex
	items []entity.CartItem
}

// NewCartService creates a new cart service instance
func NewCartService(gateway repository.CartGateway, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *cartService) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyItems(s.items)
}

func (s *cartService) Refresh(ctx context.Context) ([]entity.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

func (s *cartService) Add(ctx context.Context, m entity.CartMutation) ([]entity.CartItem, error) {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.gateway.Add(ctx, m)
	})
}

func (s *cartService) Update(ctx context.Context, m entity.CartMutation) ([]entity.CartItem, error) {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.gateway.Update(ctx, m)
	})
}

func (s *cartService) Remove(ctx context.Context, itemID int) ([]entity.CartItem, error) {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.gateway.Remove(ctx, itemID)
	})
}

func (s *cartService) AddMultiple(ctx context.Context, ms []entity.CartMutation) ([]entity.CartItem, error) {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.gateway.AddMultiple(ctx, ms)
	})
}

// Clear empties the backend cart and, on success, drops the cache
// directly. An empty cart needs no confirmation round trip.
func (s *cartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gateway.Clear(ctx); err != nil {
		return err
	}
	s.items = nil

	return nil
}

// mutate serializes a backend mutation with its follow-up refresh, so
// concurrent mutations cannot interleave and leave the cache matching
// neither of them. A failed mutation leaves the cache as it was.
func (s *cartService) mutate(ctx context.Context, op func(context.Context) error) ([]entity.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := op(ctx); err != nil {
		return copyItems(s.items), err
	}

	return s.refreshLocked(ctx)
}

func (s *cartService) refreshLocked(ctx context.Context) ([]entity.CartItem, error) {
	items, err := s.gateway.List(ctx)
	if err != nil {
		s.logger.Warn("Cart refresh failed, keeping cached lines", slog.Any("error", err))

		return copyItems(s.items), err
	}
	s.items = items

	return copyItems(s.items), nil
}

func copyItems(items []entity.CartItem) []entity.CartItem {
	if items == nil {
		return nil
	}
	out := make([]entity.CartItem, len(items))
	copy(out, items)

	return out
}
