package impl

import (
	"context"
	"sync"
	"testing"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_MutationRefreshesCache(t *testing.T) {
	ctx := context.Background()
	gateway := newFakeCartGateway()
	service := NewCartService(gateway, discardLogger())

	items, err := service.Add(ctx, entity.CartMutation{ID: 7, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	items, err = service.Update(ctx, entity.CartMutation{ID: 7, Quantity: 5})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	items, err = service.Remove(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_FailedMutationKeepsCache(t *testing.T) {
	ctx := context.Background()
	gateway := newFakeCartGateway()
	service := NewCartService(gateway, discardLogger())

	_, err := service.Add(ctx, entity.CartMutation{ID: 1, Quantity: 1})
	require.NoError(t, err)

	gateway.opErr = errors.New("backend down")

	items, err := service.Add(ctx, entity.CartMutation{ID: 2, Quantity: 1})
	require.Error(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Len(t, service.Items(), 1)
}

func TestCartService_ClearSkipsRefetch(t *testing.T) {
	ctx := context.Background()
	gateway := newFakeCartGateway()
	service := NewCartService(gateway, discardLogger())

	_, err := service.Add(ctx, entity.CartMutation{ID: 1, Quantity: 1})
	require.NoError(t, err)

	// A failing list after Clear proves no refetch happens.
	gateway.listErr = errors.New("backend down")

	require.NoError(t, service.Clear(ctx))
	assert.Empty(t, service.Items())
}

func TestCartService_ConcurrentMutationsSettle(t *testing.T) {
	ctx := context.Background()
	gateway := newFakeCartGateway()
	service := NewCartService(gateway, discardLogger())

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			_, err := service.Add(ctx, entity.CartMutation{ID: id, Quantity: 1})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// The cache must match the backend exactly once everything settled.
	backendItems, err := gateway.List(ctx)
	require.NoError(t, err)
	assert.Len(t, backendItems, 8)
	assert.ElementsMatch(t, backendItems, service.Items())
}

func TestCartService_AddMultiple(t *testing.T) {
	ctx := context.Background()
	service := NewCartService(newFakeCartGateway(), discardLogger())

	items, err := service.AddMultiple(ctx, []entity.CartMutation{
		{ID: 1, Quantity: 1},
		{ID: 2, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
