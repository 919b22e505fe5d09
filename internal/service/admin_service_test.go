package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gas-delivery/internal/auth"
	"github.com/spec-kit/gas-delivery/internal/repository"
	"github.com/spec-kit/gas-delivery/internal/service"
)

func TestAdminStatsAndListings(t *testing.T) {
	users := repository.NewUserRepository()
	orders := repository.NewOrderRepository()
	accounts := service.NewAccountService(service.AccountDependencies{
		UserRepo: users,
		Verifier: auth.NewPlaintextVerifier(),
	})
	orderSvc := service.NewOrderService(service.OrderDependencies{OrderRepo: orders})
	admin := service.NewAdminService(service.AdminDependencies{UserRepo: users, OrderRepo: orders})
	ctx := context.Background()

	stats, err := admin.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.UserCount)
	assert.Zero(t, stats.OrderCount)

	alice, _, err := accounts.Register(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)
	bob, _, err := accounts.Register(ctx, "Bob", "5550100", "p2")
	require.NoError(t, err)

	_, err = orderSvc.Create(ctx, alice, map[string]any{"item": "cylinder"})
	require.NoError(t, err)
	_, err = orderSvc.Create(ctx, bob, map[string]any{"item": "regulator"})
	require.NoError(t, err)
	_, err = orderSvc.Create(ctx, bob, map[string]any{"item": "hose"})
	require.NoError(t, err)

	stats, err = admin.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.UserCount)
	assert.Equal(t, 3, stats.OrderCount)

	allUsers, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, allUsers, 2)
	assert.Equal(t, alice.ID, allUsers[0].ID)
	assert.Equal(t, bob.ID, allUsers[1].ID)

	// ListOrders is unfiltered by owner.
	allOrders, err := admin.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, allOrders, 3)
	owners := map[string]int{}
	for _, order := range allOrders {
		owners[order.UserID]++
	}
	assert.Equal(t, 1, owners[alice.ID])
	assert.Equal(t, 2, owners[bob.ID])
}
