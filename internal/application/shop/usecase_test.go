package shop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/application/shop"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/memory"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

func newShop(t *testing.T) (*shop.CartUseCase, map[string]dto.ProductResponse) {
	t.Helper()
	store := memory.NewStore()
	uc := shop.NewCartUseCase(memory.NewProductRepository(store), memory.NewCartRepository(store), logger.Nop())
	n, err := uc.SeedSampleProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 8, n)

	list, err := uc.ListProducts(context.Background(), "")
	require.NoError(t, err)
	byName := make(map[string]dto.ProductResponse, len(list))
	for _, p := range list {
		byName[p.Name] = p
	}
	return uc, byName
}

func TestSeed_Idempotente(t *testing.T) {
	uc, _ := newShop(t)

	n, err := uc.SeedSampleProducts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	cats, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Accessories", "Electronics", "Furniture", "Stationery"}, cats)

	elec, err := uc.ListProducts(context.Background(), "Electronics")
	require.NoError(t, err)
	require.Len(t, elec, 2)
	assert.Equal(t, "Laptop", elec[0].Name)
}

func TestAddToCart_FusionaLineas(t *testing.T) {
	uc, products := newShop(t)
	ctx := context.Background()
	mouse := products["Wireless Mouse"]

	_, err := uc.AddToCart(ctx, "acc-1", dto.AddToCartRequest{ProductID: mouse.ID, Quantity: 3})
	require.NoError(t, err)
	line, err := uc.AddToCart(ctx, "acc-1", dto.AddToCartRequest{ProductID: mouse.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	cart, err := uc.GetCart(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, "149.95", cart.Lines[0].Total.StringFixed(2))
	assert.Equal(t, "149.95", cart.GrandTotal.StringFixed(2))
	assert.Equal(t, 5, cart.ItemCount)
}

func TestAddToCart_Errores(t *testing.T) {
	uc, products := newShop(t)
	ctx := context.Background()
	laptop := products["Laptop"]

	_, err := uc.AddToCart(ctx, "acc-1", dto.AddToCartRequest{ProductID: laptop.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddToCart(ctx, "acc-1", dto.AddToCartRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.AddToCart(ctx, "acc-1", dto.AddToCartRequest{ProductID: laptop.ID, Quantity: 16})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualError(t, err, "Only 15 items available in stock")

	cart, err := uc.GetCart(ctx, "acc-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestRemoveLineYClear(t *testing.T) {
	uc, products := newShop(t)
	ctx := context.Background()

	a, err := uc.AddToCart(ctx, "acc-1", dto.AddToCartRequest{ProductID: products["Pen Set"].ID, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "acc-1", dto.AddToCartRequest{ProductID: products["Backpack"].ID, Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "acc-2", dto.AddToCartRequest{ProductID: products["Backpack"].ID, Quantity: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.RemoveLine(ctx, "acc-2", a.ID), domain.ErrNotFound, "línea ajena")
	require.NoError(t, uc.RemoveLine(ctx, "acc-1", a.ID))

	cart, err := uc.GetCart(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Backpack", cart.Lines[0].ProductName)

	require.NoError(t, uc.Clear(ctx, "acc-1"))
	cart, err = uc.GetCart(ctx, "acc-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	other, err := uc.GetCart(ctx, "acc-2")
	require.NoError(t, err)
	assert.Len(t, other.Lines, 1)
}
