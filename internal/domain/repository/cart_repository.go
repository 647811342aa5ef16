package repository

import (
	"context"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// CartRepository define el puerto de persistencia del carrito.
type CartRepository interface {
	// AddOrMerge suma qty a la línea (accountID, productID) o la crea si no existe.
	AddOrMerge(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error)
	ListByAccount(ctx context.Context, accountID string) ([]*entity.CartLineView, error)
	GetLine(ctx context.Context, id string) (*entity.CartLine, error)
	DeleteLine(ctx context.Context, id string) error
	Clear(ctx context.Context, accountID string) error
}
