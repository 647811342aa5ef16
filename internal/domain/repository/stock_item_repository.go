package repository

import (
	"context"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem, con SKU como clave.
type StockItemRepository interface {
	// Create devuelve domain.ErrDuplicate si el SKU ya existe.
	Create(ctx context.Context, item *entity.StockItem) error
	// CreateIfAbsent inserta solo si el SKU no existe; inserted=false si ya estaba.
	CreateIfAbsent(ctx context.Context, item *entity.StockItem) (inserted bool, err error)
	// Update reemplaza todos los campos salvo el SKU. domain.ErrNotFound si no existe.
	Update(ctx context.Context, item *entity.StockItem) error
	// Delete elimina por SKU. domain.ErrNotFound si no existe.
	Delete(ctx context.Context, sku string) error
	GetBySKU(ctx context.Context, sku string) (*entity.StockItem, error)
	ListAll(ctx context.Context) ([]*entity.StockItem, error)
}
