package repository

import (
	"context"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia del catálogo de la tienda (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List ordena por categoría y nombre; category vacío = todas.
	List(ctx context.Context, category string) ([]*entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
