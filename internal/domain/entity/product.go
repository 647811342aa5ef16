package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo de la tienda. Stock es la cantidad disponible para el carrito.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	CreatedAt   time.Time
}
