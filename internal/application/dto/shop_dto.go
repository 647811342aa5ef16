package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AddToCartRequest producto y cantidad a agregar.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartLineResponse línea del carrito con totales.
type CartLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	AddedAt     time.Time       `json:"added_at"`
}

// CartResponse carrito completo.
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	ItemCount  int                `json:"item_count"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
}
