package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine línea del carrito; una sola por par (cuenta, producto).
type CartLine struct {
	ID        string
	AccountID string
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// CartLineView línea del carrito unida con los datos del producto.
type CartLineView struct {
	CartLine
	ProductName string
	UnitPrice   decimal.Decimal
}

// Total precio unitario por cantidad.
func (v CartLineView) Total() decimal.Decimal {
	return v.UnitPrice.Mul(decimal.NewFromInt(int64(v.Quantity)))
}
