// Package shop contiene los casos de uso de la consola de clientes: catálogo y carrito.
package shop

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

// CartUseCase catálogo y carrito de un cliente.
type CartUseCase struct {
	products repository.ProductRepository
	cart     repository.CartRepository
	log      *logger.Logger
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(products repository.ProductRepository, cart repository.CartRepository, log *logger.Logger) *CartUseCase {
	return &CartUseCase{products: products, cart: cart, log: log.Named("shop")}
}

// ListProducts catálogo ordenado por categoría y nombre; category vacío = todas.
func (uc *CartUseCase) ListProducts(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Categories categorías del catálogo.
func (uc *CartUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.products.Categories(ctx)
}

// AddToCart agrega qty unidades del producto. Si ya hay línea para ese producto se suman.
// La cantidad pedida se compara con el stock disponible; el total acumulado en el carrito no.
func (uc *CartUseCase) AddToCart(ctx context.Context, accountID string, in dto.AddToCartRequest) (*dto.CartLineResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "debe ser mayor que cero")
	}
	p, err := uc.products.GetByID(ctx, strings.TrimSpace(in.ProductID))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > p.Stock {
		return nil, &domain.InsufficientStockError{Available: p.Stock}
	}

	line, err := uc.cart.AddOrMerge(ctx, &entity.CartLine{
		ID:        uuid.New().String(),
		AccountID: accountID,
		ProductID: p.ID,
		Quantity:  in.Quantity,
		AddedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("account", accountID).Str("product", p.ID).Int("qty", line.Quantity).Msg("carrito actualizado")
	out := toLineResponse(entity.CartLineView{CartLine: *line, ProductName: p.Name, UnitPrice: p.Price})
	return &out, nil
}

// GetCart líneas del carrito con total por línea y total general.
func (uc *CartUseCase) GetCart(ctx context.Context, accountID string) (*dto.CartResponse, error) {
	lines, err := uc.cart.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := &dto.CartResponse{Lines: make([]dto.CartLineResponse, 0, len(lines)), GrandTotal: decimal.Zero}
	for _, l := range lines {
		r := toLineResponse(*l)
		out.Lines = append(out.Lines, r)
		out.ItemCount += r.Quantity
		out.GrandTotal = out.GrandTotal.Add(r.Total)
	}
	return out, nil
}

// RemoveLine elimina una línea. Una línea de otra cuenta se trata como inexistente.
func (uc *CartUseCase) RemoveLine(ctx context.Context, accountID, lineID string) error {
	line, err := uc.cart.GetLine(ctx, lineID)
	if err != nil {
		return err
	}
	if line == nil || line.AccountID != accountID {
		return domain.ErrNotFound
	}
	return uc.cart.DeleteLine(ctx, lineID)
}

// Clear vacía el carrito de la cuenta.
func (uc *CartUseCase) Clear(ctx context.Context, accountID string) error {
	return uc.cart.Clear(ctx, accountID)
}

// sampleProducts catálogo inicial cuando la tabla está vacía.
var sampleProducts = []struct {
	name, description, price string
	stock                    int
	category                 string
}{
	{"Laptop", "High-performance laptop for work and gaming", "999.99", 15, "Electronics"},
	{"Wireless Mouse", "Ergonomic wireless mouse", "29.99", 50, "Electronics"},
	{"Office Chair", "Comfortable ergonomic office chair", "199.99", 20, "Furniture"},
	{"Desk Lamp", "LED desk lamp with adjustable brightness", "39.99", 35, "Furniture"},
	{"Notebook Set", "Set of 5 premium notebooks", "14.99", 100, "Stationery"},
	{"Pen Set", "Professional pen set", "24.99", 75, "Stationery"},
	{"Water Bottle", "Insulated stainless steel water bottle", "19.99", 60, "Accessories"},
	{"Backpack", "Laptop backpack with USB charging port", "49.99", 40, "Accessories"},
}

// SeedSampleProducts carga el catálogo de ejemplo si no hay productos. Devuelve cuántos creó.
func (uc *CartUseCase) SeedSampleProducts(ctx context.Context) (int, error) {
	n, err := uc.products.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	now := time.Now()
	for _, s := range sampleProducts {
		if err := uc.products.Create(ctx, &entity.Product{
			ID:          uuid.New().String(),
			Name:        s.name,
			Description: s.description,
			Price:       decimal.RequireFromString(s.price),
			Stock:       s.stock,
			Category:    s.category,
			CreatedAt:   now,
		}); err != nil {
			return 0, err
		}
	}
	uc.log.Info().Int("count", len(sampleProducts)).Msg("catálogo de ejemplo cargado")
	return len(sampleProducts), nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

func toLineResponse(v entity.CartLineView) dto.CartLineResponse {
	return dto.CartLineResponse{
		ID:          v.ID,
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		UnitPrice:   v.UnitPrice,
		Quantity:    v.Quantity,
		Total:       v.Total(),
		AddedAt:     v.AddedAt,
	}
}
