// Package stock contiene los casos de uso del monitor de stock: alta/edición de
// ítems y servicios, listado filtrado, dashboard e intercambio de archivos.
package stock

import (
	"context"
	"strings"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	domstock "github.com/jhoicas/stockmonitor/internal/domain/stock"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

// StockUseCase casos de uso de la tabla de ítems.
type StockUseCase struct {
	repo repository.StockItemRepository
	log  *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockItemRepository, log *logger.Logger) *StockUseCase {
	return &StockUseCase{repo: repo, log: log.Named("stock")}
}

// Create da de alta un ítem o servicio. Un SKU repetido devuelve domain.ErrDuplicate.
func (uc *StockUseCase) Create(ctx context.Context, in dto.StockItemRequest) (*dto.StockItemResponse, error) {
	it, err := parseItem(in, true)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	uc.log.Info().Str("sku", it.SKU).Bool("service", it.IsService).Msg("ítem creado")
	out := ToItemResponse(it)
	return &out, nil
}

// Update reemplaza los datos del ítem identificado por sku. El SKU no se puede cambiar.
func (uc *StockUseCase) Update(ctx context.Context, sku string, in dto.StockItemRequest) (*dto.StockItemResponse, error) {
	sku = strings.TrimSpace(sku)
	if body := strings.TrimSpace(in.SKU); body != "" && body != sku {
		return nil, domain.NewValidationError("sku", "el SKU no se puede modificar")
	}
	in.SKU = sku
	it, err := parseItem(in, true)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	uc.log.Info().Str("sku", it.SKU).Msg("ítem actualizado")
	out := ToItemResponse(it)
	return &out, nil
}

// Delete elimina por SKU.
func (uc *StockUseCase) Delete(ctx context.Context, sku string) error {
	if err := uc.repo.Delete(ctx, strings.TrimSpace(sku)); err != nil {
		return err
	}
	uc.log.Info().Str("sku", sku).Msg("ítem eliminado")
	return nil
}

// Get devuelve un ítem con su clasificación.
func (uc *StockUseCase) Get(ctx context.Context, sku string) (*dto.StockItemResponse, error) {
	it, err := uc.repo.GetBySKU(ctx, strings.TrimSpace(sku))
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	out := ToItemResponse(it)
	return &out, nil
}

// List aplica vista, categoría, búsqueda y orden. Los contadores se calculan sobre todos
// los ítems, no sobre el subconjunto filtrado.
func (uc *StockUseCase) List(ctx context.Context, req dto.StockListRequest) (*dto.StockListResponse, error) {
	view, err := domstock.ParseView(req.View)
	if err != nil {
		return nil, err
	}
	field, err := domstock.ParseSortField(req.Sort)
	if err != nil {
		return nil, err
	}
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := domstock.Filter(all, domstock.Query{View: view, Category: req.Category, Search: req.Search})
	domstock.Sort(rows, field, req.Desc)

	out := &dto.StockListResponse{
		Items: make([]dto.StockItemResponse, 0, len(rows)),
		Stats: ToStatsResponse(domstock.Summarize(all)),
	}
	for _, it := range rows {
		out.Items = append(out.Items, ToItemResponse(it))
	}
	return out, nil
}

// Categories categorías distintas para el filtro.
func (uc *StockUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domstock.Categories(all), nil
}

// Snapshot construye la instantánea usada por exportaciones y reporte.
func Snapshot(items []*entity.StockItem) []ReportRow {
	rows := make([]ReportRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, ReportRow{Item: it, Classification: domstock.Classify(it)})
	}
	return rows
}
