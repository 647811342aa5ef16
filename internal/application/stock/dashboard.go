package stock

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	domstock "github.com/jhoicas/stockmonitor/internal/domain/stock"
)

const dashboardUrgentItems = 5 // ítems en el widget "más urgentes"

// DashboardUseCase genera el resumen del monitor: tarjetas, desglose por categoría
// y los ítems más urgentes.
//
// Fuente de datos: StockItemRepository (solo lectura). Toda clasificación pasa por
// domstock.Classify, igual que las filas de la tabla.
type DashboardUseCase struct {
	repo repository.StockItemRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.StockItemRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary construye el StockDashboardResponse.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.StockDashboardResponse, error) {
	items, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar ítems: %w", err)
	}

	return &dto.StockDashboardResponse{
		Stats:      ToStatsResponse(domstock.Summarize(items)),
		Categories: breakdown(items),
		Urgent:     urgent(items, dashboardUrgentItems),
	}, nil
}

// breakdown contadores por categoría, ordenados por nombre.
func breakdown(items []*entity.StockItem) []dto.CategoryBreakdown {
	byCat := make(map[string]*dto.CategoryBreakdown)
	for _, it := range items {
		b, ok := byCat[it.Category]
		if !ok {
			b = &dto.CategoryBreakdown{Category: it.Category}
			byCat[it.Category] = b
		}
		b.Total++
		switch domstock.Classify(it).Status {
		case domstock.StatusCritical:
			b.Critical++
			b.Low++
		case domstock.StatusLow:
			b.Low++
		case domstock.StatusGood, domstock.StatusService, domstock.StatusUnknown:
		}
	}
	out := make([]dto.CategoryBreakdown, 0, len(byCat))
	for _, b := range byCat {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// urgent ítems en LOW o CRITICAL, menor porcentaje primero.
func urgent(items []*entity.StockItem, limit int) []dto.StockItemResponse {
	low := make([]*entity.StockItem, 0)
	for _, it := range items {
		if domstock.IsLow(it) {
			low = append(low, it)
		}
	}
	domstock.Sort(low, domstock.SortPercentage, false)
	if len(low) > limit {
		low = low[:limit]
	}
	out := make([]dto.StockItemResponse, 0, len(low))
	for _, it := range low {
		out = append(out, ToItemResponse(it))
	}
	return out
}
