package stock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	domstock "github.com/jhoicas/stockmonitor/internal/domain/stock"
)

// Topes de las columnas de stock_items.
const (
	maxSKULen      = 100
	maxTextLen     = 255
	maxDurationLen = 100
)

// maxMoney primer valor que no cabe en NUMERIC(12, 2).
var maxMoney = decimal.New(1, 10)

// parseItem convierte la entrada del formulario en entidad.
// requireLevels exige cantidad y mínimo en modo ítem; la importación los deja opcionales
// y la fila queda como UNKNOWN.
func parseItem(in dto.StockItemRequest, requireLevels bool) (*entity.StockItem, error) {
	it := &entity.StockItem{
		SKU:         strings.TrimSpace(in.SKU),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Subcategory: strings.TrimSpace(in.Subcategory),
		Unit:        strings.ToLower(strings.TrimSpace(in.Unit)),
		Description: strings.TrimSpace(in.Description),
		IsService:   in.IsService,
		Duration:    strings.TrimSpace(in.Duration),
	}
	switch {
	case it.SKU == "":
		return nil, domain.NewValidationError("sku", "requerido")
	case it.Name == "":
		return nil, domain.NewValidationError("name", "requerido")
	case it.Category == "":
		return nil, domain.NewValidationError("category", "requerido")
	case it.Subcategory == "":
		return nil, domain.NewValidationError("subcategory", "requerido")
	}
	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"sku", it.SKU, maxSKULen},
		{"name", it.Name, maxTextLen},
		{"category", it.Category, maxTextLen},
		{"subcategory", it.Subcategory, maxTextLen},
		{"duration", it.Duration, maxDurationLen},
	} {
		if utf8.RuneCountInString(f.value) > f.max {
			return nil, domain.NewValidationError(f.name, fmt.Sprintf("máximo %d caracteres", f.max))
		}
	}

	var err error
	if it.Price, err = parseMoney("price", in.Price.String()); err != nil {
		return nil, err
	}

	if it.IsService {
		if it.ServiceCost, err = parseMoney("service_cost", in.ServiceCost.String()); err != nil {
			return nil, err
		}
	} else {
		if it.Quantity, err = parseLevel("quantity", in.Quantity.String(), requireLevels); err != nil {
			return nil, err
		}
		if it.MinLevel, err = parseLevel("min_level", in.MinLevel.String(), requireLevels); err != nil {
			return nil, err
		}
		if it.Unit != "" && !validUnit(it.Unit) {
			return nil, domain.NewValidationError("unit", "unidad inválida (pcs|kg|ltr|box)")
		}
	}
	it.NormalizeMode()
	return it, nil
}

func parseLevel(field, raw string, required bool) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return nil, domain.NewValidationError(field, "requerido")
		}
		return nil, nil
	}
	// La columna es INTEGER: se parsea a 32 bits.
	n, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return nil, domain.NewValidationError(field, "fuera de rango")
	}
	if err != nil {
		return nil, domain.NewValidationError(field, "debe ser un número entero")
	}
	if n < 0 {
		return nil, domain.NewValidationError(field, "no puede ser negativo")
	}
	v := int(n)
	return &v, nil
}

func parseMoney(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, "debe ser numérico")
	}
	if d.IsNegative() {
		return decimal.Zero, domain.NewValidationError(field, "no puede ser negativo")
	}
	d = d.Round(2)
	if d.GreaterThanOrEqual(maxMoney) {
		return decimal.Zero, domain.NewValidationError(field, "fuera de rango")
	}
	return d, nil
}

func validUnit(u string) bool {
	for _, s := range entity.StockUnits {
		if s == u {
			return true
		}
	}
	return false
}

// ToItemResponse fila de la tabla: el ítem más su clasificación.
func ToItemResponse(it *entity.StockItem) dto.StockItemResponse {
	c := domstock.Classify(it)
	return dto.StockItemResponse{
		SKU:                  it.SKU,
		Name:                 it.Name,
		Category:             it.Category,
		Subcategory:          it.Subcategory,
		Quantity:             it.Quantity,
		MinLevel:             it.MinLevel,
		Unit:                 it.Unit,
		Price:                it.Price,
		Description:          it.Description,
		IsService:            it.IsService,
		Duration:             it.Duration,
		ServiceCost:          it.ServiceCost,
		Status:               string(c.Status),
		Severity:             string(c.Severity),
		Percentage:           c.Percentage,
		PercentageApplicable: c.Computable,
	}
}

// ToStatsResponse contadores del dashboard con el texto del banner.
func ToStatsResponse(s domstock.Stats) dto.StockStatsResponse {
	return dto.StockStatsResponse{
		Total:    s.Total,
		Low:      s.Low,
		Critical: s.Critical,
		Healthy:  s.Healthy,
		Services: s.Services,
		Unknown:  s.Unknown,
		Alert:    s.Alert(),
	}
}

// ToItemRequest inversa de parseItem, usada por la exportación CSV.
func ToItemRequest(it *entity.StockItem) dto.StockItemRequest {
	req := dto.StockItemRequest{
		SKU:         it.SKU,
		Name:        it.Name,
		Category:    it.Category,
		Subcategory: it.Subcategory,
		Unit:        it.Unit,
		Price:       dto.NumberText(it.Price.StringFixed(2)),
		Description: it.Description,
		IsService:   it.IsService,
		Duration:    it.Duration,
	}
	if it.Quantity != nil {
		req.Quantity = dto.NumberText(strconv.Itoa(*it.Quantity))
	}
	if it.MinLevel != nil {
		req.MinLevel = dto.NumberText(strconv.Itoa(*it.MinLevel))
	}
	if it.IsService {
		req.ServiceCost = dto.NumberText(it.ServiceCost.StringFixed(2))
	}
	return req
}
