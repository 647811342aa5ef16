// Package stock clasifica la salud de stock de cada ítem y deriva de esa misma
// clasificación los filtros, los contadores del dashboard y la alerta crítica.
//
// Umbrales sobre ratio = cantidad / mínimo:
//
//	servicio            -> SERVICE  (good)
//	sin datos o min<=0  -> UNKNOWN  (low)
//	ratio <= 0.5        -> CRITICAL (critical)
//	0.5 < ratio <= 1.0  -> LOW      (low)
//	ratio > 1.0         -> GOOD     (good)
package stock

import (
	"fmt"
	"math"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// Status etiqueta de estado mostrada por fila.
type Status string

const (
	StatusService  Status = "SERVICE"
	StatusUnknown  Status = "UNKNOWN"
	StatusCritical Status = "CRITICAL"
	StatusLow      Status = "LOW"
	StatusGood     Status = "GOOD"
)

// Severity etiqueta de severidad (color de la fila).
type Severity string

const (
	SeverityGood     Severity = "good"
	SeverityLow      Severity = "low"
	SeverityCritical Severity = "critical"
)

// Classification resultado de clasificar un ítem.
// Percentage solo tiene sentido cuando Computable es true.
type Classification struct {
	Status     Status
	Severity   Severity
	Percentage float64
	Computable bool
}

// Classify es la única fuente de los umbrales de stock.
func Classify(item *entity.StockItem) Classification {
	if item.IsService {
		return Classification{Status: StatusService, Severity: SeverityGood, Percentage: 100}
	}
	if item.Quantity == nil || item.MinLevel == nil || *item.MinLevel <= 0 {
		return Classification{Status: StatusUnknown, Severity: SeverityLow}
	}
	q, m := int64(*item.Quantity), int64(*item.MinLevel)

	c := Classification{
		Percentage: math.Min(float64(q)*100/float64(m), 100),
		Computable: true,
	}
	// Comparaciones enteras: 2q <= m equivale a ratio <= 0.5 sin error de redondeo.
	switch {
	case 2*q <= m:
		c.Status, c.Severity = StatusCritical, SeverityCritical
	case q <= m:
		c.Status, c.Severity = StatusLow, SeverityLow
	default:
		c.Status, c.Severity = StatusGood, SeverityGood
	}
	if c.Percentage < 0 {
		c.Percentage = 0
	}
	return c
}

// IsLow ítems en LOW o CRITICAL (cantidad <= mínimo).
func IsLow(item *entity.StockItem) bool {
	switch Classify(item).Status {
	case StatusLow, StatusCritical:
		return true
	case StatusGood, StatusService, StatusUnknown:
		return false
	}
	return false
}

// IsCritical ítems en CRITICAL (cantidad <= mínimo * 0.5).
func IsCritical(item *entity.StockItem) bool {
	return Classify(item).Status == StatusCritical
}

// Stats contadores del dashboard.
type Stats struct {
	Total    int
	Low      int
	Critical int
	Healthy  int
	Services int
	Unknown  int
}

// Summarize calcula los contadores a partir de Classify, igual que las filas.
func Summarize(items []*entity.StockItem) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		switch Classify(it).Status {
		case StatusCritical:
			s.Critical++
			s.Low++
		case StatusLow:
			s.Low++
		case StatusService:
			s.Services++
		case StatusUnknown:
			s.Unknown++
		case StatusGood:
		}
	}
	s.Healthy = s.Total - s.Low
	return s
}

// Alert texto del banner de alerta; vacío si no hay ítems críticos.
func (s Stats) Alert() string {
	if s.Critical == 0 {
		return ""
	}
	return fmt.Sprintf("CRITICAL ALERT: %d item(s) at critical levels!", s.Critical)
}
