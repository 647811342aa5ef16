package stock

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// View vista solicitada del listado.
type View string

const (
	ViewAll      View = "all"
	ViewLow      View = "low"
	ViewCritical View = "critical"
)

// ParseView acepta "", all, low o critical.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "", ViewAll:
		return ViewAll, nil
	case ViewLow, ViewCritical:
		return v, nil
	}
	return "", domain.NewValidationError("view", "vista inválida (all|low|critical)")
}

// Query criterios de filtrado. Category vacío = todas; Search vacío = sin búsqueda.
type Query struct {
	View     View
	Category string
	Search   string
}

// Filter devuelve los ítems que cumplen la consulta, en el orden original.
func Filter(items []*entity.StockItem, q Query) []*entity.StockItem {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))

	out := make([]*entity.StockItem, 0, len(items))
	for _, it := range items {
		if !matchesView(it, q.View) {
			continue
		}
		if q.Category != "" && it.Category != q.Category {
			continue
		}
		if needle != "" && !matchesSearch(fold, it, needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesView(it *entity.StockItem, v View) bool {
	switch v {
	case ViewLow:
		return IsLow(it)
	case ViewCritical:
		return IsCritical(it)
	case ViewAll, "":
		return true
	}
	return true
}

func matchesSearch(fold cases.Caser, it *entity.StockItem, needle string) bool {
	for _, field := range []string{it.Name, it.SKU, it.Category} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

// Categories devuelve las categorías distintas ordenadas alfabéticamente.
func Categories(items []*entity.StockItem) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, it := range items {
		if _, ok := seen[it.Category]; ok || it.Category == "" {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out
}

// SortField columnas por las que se puede ordenar la tabla.
type SortField string

const (
	SortName        SortField = "name"
	SortSKU         SortField = "sku"
	SortCategory    SortField = "category"
	SortSubcategory SortField = "subcategory"
	SortQuantity    SortField = "quantity"
	SortMinLevel    SortField = "min_level"
	SortPrice       SortField = "price"
	SortStatus      SortField = "status"
	SortPercentage  SortField = "percentage"
)

// ParseSortField acepta un nombre de columna; vacío significa sin ordenar.
func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "", SortName, SortSKU, SortCategory, SortSubcategory, SortQuantity,
		SortMinLevel, SortPrice, SortStatus, SortPercentage:
		return f, nil
	}
	return "", domain.NewValidationError("sort", "columna de orden inválida")
}

// severidad para ordenar por estado: lo más urgente primero en orden ascendente.
var statusRank = map[Status]int{
	StatusCritical: 0,
	StatusLow:      1,
	StatusUnknown:  2,
	StatusGood:     3,
	StatusService:  4,
}

// Sort ordena in situ de forma estable. Los valores ausentes van al final en orden ascendente.
func Sort(items []*entity.StockItem, field SortField, desc bool) {
	if field == "" {
		return
	}
	less := lessFunc(field)
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func lessFunc(field SortField) func(a, b *entity.StockItem) bool {
	switch field {
	case SortSKU:
		return func(a, b *entity.StockItem) bool { return a.SKU < b.SKU }
	case SortCategory:
		return func(a, b *entity.StockItem) bool { return a.Category < b.Category }
	case SortSubcategory:
		return func(a, b *entity.StockItem) bool { return a.Subcategory < b.Subcategory }
	case SortQuantity:
		return func(a, b *entity.StockItem) bool { return lessOptional(a.Quantity, b.Quantity) }
	case SortMinLevel:
		return func(a, b *entity.StockItem) bool { return lessOptional(a.MinLevel, b.MinLevel) }
	case SortPrice:
		return func(a, b *entity.StockItem) bool { return a.Price.LessThan(b.Price) }
	case SortStatus:
		return func(a, b *entity.StockItem) bool {
			return statusRank[Classify(a).Status] < statusRank[Classify(b).Status]
		}
	case SortPercentage:
		return func(a, b *entity.StockItem) bool { return Classify(a).Percentage < Classify(b).Percentage }
	case SortName, "":
	}
	return func(a, b *entity.StockItem) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
}

func lessOptional(a, b *int) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}
