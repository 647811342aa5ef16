package entity

import "github.com/shopspring/decimal"

// Unidades ofrecidas por el formulario de ítems.
var StockUnits = []string{"pcs", "kg", "ltr", "box"}

// DefaultUnit unidad por defecto de un ítem físico.
const DefaultUnit = "pcs"

// StockItem ítem o servicio del monitor de stock. SKU es la clave e inmutable tras crearse.
// Quantity y MinLevel son opcionales: sin ellos el estado no se puede calcular con exactitud.
type StockItem struct {
	SKU         string
	Name        string
	Category    string
	Subcategory string
	Quantity    *int
	MinLevel    *int
	Unit        string
	Price       decimal.Decimal
	Description string
	IsService   bool
	Duration    string
	ServiceCost decimal.Decimal
}

// NormalizeMode limpia los campos que no aplican al modo actual:
// un servicio no tiene cantidad, mínimo ni unidad; un ítem físico no tiene duración ni costo de servicio.
func (s *StockItem) NormalizeMode() {
	if s.IsService {
		s.Quantity = nil
		s.MinLevel = nil
		s.Unit = ""
		return
	}
	s.Duration = ""
	s.ServiceCost = decimal.Zero
	if s.Unit == "" {
		s.Unit = DefaultUnit
	}
}

// IntPtr devuelve un puntero al entero (atajo para literales).
func IntPtr(v int) *int { return &v }
