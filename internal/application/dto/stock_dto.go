package dto

import "github.com/shopspring/decimal"

// StockItemRequest entrada del formulario de ítem/servicio. En PUT el SKU viaja en la ruta.
// Los campos numéricos aceptan número o texto; los valores no numéricos son error de validación.
type StockItemRequest struct {
	SKU         string     `json:"sku" validate:"omitempty,max=100"`
	Name        string     `json:"name" validate:"required,max=255"`
	Category    string     `json:"category" validate:"required,max=255"`
	Subcategory string     `json:"subcategory" validate:"required,max=255"`
	Quantity    NumberText `json:"quantity" swaggertype:"string"`
	MinLevel    NumberText `json:"min_level" swaggertype:"string"`
	Unit        string     `json:"unit" validate:"omitempty,oneof=pcs kg ltr box"`
	Price       NumberText `json:"price" swaggertype:"string"`
	Description string     `json:"description"`
	IsService   bool       `json:"is_service"`
	Duration    string     `json:"duration" validate:"max=100"`
	ServiceCost NumberText `json:"service_cost" swaggertype:"string"`
}

// StockItemResponse fila de la tabla con su clasificación.
type StockItemResponse struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Quantity    *int            `json:"quantity"`
	MinLevel    *int            `json:"min_level"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	IsService   bool            `json:"is_service"`
	Duration    string          `json:"duration"`
	ServiceCost decimal.Decimal `json:"service_cost"`
	Status      string          `json:"status"`
	Severity    string          `json:"severity"`
	Percentage  float64         `json:"percentage"`
	// PercentageApplicable false para servicios y datos incompletos (no se dibuja barra).
	PercentageApplicable bool `json:"percentage_applicable"`
}

// StockListRequest parámetros de consulta del listado.
type StockListRequest struct {
	View     string `query:"view"`
	Category string `query:"category"`
	Search   string `query:"q"`
	Sort     string `query:"sort"`
	Desc     bool   `query:"desc"`
}

// StockListResponse filas filtradas más los contadores globales.
type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
	Stats StockStatsResponse  `json:"stats"`
}

// StockStatsResponse tarjetas del dashboard y banner de alerta.
type StockStatsResponse struct {
	Total    int    `json:"total"`
	Low      int    `json:"low"`
	Critical int    `json:"critical"`
	Healthy  int    `json:"healthy"`
	Services int    `json:"services"`
	Unknown  int    `json:"unknown"`
	Alert    string `json:"alert,omitempty"`
}

// CategoryBreakdown contadores por categoría.
type CategoryBreakdown struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Low      int    `json:"low"`
	Critical int    `json:"critical"`
}

// StockDashboardResponse resumen del monitor: contadores, desglose y los ítems más urgentes.
type StockDashboardResponse struct {
	Stats      StockStatsResponse  `json:"stats"`
	Categories []CategoryBreakdown `json:"categories"`
	Urgent     []StockItemResponse `json:"urgent"`
}

// ImportResult resumen de una importación de archivo delimitado.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}
