package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/stock"
)

func item(sku string, qty, min *int) *entity.StockItem {
	return &entity.StockItem{SKU: sku, Name: "Item " + sku, Category: "General", Quantity: qty, MinLevel: min}
}

func service(sku string) *entity.StockItem {
	return &entity.StockItem{SKU: sku, Name: "Servicio " + sku, Category: "Servicios", IsService: true}
}

var p = entity.IntPtr

// ──────────────────────────────────────────────────────────────────────────────
// Ejemplos de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_RatioMedioEsCritico(t *testing.T) {
	c := stock.Classify(item("A", p(5), p(10)))

	assert.Equal(t, stock.StatusCritical, c.Status)
	assert.Equal(t, stock.SeverityCritical, c.Severity)
	assert.InDelta(t, 50.0, c.Percentage, 1e-9)
	assert.True(t, c.Computable)
}

func TestClassify_SobreElMinimoEsGoodYSeTopaEn100(t *testing.T) {
	c := stock.Classify(item("B", p(11), p(10)))

	assert.Equal(t, stock.StatusGood, c.Status)
	assert.Equal(t, stock.SeverityGood, c.Severity)
	assert.InDelta(t, 100.0, c.Percentage, 1e-9)
}

func TestClassify_MinimoCeroEsUnknown(t *testing.T) {
	c := stock.Classify(item("C", p(0), p(0)))

	assert.Equal(t, stock.StatusUnknown, c.Status)
	assert.Equal(t, stock.SeverityLow, c.Severity)
	assert.Zero(t, c.Percentage)
	assert.False(t, c.Computable)
}

func TestClassify_LimiteLow(t *testing.T) {
	c := stock.Classify(item("D", p(10), p(10)))
	assert.Equal(t, stock.StatusLow, c.Status, "ratio 1.0 es LOW")
	assert.InDelta(t, 100.0, c.Percentage, 1e-9)

	c = stock.Classify(item("E", p(6), p(10)))
	assert.Equal(t, stock.StatusLow, c.Status, "ratio 0.6 es LOW")
	assert.Equal(t, stock.SeverityLow, c.Severity)
}

func TestClassify_DatosAusentesEsUnknown(t *testing.T) {
	for _, it := range []*entity.StockItem{
		item("F", nil, p(10)),
		item("G", p(3), nil),
		item("H", nil, nil),
		item("I", p(3), p(-2)),
	} {
		c := stock.Classify(it)
		assert.Equal(t, stock.StatusUnknown, c.Status, "sku %s", it.SKU)
		assert.Zero(t, c.Percentage)
	}
}

// Un servicio siempre es SERVICE aunque sus campos de stock sean absurdos.
func TestClassify_ServicioIgnoraCantidades(t *testing.T) {
	variants := []*entity.StockItem{
		service("S1"),
		{SKU: "S2", IsService: true, Quantity: p(0), MinLevel: p(100)},
		{SKU: "S3", IsService: true, Quantity: p(-5), MinLevel: p(0)},
		{SKU: "S4", IsService: true, MinLevel: p(-1)},
	}
	for _, it := range variants {
		c := stock.Classify(it)
		assert.Equal(t, stock.StatusService, c.Status, "sku %s", it.SKU)
		assert.Equal(t, stock.SeverityGood, c.Severity)
	}
}

// Al subir la cantidad con el mínimo fijo, el estado nunca empeora.
func TestClassify_MonotonoEnCantidad(t *testing.T) {
	rank := map[stock.Status]int{stock.StatusCritical: 0, stock.StatusLow: 1, stock.StatusGood: 2}
	for _, min := range []int{1, 2, 3, 7, 10, 33, 100} {
		prev := -1
		for q := 0; q <= 3*min; q++ {
			st := stock.Classify(item("M", p(q), p(min))).Status
			r, ok := rank[st]
			require.True(t, ok, "estado inesperado %s", st)
			assert.GreaterOrEqual(t, r, prev, "min=%d q=%d", min, q)
			prev = r
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard: los contadores salen de la misma clasificación que las filas
// ──────────────────────────────────────────────────────────────────────────────

func sampleItems() []*entity.StockItem {
	return []*entity.StockItem{
		item("A", p(5), p(10)),  // CRITICAL
		item("B", p(11), p(10)), // GOOD
		item("C", p(0), p(0)),   // UNKNOWN
		item("D", p(8), p(10)),  // LOW
		service("S"),            // SERVICE
		item("E", nil, p(4)),    // UNKNOWN
		item("F", p(0), p(3)),   // CRITICAL
		item("G", p(2), p(3)),   // LOW
	}
}

func TestSummarize_CoincideConClassify(t *testing.T) {
	items := sampleItems()
	s := stock.Summarize(items)

	var low, critical int
	for _, it := range items {
		switch stock.Classify(it).Status {
		case stock.StatusLow:
			low++
		case stock.StatusCritical:
			critical++
			low++
		}
	}
	assert.Equal(t, len(items), s.Total)
	assert.Equal(t, low, s.Low)
	assert.Equal(t, critical, s.Critical)
	assert.Equal(t, s.Total-s.Low, s.Healthy)
	assert.Equal(t, 1, s.Services)
	assert.Equal(t, 2, s.Unknown)

	assert.Equal(t, 4, s.Low)
	assert.Equal(t, 2, s.Critical)
}

func TestSummarize_FiltrosYContadoresNoDivergen(t *testing.T) {
	items := sampleItems()
	s := stock.Summarize(items)

	assert.Len(t, stock.Filter(items, stock.Query{View: stock.ViewLow}), s.Low)
	assert.Len(t, stock.Filter(items, stock.Query{View: stock.ViewCritical}), s.Critical)
}

func TestStats_Alert(t *testing.T) {
	assert.Empty(t, stock.Stats{Total: 3}.Alert())
	assert.Equal(t, "CRITICAL ALERT: 2 item(s) at critical levels!", stock.Stats{Critical: 2}.Alert())
}

func TestSort_PorPrecioDescendente(t *testing.T) {
	items := []*entity.StockItem{
		{SKU: "a", Price: decimal.NewFromInt(5)},
		{SKU: "b", Price: decimal.NewFromInt(20)},
		{SKU: "c", Price: decimal.NewFromInt(10)},
	}
	stock.Sort(items, stock.SortPrice, true)

	assert.Equal(t, []string{"b", "c", "a"}, skus(items))
}

func TestSort_PorEstadoPoneCriticosPrimero(t *testing.T) {
	items := sampleItems()
	stock.Sort(items, stock.SortStatus, false)

	assert.Equal(t, stock.StatusCritical, stock.Classify(items[0]).Status)
	assert.Equal(t, stock.StatusCritical, stock.Classify(items[1]).Status)
	assert.Equal(t, stock.StatusService, stock.Classify(items[len(items)-1]).Status)
}

func TestSort_CantidadAusenteAlFinal(t *testing.T) {
	items := []*entity.StockItem{item("x", nil, p(1)), item("y", p(3), p(1)), item("z", p(1), p(1))}
	stock.Sort(items, stock.SortQuantity, false)

	assert.Equal(t, []string{"z", "y", "x"}, skus(items))
}

func skus(items []*entity.StockItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SKU)
	}
	return out
}
