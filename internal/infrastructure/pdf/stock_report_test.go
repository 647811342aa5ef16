package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	domstock "github.com/jhoicas/stockmonitor/internal/domain/stock"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/pdf"
)

func TestGenerateStockReport(t *testing.T) {
	items := []*entity.StockItem{
		{SKU: "A-1", Name: "Tornillo", Category: "Ferretería", Quantity: entity.IntPtr(1), MinLevel: entity.IntPtr(10), Unit: "pcs"},
		{SKU: "A-2", Name: "Tuerca", Category: "Ferretería", Quantity: entity.IntPtr(40), MinLevel: entity.IntPtr(10), Unit: "pcs"},
		{SKU: "S-1", Name: "Soporte", Category: "Servicios", IsService: true},
	}
	report := appstock.Report{
		GeneratedAt: time.Now(),
		Stats:       domstock.Summarize(items),
		Rows:        appstock.Snapshot(items),
	}

	b, err := pdf.NewMarotoStockReport("").GenerateStockReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
