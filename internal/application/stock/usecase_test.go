package stock_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/export"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/memory"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

func item(sku, name, category, qty, min string) dto.StockItemRequest {
	return dto.StockItemRequest{
		SKU: sku, Name: name, Category: category, Subcategory: "General",
		Quantity: dto.NumberText(qty), MinLevel: dto.NumberText(min), Price: "10",
	}
}

func newStock(t *testing.T) (*appstock.StockUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return appstock.NewStockUseCase(memory.NewStockItemRepository(store), logger.Nop()), store
}

func TestCreate_ClasificaYRechazaDuplicado(t *testing.T) {
	uc, _ := newStock(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, item("A-1", "Tornillo", "Ferretería", "5", "10"))
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL", out.Status)
	assert.Equal(t, "critical", out.Severity)
	assert.InDelta(t, 50.0, out.Percentage, 0.001)
	assert.Equal(t, "pcs", out.Unit)

	_, err = uc.Create(ctx, item("A-1", "Otro", "Ferretería", "1", "1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _ := newStock(t)
	ctx := context.Background()

	cases := map[string]dto.StockItemRequest{
		"sin nombre":         item("B-1", "", "X", "1", "1"),
		"sin sku":            item("", "N", "X", "1", "1"),
		"cantidad no numér.": item("B-2", "N", "X", "abc", "1"),
		"mínimo ausente":     item("B-3", "N", "X", "1", ""),
		"cantidad negativa":  item("B-4", "N", "X", "-1", "1"),
		"unidad desconocida": func() dto.StockItemRequest { r := item("B-5", "N", "X", "1", "1"); r.Unit = "m3"; return r }(),
		"precio no numérico": func() dto.StockItemRequest { r := item("B-6", "N", "X", "1", "1"); r.Price = "diez"; return r }(),
		"sin subcategoría":   func() dto.StockItemRequest { r := item("B-7", "N", "X", "1", "1"); r.Subcategory = ""; return r }(),
		"nombre muy largo":   item("B-8", strings.Repeat("ñ", 256), "X", "1", "1"),
		"sku muy largo":      item(strings.Repeat("S", 101), "N", "X", "1", "1"),
		"categoría larga":    item("B-9", "N", strings.Repeat("c", 256), "1", "1"),
		"cantidad > int32":   item("B-10", "N", "X", "3000000000", "1"),
		"mínimo > int32":     item("B-11", "N", "X", "1", "2147483648"),
		"precio > numeric":   func() dto.StockItemRequest { r := item("B-12", "N", "X", "1", "1"); r.Price = "10000000000"; return r }(),
		"duración larga": func() dto.StockItemRequest {
			r := item("B-13", "N", "X", "", "")
			r.IsService = true
			r.Duration = strings.Repeat("h", 101)
			return r
		}(),
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	list, err := uc.List(ctx, dto.StockListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items, "ninguna escritura parcial")
}

func TestCreate_LimitesExactosSeAceptan(t *testing.T) {
	uc, _ := newStock(t)
	req := item(strings.Repeat("S", 100), strings.Repeat("ñ", 255), "X", "2147483647", "1")
	req.Price = "9999999999.99"

	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, out.Quantity)
	assert.Equal(t, 2147483647, *out.Quantity)
	assert.Equal(t, "9999999999.99", out.Price.StringFixed(2))
}

func TestCreate_ServicioLimpiaCamposDeItem(t *testing.T) {
	uc, _ := newStock(t)
	req := item("S-1", "Instalación", "Servicios", "3", "1")
	req.IsService = true
	req.Unit = "kg"
	req.Duration = "1h"
	req.ServiceCost = "25.5"

	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SERVICE", out.Status)
	assert.Nil(t, out.Quantity)
	assert.Nil(t, out.MinLevel)
	assert.Empty(t, out.Unit)
	assert.False(t, out.PercentageApplicable)
	assert.Equal(t, "25.5", out.ServiceCost.String())
}

func TestUpdate(t *testing.T) {
	uc, _ := newStock(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, item("U-1", "Caja", "Embalaje", "1", "10"))
	require.NoError(t, err)

	out, err := uc.Update(ctx, "U-1", item("", "Caja grande", "Embalaje", "20", "10"))
	require.NoError(t, err)
	assert.Equal(t, "GOOD", out.Status)
	assert.Equal(t, "Caja grande", out.Name)

	_, err = uc.Update(ctx, "U-1", item("OTRO", "Caja", "Embalaje", "1", "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "NO-EXISTE", item("", "Caja", "Embalaje", "1", "1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteYGet(t *testing.T) {
	uc, _ := newStock(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, item("D-1", "Lápiz", "Papelería", "3", "1"))
	require.NoError(t, err)

	got, err := uc.Get(ctx, "D-1")
	require.NoError(t, err)
	assert.Equal(t, "Lápiz", got.Name)

	require.NoError(t, uc.Delete(ctx, "D-1"))
	_, err = uc.Get(ctx, "D-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "D-1"), domain.ErrNotFound)
}

func TestList_FiltrosYStatsGlobales(t *testing.T) {
	uc, _ := newStock(t)
	ctx := context.Background()
	for _, r := range []dto.StockItemRequest{
		item("C-1", "Cable", "Electrónica", "2", "10"),    // CRITICAL
		item("C-2", "Cargador", "Electrónica", "8", "10"), // LOW
		item("M-1", "Mesa", "Muebles", "30", "10"),        // GOOD
	} {
		_, err := uc.Create(ctx, r)
		require.NoError(t, err)
	}

	low, err := uc.List(ctx, dto.StockListRequest{View: "low", Sort: "percentage"})
	require.NoError(t, err)
	require.Len(t, low.Items, 2)
	assert.Equal(t, "C-1", low.Items[0].SKU)
	assert.Equal(t, 3, low.Stats.Total)
	assert.Equal(t, 2, low.Stats.Low)
	assert.Equal(t, 1, low.Stats.Critical)
	assert.Equal(t, "CRITICAL ALERT: 1 item(s) at critical levels!", low.Stats.Alert)

	search, err := uc.List(ctx, dto.StockListRequest{Search: "MESA"})
	require.NoError(t, err)
	require.Len(t, search.Items, 1)

	cat, err := uc.List(ctx, dto.StockListRequest{Category: "Electrónica", Sort: "name", Desc: true})
	require.NoError(t, err)
	require.Len(t, cat.Items, 2)
	assert.Equal(t, "Cargador", cat.Items[0].Name)

	_, err = uc.List(ctx, dto.StockListRequest{View: "rojo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Electrónica", "Muebles"}, cats)
}

func TestDashboard(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewStockItemRepository(store)
	uc := appstock.NewStockUseCase(repo, logger.Nop())
	ctx := context.Background()
	for _, r := range []dto.StockItemRequest{
		item("C-1", "Cable", "Electrónica", "2", "10"),
		item("C-2", "Cargador", "Electrónica", "8", "10"),
		item("M-1", "Mesa", "Muebles", "30", "10"),
	} {
		_, err := uc.Create(ctx, r)
		require.NoError(t, err)
	}

	sum, err := appstock.NewDashboardUseCase(repo).GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Stats.Healthy)
	require.Len(t, sum.Categories, 2)
	assert.Equal(t, dto.CategoryBreakdown{Category: "Electrónica", Total: 2, Low: 2, Critical: 1}, sum.Categories[0])
	require.Len(t, sum.Urgent, 2)
	assert.Equal(t, "C-1", sum.Urgent[0].SKU)
}

type fakePDF struct{ rows int }

func (f *fakePDF) GenerateStockReport(_ context.Context, r appstock.Report) ([]byte, error) {
	f.rows = len(r.Rows)
	return []byte("%PDF-fake"), nil
}

func newTransfer(t *testing.T, store *memory.Store, pdf appstock.PDFGenerator) *appstock.TransferUseCase {
	t.Helper()
	codec := export.NewCSVCodec()
	return appstock.NewTransferUseCase(
		memory.NewStockItemRepository(store), memory.NewTxRunner(store),
		codec, codec, export.NewXMLBuilder(), pdf, logger.Nop(),
	)
}

func TestImport_CuentaImportadosOmitidosFallidos(t *testing.T) {
	uc, store := newStock(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, item("EXISTE", "Previo", "X", "1", "1"))
	require.NoError(t, err)

	csv := "name,sku,quantity,min_level,category,subcategory\n" +
		"Nuevo,N-1,5,2,Ferretería,Fijaciones\n" +
		"Previo,EXISTE,1,1,X,General\n" +
		"Sin sku,,1,1,X,General\n" +
		"Roto,R-1,muchos,1,X,General\n" +
		"Incompleto,I-1,,,X,General\n" +
		"Repetido,N-1,1,1,X,General\n"

	res, err := newTransfer(t, store, nil).Import(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "línea 5")

	inc, err := uc.Get(ctx, "I-1")
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", inc.Status)
}

func TestImport_ErrorDelDecodificadorCuentaComoFallido(t *testing.T) {
	uc, store := newStock(t)
	ctx := context.Background()

	csv := "name,sku,quantity,min_level,category,subcategory\n" +
		"Good,G-1,5,10,C,S\n" +
		"Bad \"quote,B-1,5,10,C,S\n"

	res, err := newTransfer(t, store, nil).Import(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "línea 3")

	_, err = uc.Get(ctx, "G-1")
	assert.NoError(t, err)
}

func TestImport_FilasFueraDeRangoNoAbortan(t *testing.T) {
	uc, store := newStock(t)
	ctx := context.Background()

	csv := "name,sku,quantity,min_level,category,subcategory\n" +
		"Largo," + strings.Repeat("L", 101) + ",1,1,X,General\n" +
		"Enorme,E-1,3000000000,1,X,General\n" +
		"Normal,N-1,4,2,X,General\n"

	res, err := newTransfer(t, store, nil).Import(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "línea 2")
	assert.Contains(t, res.Errors[1], "línea 3")

	list, err := uc.List(ctx, dto.StockListRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

type failingTx struct{}

func (failingTx) RunStock(_ context.Context, fn func(repository.StockItemRepository) error) error {
	return errors.New("conexión perdida")
}

func TestImport_FalloDeAlmacenamiento(t *testing.T) {
	store := memory.NewStore()
	codec := export.NewCSVCodec()
	uc := appstock.NewTransferUseCase(memory.NewStockItemRepository(store), failingTx{}, codec, codec, nil, nil, logger.Nop())

	_, err := uc.Import(context.Background(), strings.NewReader("sku,name,category,subcategory\nA,B,C,D\n"))
	assert.Error(t, err)
}

func TestExportYReporte(t *testing.T) {
	uc, store := newStock(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, item("E-1", "Escoba", "Limpieza", "5", "10"))
	require.NoError(t, err)

	pdf := &fakePDF{}
	tr := newTransfer(t, store, pdf)

	var csvBuf bytes.Buffer
	require.NoError(t, tr.Export(ctx, appstock.FormatCSV, &csvBuf))
	assert.Contains(t, csvBuf.String(), "E-1")

	var xmlBuf bytes.Buffer
	require.NoError(t, tr.Export(ctx, "XML", &xmlBuf))
	assert.Contains(t, xmlBuf.String(), `status="CRITICAL"`)

	assert.ErrorIs(t, tr.Export(ctx, "xlsx", &bytes.Buffer{}), domain.ErrInvalidInput)

	b, name, err := tr.ReportPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), b)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.Equal(t, 1, pdf.rows)
}
