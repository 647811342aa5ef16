package stock

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	domstock "github.com/jhoicas/stockmonitor/internal/domain/stock"
)

// TxRunner ejecuta una función dentro de una transacción, pasando un repositorio de ítems atado a esa tx.
// Una importación se confirma completa o no se confirma.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(items repository.StockItemRepository) error) error
}

// ImportRecord fila leída de un archivo delimitado, con su número de línea (1 = cabecera).
// Err no nulo marca una fila que el decodificador no pudo interpretar.
type ImportRecord struct {
	Line int
	Item dto.StockItemRequest
	Err  error
}

// RecordDecoder lee filas de ítems de un archivo delimitado.
type RecordDecoder interface {
	DecodeStockItems(r io.Reader) ([]ImportRecord, error)
}

// ReportRow ítem junto a su clasificación, tal como se muestra en la tabla.
type ReportRow struct {
	Item           *entity.StockItem
	Classification domstock.Classification
}

// Report instantánea del monitor para exportación.
type Report struct {
	GeneratedAt time.Time
	Stats       domstock.Stats
	Rows        []ReportRow
}

// ReportEncoder serializa una instantánea (CSV, XML).
type ReportEncoder interface {
	EncodeStockReport(w io.Writer, report Report) error
}

// PDFGenerator genera el reporte de stock en PDF.
type PDFGenerator interface {
	GenerateStockReport(ctx context.Context, report Report) ([]byte, error)
}
