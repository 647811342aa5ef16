package stock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	domstock "github.com/jhoicas/stockmonitor/internal/domain/stock"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

// ExportFormat formatos de exportación soportados.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatXML ExportFormat = "xml"
)

// TransferUseCase importación y exportación de ítems en archivos, más el reporte PDF.
type TransferUseCase struct {
	repo     repository.StockItemRepository
	tx       TxRunner
	decoder  RecordDecoder
	encoders map[ExportFormat]ReportEncoder
	pdf      PDFGenerator
	log      *logger.Logger
}

// NewTransferUseCase construye el caso de uso inyectando codecs y generador.
func NewTransferUseCase(
	repo repository.StockItemRepository,
	tx TxRunner,
	decoder RecordDecoder,
	csvEncoder ReportEncoder,
	xmlEncoder ReportEncoder,
	pdf PDFGenerator,
	log *logger.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		repo:    repo,
		tx:      tx,
		decoder: decoder,
		encoders: map[ExportFormat]ReportEncoder{
			FormatCSV: csvEncoder,
			FormatXML: xmlEncoder,
		},
		pdf: pdf,
		log: log.Named("stock-transfer"),
	}
}

// Import lee un archivo delimitado y da de alta solo las filas con SKU no vacío y no existente.
// Las filas con SKU vacío o repetido cuentan como skipped; las que no se pueden parsear, como failed.
// Todas las inserciones van en una transacción: un fallo de almacenamiento no deja escrituras parciales.
func (uc *TransferUseCase) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	records, err := uc.decoder.DecodeStockItems(r)
	if err != nil {
		return nil, err
	}

	res := &dto.ImportResult{}
	err = uc.tx.RunStock(ctx, func(items repository.StockItemRepository) error {
		for _, rec := range records {
			// Un error del decodificador llega sin campos: se reporta antes de mirar el SKU.
			if rec.Err != nil {
				res.Failed++
				res.Errors = append(res.Errors, fmt.Sprintf("línea %d: %v", rec.Line, rec.Err))
				continue
			}
			if strings.TrimSpace(rec.Item.SKU) == "" {
				res.Skipped++
				continue
			}
			it, perr := parseItem(rec.Item, false)
			if perr != nil {
				res.Failed++
				res.Errors = append(res.Errors, fmt.Sprintf("línea %d: %v", rec.Line, perr))
				continue
			}
			inserted, cerr := items.CreateIfAbsent(ctx, it)
			if cerr != nil {
				return cerr
			}
			if inserted {
				res.Imported++
			} else {
				res.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("importación finalizada")
	return res, nil
}

// Export escribe la instantánea actual en el formato pedido.
func (uc *TransferUseCase) Export(ctx context.Context, format ExportFormat, w io.Writer) error {
	enc, ok := uc.encoders[ExportFormat(strings.ToLower(string(format)))]
	if !ok || enc == nil {
		return domain.NewValidationError("format", "formato no soportado (csv|xml)")
	}
	report, err := uc.snapshot(ctx)
	if err != nil {
		return err
	}
	return enc.EncodeStockReport(w, report)
}

// ReportPDF genera el reporte PDF y su nombre de archivo.
func (uc *TransferUseCase) ReportPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	if uc.pdf == nil {
		return nil, "", errors.New("stock: generador PDF no configurado")
	}
	report, err := uc.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateStockReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("stock: generar reporte: %w", err)
	}
	return b, "stock-report-" + report.GeneratedAt.Format("20060102-1504") + ".pdf", nil
}

func (uc *TransferUseCase) snapshot(ctx context.Context) (Report, error) {
	items, err := uc.repo.ListAll(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{
		GeneratedAt: time.Now(),
		Stats:       domstock.Summarize(items),
		Rows:        Snapshot(items),
	}, nil
}
