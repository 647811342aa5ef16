// Package export implementa los formatos de intercambio del monitor de stock:
// CSV (importación y exportación) y XML (exportación).
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	"github.com/jhoicas/stockmonitor/internal/domain"
)

// Columns cabecera del archivo, en orden de escritura.
var Columns = []string{
	"name", "sku", "quantity", "min_level", "category", "subcategory",
	"unit", "price", "description", "is_service", "duration", "service_cost",
}

// columna informativa que solo se escribe al exportar.
const statusColumn = "status"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVCodec lee y escribe ítems en CSV.
type CSVCodec struct{}

// NewCSVCodec construye el codec.
func NewCSVCodec() *CSVCodec { return &CSVCodec{} }

var (
	_ appstock.RecordDecoder = (*CSVCodec)(nil)
	_ appstock.ReportEncoder = (*CSVCodec)(nil)
)

// DecodeStockItems lee el archivo completo. Las columnas se ubican por nombre de cabecera;
// las ausentes quedan vacías. Un archivo que no es UTF-8 válido se lee como Windows-1252.
func (c *CSVCodec) DecodeStockItems(r io.Reader) ([]appstock.ImportRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csv: leer: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewValidationError("file", "archivo vacío")
	}
	if err != nil {
		return nil, domain.NewValidationError("file", "cabecera ilegible: "+err.Error())
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx["sku"]; !ok {
		return nil, domain.NewValidationError("file", "falta la columna sku")
	}

	out := make([]appstock.ImportRecord, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				out = append(out, appstock.ImportRecord{Line: perr.StartLine, Err: domain.NewValidationError("", perr.Err.Error())})
				continue
			}
			return nil, fmt.Errorf("csv: leer fila: %w", err)
		}
		if blank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		out = append(out, toRecord(line, rec, idx))
	}
	return out, nil
}

func toRecord(line int, rec []string, idx map[string]int) appstock.ImportRecord {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	out := appstock.ImportRecord{
		Line: line,
		Item: dto.StockItemRequest{
			SKU:         get("sku"),
			Name:        get("name"),
			Category:    get("category"),
			Subcategory: get("subcategory"),
			Quantity:    dto.NumberText(get("quantity")),
			MinLevel:    dto.NumberText(get("min_level")),
			Unit:        get("unit"),
			Price:       dto.NumberText(get("price")),
			Description: get("description"),
			Duration:    get("duration"),
			ServiceCost: dto.NumberText(get("service_cost")),
		},
	}
	svc, err := parseFlag(get("is_service"))
	if err != nil {
		out.Err = domain.NewValidationError("is_service", err.Error())
	}
	out.Item.IsService = svc
	return out
}

// parseFlag acepta las formas habituales de hojas de cálculo.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "0", "false", "no", "n":
		return false, nil
	case "1", "true", "yes", "y", "si", "sí", "x":
		return true, nil
	}
	return false, fmt.Errorf("valor booleano inválido %q", s)
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// EncodeStockReport escribe la cabecera más una fila por ítem, con el estado calculado al final.
// El resultado se puede volver a importar: la columna status se ignora.
func (c *CSVCodec) EncodeStockReport(w io.Writer, report appstock.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string(nil), Columns...), statusColumn)); err != nil {
		return err
	}
	for _, row := range report.Rows {
		r := appstock.ToItemRequest(row.Item)
		if err := cw.Write([]string{
			r.Name, r.SKU, r.Quantity.String(), r.MinLevel.String(), r.Category, r.Subcategory,
			r.Unit, r.Price.String(), r.Description, strconv.FormatBool(r.IsService), r.Duration, r.ServiceCost.String(),
			string(row.Classification.Status),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
