package export

import (
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"

	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
)

// XMLBuilder exporta la instantánea del monitor como documento XML:
//
//	<stock exported_at="..." total=".." low=".." critical="..">
//	  <item sku=".." status=".." severity="..">
//	    <name/> <category/> ... <percentage/>
//	  </item>
//	</stock>
type XMLBuilder struct{}

// NewXMLBuilder construye el exportador.
func NewXMLBuilder() *XMLBuilder { return &XMLBuilder{} }

var _ appstock.ReportEncoder = (*XMLBuilder)(nil)

// EncodeStockReport escribe el documento con sangría de dos espacios.
func (b *XMLBuilder) EncodeStockReport(w io.Writer, report appstock.Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("stock")
	root.CreateAttr("exported_at", report.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("total", strconv.Itoa(report.Stats.Total))
	root.CreateAttr("low", strconv.Itoa(report.Stats.Low))
	root.CreateAttr("critical", strconv.Itoa(report.Stats.Critical))

	for _, row := range report.Rows {
		it := row.Item
		el := root.CreateElement("item")
		el.CreateAttr("sku", it.SKU)
		el.CreateAttr("status", string(row.Classification.Status))
		el.CreateAttr("severity", string(row.Classification.Severity))

		child(el, "name", it.Name)
		child(el, "category", it.Category)
		child(el, "subcategory", it.Subcategory)
		if it.Description != "" {
			child(el, "description", it.Description)
		}
		child(el, "price", it.Price.StringFixed(2))
		child(el, "is_service", strconv.FormatBool(it.IsService))

		if it.IsService {
			if it.Duration != "" {
				child(el, "duration", it.Duration)
			}
			child(el, "service_cost", it.ServiceCost.StringFixed(2))
			continue
		}
		if it.Quantity != nil {
			child(el, "quantity", strconv.Itoa(*it.Quantity))
		}
		if it.MinLevel != nil {
			child(el, "min_level", strconv.Itoa(*it.MinLevel))
		}
		child(el, "unit", it.Unit)
		if row.Classification.Computable {
			child(el, "percentage", strconv.FormatFloat(row.Classification.Percentage, 'f', 1, 64))
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func child(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}
