package http

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
)

// maxImportBytes tope del archivo de importación.
const maxImportBytes = 10 << 20

// StockHandler monitor de stock: CRUD, dashboard, importación, exportación y reporte.
type StockHandler struct {
	stock     *appstock.StockUseCase
	dashboard *appstock.DashboardUseCase
	transfer  *appstock.TransferUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *appstock.StockUseCase, dashboard *appstock.DashboardUseCase, transfer *appstock.TransferUseCase) *StockHandler {
	return &StockHandler{stock: stock, dashboard: dashboard, transfer: transfer}
}

// List godoc
// @Summary      Listado de ítems con clasificación
// @Description  Los contadores se calculan sobre todo el inventario, no sobre el filtro.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        view      query  string  false  "all (por defecto), low o critical"
// @Param        category  query  string  false  "categoría exacta"
// @Param        q         query  string  false  "búsqueda sin distinguir mayúsculas"
// @Param        sort      query  string  false  "name, sku, category, subcategory, quantity, min_level, price, status, percentage"
// @Param        desc      query  bool    false  "orden descendente"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/items [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var q dto.StockListRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.stock.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un ítem
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{sku} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	out, err := h.stock.Get(c.UserContext(), c.Params("sku"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem o servicio
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.StockItemRequest  true  "ítem"
// @Success      201  {object}  dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/items [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.stock.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku   path  string                true  "SKU"
// @Param        body  body  dto.StockItemRequest  true  "ítem"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{sku} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.stock.Update(c.UserContext(), c.Params("sku"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         stock
// @Security     BearerAuth
// @Param        sku  path  string  true  "SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{sku} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.stock.Delete(c.UserContext(), c.Params("sku")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Categories godoc
// @Summary      Categorías en uso
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /api/stock/categories [get]
func (h *StockHandler) Categories(c *fiber.Ctx) error {
	out, err := h.stock.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen del monitor
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StockDashboardResponse
// @Router       /api/stock/dashboard [get]
func (h *StockHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar ítems desde CSV
// @Description  Acepta multipart (campo "file") o el CSV como cuerpo. Los SKU existentes se omiten.
// @Tags         stock
// @Accept       multipart/form-data
// @Accept       text/csv
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  false  "archivo CSV"
// @Success      200  {object}  dto.ImportResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/import [post]
func (h *StockHandler) Import(c *fiber.Ctx) error {
	var r io.Reader
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo 'file' requerido"})
		}
		if fh.Size > maxImportBytes {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "archivo demasiado grande"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
		}
		defer f.Close()
		r = f
	} else {
		body := c.Body()
		if len(body) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo vacío"})
		}
		r = bytes.NewReader(body)
	}

	out, err := h.transfer.Import(c.UserContext(), r)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el inventario
// @Tags         stock
// @Produce      text/csv
// @Produce      application/xml
// @Security     BearerAuth
// @Param        format  query  string  false  "csv (por defecto) o xml"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	format := appstock.ExportFormat(strings.ToLower(c.Query("format", string(appstock.FormatCSV))))
	var buf bytes.Buffer
	if err := h.transfer.Export(c.UserContext(), format, &buf); err != nil {
		return writeError(c, err)
	}
	contentType := "text/csv; charset=utf-8"
	if format == appstock.FormatXML {
		contentType = fiber.MIMEApplicationXMLCharsetUTF8
	}
	c.Attachment("stock_" + time.Now().Format("20060102") + "." + string(format))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(buf.Bytes())
}

// ReportPDF godoc
// @Summary      Reporte de salud de stock en PDF
// @Tags         stock
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.transfer.ReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
