package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/application/shop"
)

// ShopHandler consola de clientes: catálogo y carrito de la cuenta autenticada.
type ShopHandler struct {
	uc *shop.CartUseCase
}

// NewShopHandler construye el handler.
func NewShopHandler(uc *shop.CartUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// Products godoc
// @Summary      Catálogo
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Param        category  query  string  false  "filtrar por categoría"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/shop/products [get]
func (h *ShopHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext(), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /api/shop/categories [get]
func (h *ShopHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddToCart godoc
// @Summary      Agregar al carrito
// @Description  Si el producto ya está en el carrito se suman las cantidades.
// @Tags         shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddToCartRequest  true  "producto y cantidad"
// @Success      200  {object}  dto.CartLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shop/cart [post]
func (h *ShopHandler) AddToCart(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddToCart(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cart godoc
// @Summary      Ver carrito
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CartResponse
// @Router       /api/shop/cart [get]
func (h *ShopHandler) Cart(c *fiber.Ctx) error {
	out, err := h.uc.GetCart(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar una línea del carrito
// @Tags         shop
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shop/cart/{id} [delete]
func (h *ShopHandler) RemoveLine(c *fiber.Ctx) error {
	if err := h.uc.RemoveLine(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         shop
// @Security     BearerAuth
// @Success      204
// @Router       /api/shop/cart [delete]
func (h *ShopHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
