package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmonitor/internal/application/accounts"
	"github.com/jhoicas/stockmonitor/internal/application/auth"
	"github.com/jhoicas/stockmonitor/internal/application/dto"
)

// AccountHandler consola de administración y consola de staff.
type AccountHandler struct {
	accounts *accounts.AccountUseCase
	auth     *auth.AuthUseCase
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(accountsUC *accounts.AccountUseCase, authUC *auth.AuthUseCase) *AccountHandler {
	return &AccountHandler{accounts: accountsUC, auth: authUC}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        filter  query  string  false  "pending (por defecto), non_customer o customer"
// @Success      200  {object}  dto.AccountListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.accounts.List(c.UserContext(), c.Query("filter"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar una cuenta pendiente
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true   "ID de la cuenta"
// @Param        body  body  dto.ApproveRequest  false  "rol a asignar; vacío = el solicitado"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/accounts/{id}/approve [post]
func (h *AccountHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	out, err := h.accounts.Approve(c.UserContext(), c.Params("id"), in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar una cuenta pendiente
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/accounts/{id}/reject [post]
func (h *AccountHandler) Reject(c *fiber.Ctx) error {
	out, err := h.accounts.Reject(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una cuenta
// @Description  No se puede eliminar la cuenta admin sembrada ni la propia.
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.accounts.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCustomers godoc
// @Summary      Clientes registrados
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AccountListResponse
// @Router       /api/staff/customers [get]
func (h *AccountHandler) ListCustomers(c *fiber.Ctx) error {
	out, err := h.accounts.List(c.UserContext(), "customer")
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterCustomer godoc
// @Summary      Alta de cliente presencial
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterCustomerRequest  true  "datos del cliente"
// @Success      201  {object}  dto.AccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/staff/customers [post]
func (h *AccountHandler) RegisterCustomer(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.auth.RegisterCustomer(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Tasks godoc
// @Summary      Mis tareas
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/staff/tasks [get]
func (h *AccountHandler) Tasks(c *fiber.Ctx) error {
	return c.JSON(h.accounts.Tasks(c.UserContext(), GetUserID(c)))
}

// RequestRoleChange godoc
// @Summary      Solicitar cambio de rol
// @Description  Queda registrada para revisión; la cuenta no cambia.
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RoleChangeRequest  true  "rol solicitado"
// @Success      202  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/staff/role-request [post]
func (h *AccountHandler) RequestRoleChange(c *fiber.Ctx) error {
	var in dto.RoleChangeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.accounts.RequestRoleChange(c.UserContext(), GetUserID(c), in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}
