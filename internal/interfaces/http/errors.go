package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain"
)

// validate instancia compartida; validator.Validate es seguro para uso concurrente.
var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodifica el cuerpo y aplica las reglas de los tags `validate`.
// Si falla ya escribe la respuesta 400; el handler solo debe devolver el error.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + ": es obligatorio"
		case "email":
			return fe.Field() + ": email inválido"
		case "oneof":
			return fe.Field() + ": debe ser uno de [" + fe.Param() + "]"
		case "min", "max":
			return fe.Field() + ": longitud o valor fuera de rango (" + fe.Tag() + "=" + fe.Param() + ")"
		}
		return fe.Field() + ": inválido"
	}
	return err.Error()
}

// writeError traduce un error de dominio a su código HTTP y cuerpo ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	msg := err.Error()

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, code = fiber.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrPendingApproval):
		status, code = fiber.StatusForbidden, "PENDING_APPROVAL"
	case errors.Is(err, domain.ErrRejected):
		status, code = fiber.StatusForbidden, "REJECTED"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrInvalidTransition):
		status, code = fiber.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrPersistence):
		// El detalle de infraestructura queda en el log, no en la respuesta.
		status, code, msg = fiber.StatusServiceUnavailable, "PERSISTENCE", "error de almacenamiento, intente más tarde"
	default:
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
