package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrPersistence       = errors.New("error de almacenamiento")
)

// ValidationError campo obligatorio ausente o valor no numérico. Se compara con ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError atajo para construir un *ValidationError.
func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// AuthErrorKind variantes de fallo de autenticación.
type AuthErrorKind int

const (
	AuthInvalidCredentials AuthErrorKind = iota + 1
	AuthPendingApproval
	AuthRejected
)

// AuthError fallo de login. InvalidCredentials nunca indica si el usuario existe.
type AuthError struct {
	Kind AuthErrorKind
}

func (e *AuthError) Error() string {
	switch e.Kind {
	case AuthInvalidCredentials:
		return "usuario o contraseña inválidos"
	case AuthPendingApproval:
		return "la cuenta está pendiente de aprobación"
	case AuthRejected:
		return "la solicitud de registro fue rechazada"
	default:
		return "error de autenticación"
	}
}

// Is compara por variante, de modo que errors.Is(err, ErrPendingApproval) funciona
// aunque el error se haya construido en otro punto.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidCredentials error = &AuthError{Kind: AuthInvalidCredentials}
	ErrPendingApproval    error = &AuthError{Kind: AuthPendingApproval}
	ErrRejected           error = &AuthError{Kind: AuthRejected}
)

// Persistence envuelve un fallo de infraestructura para que sea reconocible con errors.Is(err, ErrPersistence).
func Persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// InsufficientStockError la cantidad pedida supera las unidades disponibles.
// Se compara con ErrInsufficientStock.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Only %d items available in stock", e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
