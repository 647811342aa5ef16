package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/stockmonitor/internal/domain"
)

// Role rol asignado a una cuenta.
type Role string

const (
	RoleUnassigned Role = "unassigned"
	RoleCustomer   Role = "customer"
	RoleStaff      Role = "staff"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// Valid indica si el valor pertenece a la enumeración.
func (r Role) Valid() bool {
	switch r {
	case RoleUnassigned, RoleCustomer, RoleStaff, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// Assignable roles que un admin puede asignar (todos menos unassigned).
func (r Role) Assignable() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleSupervisor, RoleAdmin:
		return true
	case RoleUnassigned:
		return false
	}
	return false
}

// SelfSignup roles que se pueden pedir en el alta. admin solo lo otorga otro admin al aprobar.
func (r Role) SelfSignup() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleSupervisor:
		return true
	}
	return false
}

// ParseRole normaliza y valida un rol recibido como texto.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", domain.NewValidationError("role", "rol desconocido: "+s)
	}
	return r, nil
}

// AccountStatus estado del ciclo de vida de la cuenta.
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusActive   AccountStatus = "active"
	StatusRejected AccountStatus = "rejected"
)

// Valid indica si el valor pertenece a la enumeración.
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusRejected:
		return true
	}
	return false
}

// AdminUsername usuario sembrado en el primer arranque; nunca se puede eliminar.
const AdminUsername = "admin"

// Account cuenta de usuario. Salt y PasswordHash se guardan en hexadecimal.
type Account struct {
	ID            string
	FullName      string
	Email         string
	Username      string
	Salt          string
	PasswordHash  string
	Role          Role
	RequestedRole Role
	Status        AccountStatus
	CreatedAt     time.Time
}

// NewAccount aplica la regla de alta: customer entra activo, cualquier otro rol queda pendiente sin rol.
func NewAccount(id, fullName, email, username string, requested Role, salt, hash string, now time.Time) (*Account, error) {
	if !requested.SelfSignup() {
		return nil, domain.NewValidationError("requested_role", "rol solicitado inválido")
	}
	a := &Account{
		ID:            id,
		FullName:      fullName,
		Email:         email,
		Username:      username,
		Salt:          salt,
		PasswordHash:  hash,
		RequestedRole: requested,
		CreatedAt:     now,
	}
	switch requested {
	case RoleCustomer:
		a.Role = RoleCustomer
		a.Status = StatusActive
	case RoleStaff, RoleSupervisor:
		a.Role = RoleUnassigned
		a.Status = StatusPending
	}
	return a, nil
}

// Approve asigna rol y activa. Solo válido desde pending; un rol vacío toma el solicitado.
func (a *Account) Approve(role Role) error {
	if a.Status != StatusPending {
		return domain.ErrInvalidTransition
	}
	if role == "" {
		role = a.RequestedRole
	}
	if !role.Assignable() {
		return domain.NewValidationError("role", "rol no asignable: "+string(role))
	}
	a.Role = role
	a.Status = StatusActive
	return nil
}

// Reject marca la solicitud como rechazada. Solo válido desde pending; rejected es terminal.
func (a *Account) Reject() error {
	if a.Status != StatusPending {
		return domain.ErrInvalidTransition
	}
	a.Status = StatusRejected
	return nil
}

// IsSeededAdmin indica si es la cuenta admin sembrada.
func (a *Account) IsSeededAdmin() bool {
	return a.Username == AdminUsername
}

// Console vista a la que se enruta cada rol tras el login.
type Console string

const (
	ConsoleAdmin Console = "admin"
	ConsoleStaff Console = "staff"
	ConsoleShop  Console = "shop"
)

// ConsoleFor devuelve la consola de un rol activo.
func ConsoleFor(role Role) (Console, error) {
	switch role {
	case RoleAdmin:
		return ConsoleAdmin, nil
	case RoleCustomer:
		return ConsoleShop, nil
	case RoleStaff, RoleSupervisor:
		return ConsoleStaff, nil
	case RoleUnassigned:
		return "", domain.ErrForbidden
	}
	return "", domain.ErrForbidden
}
