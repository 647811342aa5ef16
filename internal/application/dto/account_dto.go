package dto

import "time"

// SignupRequest entrada del formulario de registro. requested_role: customer, staff, supervisor o admin.
type SignupRequest struct {
	FullName        string `json:"full_name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	RequestedRole   string `json:"requested_role" validate:"omitempty,oneof=customer staff supervisor"`
}

// RegisterCustomerRequest alta de un cliente presencial desde la consola de staff.
type RegisterCustomerRequest struct {
	FullName        string `json:"full_name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT, cuenta y consola a la que enrutar.
type LoginResponse struct {
	Token   string          `json:"token"`
	Console string          `json:"console"`
	Account AccountResponse `json:"account"`
}

// ChangePasswordRequest cambio de contraseña por el propio usuario.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ApproveRequest rol asignado por el admin; vacío = el solicitado.
type ApproveRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=customer staff supervisor admin"`
}

// AccountResponse salida de una cuenta (sin salt ni hash).
type AccountResponse struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	RequestedRole string    `json:"requested_role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// SignupResponse cuenta creada y si ya puede iniciar sesión.
type SignupResponse struct {
	Account AccountResponse `json:"account"`
	Message string          `json:"message"`
}

// AccountListResponse listado de cuentas de la consola de administración.
type AccountListResponse struct {
	Filter string            `json:"filter"`
	Items  []AccountResponse `json:"items"`
}

// TaskResponse entrada de "mis tareas" de la consola de staff.
type TaskResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// MessageResponse respuesta informativa sin cuerpo de datos.
type MessageResponse struct {
	Message string `json:"message"`
}

// RoleChangeRequest petición de cambio de rol desde la consola de staff.
type RoleChangeRequest struct {
	Role string `json:"role" validate:"required,oneof=customer staff supervisor admin"`
}
