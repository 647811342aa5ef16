package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	"github.com/jhoicas/stockmonitor/pkg/jwt"
	"github.com/jhoicas/stockmonitor/pkg/logger"
	"github.com/jhoicas/stockmonitor/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, cambio de contraseña y admin sembrado.
type AuthUseCase struct {
	accounts repository.AccountRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, jwtCfg: jwtCfg, log: log.Named("auth")}
}

// Signup crea una cuenta. customer queda activa al instante; el resto queda pendiente de aprobación.
// Username o email repetidos devuelven domain.ErrDuplicate.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, error) {
	requested := entity.RoleCustomer
	if strings.TrimSpace(in.RequestedRole) != "" {
		r, err := entity.ParseRole(in.RequestedRole)
		if err != nil {
			return nil, err
		}
		requested = r
	}
	acc, err := uc.create(ctx, in.FullName, in.Email, in.Username, in.Password, in.ConfirmPassword, requested)
	if err != nil {
		return nil, err
	}
	msg := "Registro completo. Ya puede iniciar sesión."
	if acc.Status == entity.StatusPending {
		msg = "Registro completo. Espere la aprobación de un administrador."
	}
	return &dto.SignupResponse{Account: *ToAccountResponse(acc), Message: msg}, nil
}

// RegisterCustomer alta de un cliente presencial hecha por staff; queda activo como customer.
func (uc *AuthUseCase) RegisterCustomer(ctx context.Context, in dto.RegisterCustomerRequest) (*dto.AccountResponse, error) {
	acc, err := uc.create(ctx, in.FullName, in.Email, in.Username, in.Password, in.ConfirmPassword, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return ToAccountResponse(acc), nil
}

func (uc *AuthUseCase) create(ctx context.Context, fullName, email, username, pwd, confirm string, requested entity.Role) (*entity.Account, error) {
	fullName, email, username = strings.TrimSpace(fullName), strings.TrimSpace(email), strings.TrimSpace(username)
	switch {
	case fullName == "":
		return nil, domain.NewValidationError("full_name", "requerido")
	case email == "":
		return nil, domain.NewValidationError("email", "requerido")
	case username == "":
		return nil, domain.NewValidationError("username", "requerido")
	case strings.TrimSpace(pwd) == "":
		return nil, domain.NewValidationError("password", "requerido")
	case pwd != confirm:
		return nil, domain.NewValidationError("confirm_password", "las contraseñas no coinciden")
	case len(pwd) < password.MinLength:
		return nil, domain.NewValidationError("password", "debe tener al menos 6 caracteres")
	}

	salt, hash, err := password.HashHex(pwd)
	if err != nil {
		return nil, err
	}
	acc, err := entity.NewAccount(uuid.New().String(), fullName, email, username, requested, salt, hash, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.accounts.Create(ctx, acc); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("username", acc.Username).
		Str("requested_role", string(acc.RequestedRole)).
		Str("status", string(acc.Status)).
		Msg("cuenta registrada")
	return acc, nil
}

// Login verifica usuario/contraseña, comprueba el estado y genera el JWT.
// Usuario inexistente y contraseña incorrecta devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.NewValidationError("", "usuario y contraseña son requeridos")
	}
	acc, err := uc.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		password.BurnDummy(in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if !password.VerifyHex(in.Password, acc.Salt, acc.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	switch acc.Status {
	case entity.StatusPending:
		return nil, domain.ErrPendingApproval
	case entity.StatusRejected:
		return nil, domain.ErrRejected
	case entity.StatusActive:
	default:
		return nil, domain.ErrForbidden
	}

	console, err := entity.ConsoleFor(acc.Role)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.ID, acc.Username, string(acc.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", acc.Username).Str("role", string(acc.Role)).Msg("login")
	return &dto.LoginResponse{
		Token:   token,
		Console: string(console),
		Account: *ToAccountResponse(acc),
	}, nil
}

// ChangePassword verifica la contraseña actual y re-deriva con un salt nuevo.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, accountID string, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" || in.ConfirmPassword == "" {
		return domain.NewValidationError("", "todos los campos son requeridos")
	}
	acc, err := uc.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}
	if !password.VerifyHex(in.CurrentPassword, acc.Salt, acc.PasswordHash) {
		return domain.NewValidationError("current_password", "la contraseña actual es incorrecta")
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.NewValidationError("confirm_password", "las contraseñas nuevas no coinciden")
	}
	if len(in.NewPassword) < password.MinLength {
		return domain.NewValidationError("new_password", "debe tener al menos 6 caracteres")
	}
	salt, hash, err := password.HashHex(in.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.accounts.UpdatePassword(ctx, acc.ID, salt, hash); err != nil {
		return err
	}
	uc.log.Info().Str("username", acc.Username).Msg("contraseña actualizada")
	return nil
}

// Me devuelve la cuenta autenticada y su consola.
func (uc *AuthUseCase) Me(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	acc, err := uc.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return ToAccountResponse(acc), nil
}

// EnsureAdmin siembra la cuenta "admin" si no existe. Idempotente.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, initialPassword string) error {
	existing, err := uc.accounts.FindByUsername(ctx, entity.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	salt, hash, err := password.HashHex(initialPassword)
	if err != nil {
		return err
	}
	admin := &entity.Account{
		ID:            uuid.New().String(),
		FullName:      "Default Administrator",
		Email:         "admin@example.com",
		Username:      entity.AdminUsername,
		Salt:          salt,
		PasswordHash:  hash,
		Role:          entity.RoleAdmin,
		RequestedRole: entity.RoleAdmin,
		Status:        entity.StatusActive,
		CreatedAt:     time.Now(),
	}
	if err := uc.accounts.Create(ctx, admin); err != nil {
		// Otra instancia pudo sembrarlo entre la consulta y el insert.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil
		}
		return err
	}
	uc.log.Warn().Msg("cuenta admin sembrada con la contraseña inicial; cámbiela tras el primer login")
	return nil
}

// ToAccountResponse convierte la entidad a su salida (sin salt ni hash).
func ToAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:            a.ID,
		FullName:      a.FullName,
		Email:         a.Email,
		Username:      a.Username,
		Role:          string(a.Role),
		RequestedRole: string(a.RequestedRole),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}
