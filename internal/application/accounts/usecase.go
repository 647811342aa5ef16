package accounts

import (
	"context"
	"strings"

	"github.com/jhoicas/stockmonitor/internal/application/auth"
	"github.com/jhoicas/stockmonitor/internal/application/dto"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

// AccountUseCase casos de uso de las consolas de administración y de staff sobre cuentas.
type AccountUseCase struct {
	repo repository.AccountRepository
	log  *logger.Logger
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository, log *logger.Logger) *AccountUseCase {
	return &AccountUseCase{repo: repo, log: log.Named("accounts")}
}

// List devuelve las cuentas del filtro pedido (pending, non_customer o customer).
func (uc *AccountUseCase) List(ctx context.Context, filter string) (*dto.AccountListResponse, error) {
	f := repository.AccountFilter(strings.ToLower(strings.TrimSpace(filter)))
	if f == "" {
		f = repository.AccountsPending
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.AccountListResponse{Filter: string(f), Items: make([]dto.AccountResponse, 0, len(list))}
	for _, a := range list {
		out.Items = append(out.Items, *auth.ToAccountResponse(a))
	}
	return out, nil
}

// Approve asigna rol a una cuenta pendiente y la activa. role vacío = el solicitado.
func (uc *AccountUseCase) Approve(ctx context.Context, id, role string) (*dto.AccountResponse, error) {
	acc, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	var r entity.Role
	if strings.TrimSpace(role) != "" {
		if r, err = entity.ParseRole(role); err != nil {
			return nil, err
		}
	}
	if err := acc.Approve(r); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRole(ctx, acc.ID, acc.Role, acc.Status); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", acc.Username).Str("role", string(acc.Role)).Msg("cuenta aprobada")
	return auth.ToAccountResponse(acc), nil
}

// Reject rechaza una cuenta pendiente. El estado es terminal.
func (uc *AccountUseCase) Reject(ctx context.Context, id string) (*dto.AccountResponse, error) {
	acc, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := acc.Reject(); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRole(ctx, acc.ID, acc.Role, acc.Status); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", acc.Username).Msg("cuenta rechazada")
	return auth.ToAccountResponse(acc), nil
}

// Delete elimina una cuenta. No se puede borrar el admin sembrado ni la propia cuenta.
func (uc *AccountUseCase) Delete(ctx context.Context, actorID, id string) error {
	acc, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	if acc.IsSeededAdmin() || acc.ID == actorID {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, acc.ID); err != nil {
		return err
	}
	uc.log.Info().Str("username", acc.Username).Str("by", actorID).Msg("cuenta eliminada")
	return nil
}

// Tasks lista de tareas de la consola de staff. Aún no hay asignación de tareas: siempre vacía.
func (uc *AccountUseCase) Tasks(_ context.Context, _ string) []dto.TaskResponse {
	return []dto.TaskResponse{}
}

// RequestRoleChange registra la petición de cambio de rol. No modifica la cuenta.
func (uc *AccountUseCase) RequestRoleChange(ctx context.Context, id, role string) (*dto.MessageResponse, error) {
	acc, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	r, err := entity.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if !r.Assignable() {
		return nil, domain.NewValidationError("role", "rol no asignable: "+role)
	}
	uc.log.Info().Str("username", acc.Username).Str("requested_role", string(r)).Msg("solicitud de cambio de rol")
	return &dto.MessageResponse{Message: "Solicitud enviada. Un administrador la revisará."}, nil
}

func (uc *AccountUseCase) find(ctx context.Context, id string) (*entity.Account, error) {
	acc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return acc, nil
}
