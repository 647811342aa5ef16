package repository

import (
	"context"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// AccountFilter listados de la consola de administración.
type AccountFilter string

const (
	AccountsPending     AccountFilter = "pending"
	AccountsNonCustomer AccountFilter = "non_customer"
	AccountsCustomer    AccountFilter = "customer"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// username y email son únicos: una colisión devuelve domain.ErrDuplicate.
// Find* devuelven (nil, nil) si no existe.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	List(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)
	UpdateRole(ctx context.Context, id string, role entity.Role, status entity.AccountStatus) error
	UpdatePassword(ctx context.Context, id, salt, hash string) error
	Delete(ctx context.Context, id string) error
}
