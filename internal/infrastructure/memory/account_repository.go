package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación en memoria de AccountRepository.
type AccountRepo struct {
	s *Store
}

// NewAccountRepository construye el repositorio sobre el almacén.
func NewAccountRepository(s *Store) *AccountRepo {
	return &AccountRepo{s: s}
}

func (r *AccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.accounts {
		if existing.Username == a.Username || existing.Email == a.Email || existing.ID == a.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.accounts[a.ID] = copyAccount(a)
	return nil
}

func (r *AccountRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.accounts {
		if a.Username == username {
			return copyAccount(a), nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) FindByID(_ context.Context, id string) (*entity.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	return copyAccount(a), nil
}

// List aplica el filtro y ordena por fecha de creación descendente (pendientes: ascendente, FIFO).
func (r *AccountRepo) List(_ context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	var keep func(a *entity.Account) bool
	switch filter {
	case repository.AccountsPending:
		keep = func(a *entity.Account) bool { return a.Status == entity.StatusPending }
	case repository.AccountsNonCustomer:
		keep = func(a *entity.Account) bool { return a.Role != entity.RoleCustomer }
	case repository.AccountsCustomer:
		keep = func(a *entity.Account) bool { return a.Role == entity.RoleCustomer }
	default:
		return nil, domain.NewValidationError("filter", "filtro desconocido")
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Account, 0)
	for _, a := range r.s.accounts {
		if keep(a) {
			out = append(out, copyAccount(a))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Username < out[j].Username
		}
		if filter == repository.AccountsPending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AccountRepo) UpdateRole(_ context.Context, id string, role entity.Role, status entity.AccountStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Role = role
	a.Status = status
	return nil
}

func (r *AccountRepo) UpdatePassword(_ context.Context, id, salt, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Salt = salt
	a.PasswordHash = hash
	return nil
}

func (r *AccountRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.accounts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.accounts, id)
	for lineID, l := range r.s.cart {
		if l.AccountID == id {
			delete(r.s.cart, lineID)
			r.s.cartSeq = removeString(r.s.cartSeq, lineID)
		}
	}
	return nil
}
