package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, full_name, email, username, salt, password_hash, role, requested_role, status, created_at`

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva. username/email repetidos -> domain.ErrDuplicate.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.FullName, a.Email, a.Username, a.Salt, a.PasswordHash,
		string(a.Role), string(a.RequestedRole), string(a.Status), a.CreatedAt,
	)
	return wrap("insert account", err)
}

func (r *AccountRepo) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.findOne(ctx, "find account by username", `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
}

func (r *AccountRepo) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.findOne(ctx, "find account by id", `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, wrap(op, err)
	}
	return a, nil
}

// List pendientes en orden de llegada; el resto, más recientes primero.
func (r *AccountRepo) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	var where, order string
	switch filter {
	case repository.AccountsPending:
		where, order = `status = 'pending'`, `created_at ASC, username`
	case repository.AccountsNonCustomer:
		where, order = `role <> 'customer'`, `created_at DESC, username`
	case repository.AccountsCustomer:
		where, order = `role = 'customer'`, `created_at DESC, username`
	default:
		return nil, domain.NewValidationError("filter", "filtro desconocido")
	}
	rows, err := r.q.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE `+where+` ORDER BY `+order)
	if err != nil {
		return nil, wrap("list accounts", err)
	}
	defer rows.Close()

	out := make([]*entity.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, wrap("scan account", err)
		}
		out = append(out, a)
	}
	return out, wrap("list accounts", rows.Err())
}

func (r *AccountRepo) UpdateRole(ctx context.Context, id string, role entity.Role, status entity.AccountStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE accounts SET role = $2, status = $3 WHERE id = $1`, id, string(role), string(status))
	if err != nil {
		return wrap("update account role", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountRepo) UpdatePassword(ctx context.Context, id, salt, hash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE accounts SET salt = $2, password_hash = $3 WHERE id = $1`, id, salt, hash)
	if err != nil {
		return wrap("update account password", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la cuenta; sus líneas de carrito caen por ON DELETE CASCADE.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return wrap("delete account", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var (
		a                       entity.Account
		role, requested, status string
	)
	if err := row.Scan(
		&a.ID, &a.FullName, &a.Email, &a.Username, &a.Salt, &a.PasswordHash,
		&role, &requested, &status, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	a.Role = entity.Role(role)
	a.RequestedRole = entity.Role(requested)
	a.Status = entity.AccountStatus(status)
	return &a, nil
}
