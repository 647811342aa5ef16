package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// AddOrMerge inserta la línea o suma la cantidad a la existente en una sola sentencia.
func (r *CartRepo) AddOrMerge(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error) {
	query := `
		INSERT INTO cart_lines (id, account_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, product_id)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
		RETURNING id, account_id, product_id, quantity, added_at`
	var out entity.CartLine
	err := r.q.QueryRow(ctx, query, line.ID, line.AccountID, line.ProductID, line.Quantity, line.AddedAt).Scan(
		&out.ID, &out.AccountID, &out.ProductID, &out.Quantity, &out.AddedAt,
	)
	if err != nil {
		return nil, wrap("upsert cart line", err)
	}
	return &out, nil
}

func (r *CartRepo) ListByAccount(ctx context.Context, accountID string) ([]*entity.CartLineView, error) {
	rows, err := r.q.Query(ctx, `
		SELECT c.id, c.account_id, c.product_id, c.quantity, c.added_at, p.name, p.price
		FROM cart_lines c
		JOIN products p ON p.id = c.product_id
		WHERE c.account_id = $1
		ORDER BY c.added_at, c.id`, accountID)
	if err != nil {
		return nil, wrap("list cart", err)
	}
	defer rows.Close()

	out := make([]*entity.CartLineView, 0)
	for rows.Next() {
		var v entity.CartLineView
		if err := rows.Scan(&v.ID, &v.AccountID, &v.ProductID, &v.Quantity, &v.AddedAt, &v.ProductName, &v.UnitPrice); err != nil {
			return nil, wrap("scan cart line", err)
		}
		out = append(out, &v)
	}
	return out, wrap("list cart", rows.Err())
}

func (r *CartRepo) GetLine(ctx context.Context, id string) (*entity.CartLine, error) {
	var l entity.CartLine
	err := r.q.QueryRow(ctx, `SELECT id, account_id, product_id, quantity, added_at FROM cart_lines WHERE id = $1`, id).Scan(
		&l.ID, &l.AccountID, &l.ProductID, &l.Quantity, &l.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, wrap("get cart line", err)
	}
	return &l, nil
}

func (r *CartRepo) DeleteLine(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1`, id)
	if err != nil {
		return wrap("delete cart line", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, accountID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cart_lines WHERE account_id = $1`, accountID)
	return wrap("clear cart", err)
}
