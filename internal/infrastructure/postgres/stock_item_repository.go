package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `sku, name, category, subcategory, quantity, min_level, unit, price, description, is_service, duration, service_cost`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

func itemArgs(it *entity.StockItem) []any {
	return []any{
		it.SKU, it.Name, it.Category, it.Subcategory, it.Quantity, it.MinLevel,
		it.Unit, it.Price, it.Description, it.IsService, it.Duration, it.ServiceCost,
	}
}

func (r *StockItemRepo) Create(ctx context.Context, it *entity.StockItem) error {
	query := `INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query, itemArgs(it)...)
	return wrap("insert stock item", err)
}

// CreateIfAbsent inserta con ON CONFLICT DO NOTHING; RowsAffected indica si entró.
func (r *StockItemRepo) CreateIfAbsent(ctx context.Context, it *entity.StockItem) (bool, error) {
	query := `INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (sku) DO NOTHING`
	tag, err := r.q.Exec(ctx, query, itemArgs(it)...)
	if err != nil {
		return false, wrap("insert stock item if absent", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StockItemRepo) Update(ctx context.Context, it *entity.StockItem) error {
	query := `UPDATE stock_items SET
		name = $2, category = $3, subcategory = $4, quantity = $5, min_level = $6,
		unit = $7, price = $8, description = $9, is_service = $10, duration = $11, service_cost = $12
		WHERE sku = $1`
	tag, err := r.q.Exec(ctx, query, itemArgs(it)...)
	if err != nil {
		return wrap("update stock item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockItemRepo) Delete(ctx context.Context, sku string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_items WHERE sku = $1`, sku)
	if err != nil {
		return wrap("delete stock item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.StockItem, error) {
	it, err := scanStockItem(r.q.QueryRow(ctx, `SELECT `+stockItemColumns+` FROM stock_items WHERE sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get stock item", err)
	}
	return it, nil
}

// ListAll en orden de alta.
func (r *StockItemRepo) ListAll(ctx context.Context) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockItemColumns+` FROM stock_items ORDER BY position`)
	if err != nil {
		return nil, wrap("list stock items", err)
	}
	defer rows.Close()

	out := make([]*entity.StockItem, 0)
	for rows.Next() {
		it, err := scanStockItem(rows)
		if err != nil {
			return nil, wrap("scan stock item", err)
		}
		out = append(out, it)
	}
	return out, wrap("list stock items", rows.Err())
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var it entity.StockItem
	if err := row.Scan(
		&it.SKU, &it.Name, &it.Category, &it.Subcategory, &it.Quantity, &it.MinLevel,
		&it.Unit, &it.Price, &it.Description, &it.IsService, &it.Duration, &it.ServiceCost,
	); err != nil {
		return nil, err
	}
	return &it, nil
}
