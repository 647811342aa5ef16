package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

var _ appstock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunStock inicia una transacción, ejecuta fn con un repositorio de ítems atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunStock(ctx context.Context, fn func(items repository.StockItemRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Persistence("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Persistence("commit transaction", err)
	}
	return nil
}
