package memory

import (
	"context"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

// TxRunner emula una transacción sobre los ítems de stock: si fn falla se restaura
// la instantánea tomada al inicio.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunStock ejecuta fn con un repositorio de ítems; Rollback = restaurar la instantánea.
func (r *TxRunner) RunStock(ctx context.Context, fn func(items repository.StockItemRepository) error) error {
	r.s.mu.RLock()
	snapshot := make(map[string]*entity.StockItem, len(r.s.items))
	for k, v := range r.s.items {
		snapshot[k] = copyItem(v)
	}
	seq := append([]string(nil), r.s.itemSeq...)
	r.s.mu.RUnlock()

	if err := fn(NewStockItemRepository(r.s)); err != nil {
		r.s.mu.Lock()
		r.s.items = snapshot
		r.s.itemSeq = seq
		r.s.mu.Unlock()
		return err
	}
	return nil
}
