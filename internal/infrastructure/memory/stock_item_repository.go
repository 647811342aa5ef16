package memory

import (
	"context"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación en memoria de StockItemRepository. ListAll respeta el orden de alta.
type StockItemRepo struct {
	s *Store
}

// NewStockItemRepository construye el repositorio sobre el almacén.
func NewStockItemRepository(s *Store) *StockItemRepo {
	return &StockItemRepo{s: s}
}

func (r *StockItemRepo) Create(_ context.Context, item *entity.StockItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.insertLocked(item)
	return nil
}

func (r *StockItemRepo) CreateIfAbsent(_ context.Context, item *entity.StockItem) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.SKU]; ok {
		return false, nil
	}
	r.insertLocked(item)
	return true, nil
}

func (r *StockItemRepo) insertLocked(item *entity.StockItem) {
	r.s.items[item.SKU] = copyItem(item)
	r.s.itemSeq = append(r.s.itemSeq, item.SKU)
}

func (r *StockItemRepo) Update(_ context.Context, item *entity.StockItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.SKU]; !ok {
		return domain.ErrNotFound
	}
	r.s.items[item.SKU] = copyItem(item)
	return nil
}

func (r *StockItemRepo) Delete(_ context.Context, sku string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[sku]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, sku)
	r.s.itemSeq = removeString(r.s.itemSeq, sku)
	return nil
}

func (r *StockItemRepo) GetBySKU(_ context.Context, sku string) (*entity.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[sku]
	if !ok {
		return nil, nil
	}
	return copyItem(it), nil
}

func (r *StockItemRepo) ListAll(_ context.Context) ([]*entity.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StockItem, 0, len(r.s.itemSeq))
	for _, sku := range r.s.itemSeq {
		out = append(out, copyItem(r.s.items[sku]))
	}
	return out, nil
}
