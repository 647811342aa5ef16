package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stockmonitor/internal/domain"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.CartRepository    = (*CartRepo)(nil)
)

// ProductRepo catálogo en memoria.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio sobre el almacén.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[p.ID] = copyProduct(p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return copyProduct(p), nil
}

func (r *ProductRepo) List(_ context.Context, category string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if category == "" || p.Category == category {
			out = append(out, copyProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *ProductRepo) Categories(_ context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range r.s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.products), nil
}

// CartRepo carrito en memoria.
type CartRepo struct {
	s *Store
}

// NewCartRepository construye el repositorio sobre el almacén.
func NewCartRepository(s *Store) *CartRepo {
	return &CartRepo{s: s}
}

func (r *CartRepo) AddOrMerge(_ context.Context, line *entity.CartLine) (*entity.CartLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range r.s.cartSeq {
		existing := r.s.cart[id]
		if existing.AccountID == line.AccountID && existing.ProductID == line.ProductID {
			existing.Quantity += line.Quantity
			c := *existing
			return &c, nil
		}
	}
	c := *line
	r.s.cart[line.ID] = &c
	r.s.cartSeq = append(r.s.cartSeq, line.ID)
	out := c
	return &out, nil
}

func (r *CartRepo) ListByAccount(_ context.Context, accountID string) ([]*entity.CartLineView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.CartLineView, 0)
	for _, id := range r.s.cartSeq {
		l := r.s.cart[id]
		if l.AccountID != accountID {
			continue
		}
		p, ok := r.s.products[l.ProductID]
		if !ok {
			continue
		}
		out = append(out, &entity.CartLineView{CartLine: *l, ProductName: p.Name, UnitPrice: p.Price})
	}
	return out, nil
}

func (r *CartRepo) GetLine(_ context.Context, id string) (*entity.CartLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.cart[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r *CartRepo) DeleteLine(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cart[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.cart, id)
	r.s.cartSeq = removeString(r.s.cartSeq, id)
	return nil
}

func (r *CartRepo) Clear(_ context.Context, accountID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.cartSeq[:0]
	for _, id := range r.s.cartSeq {
		if r.s.cart[id].AccountID == accountID {
			delete(r.s.cart, id)
			continue
		}
		kept = append(kept, id)
	}
	r.s.cartSeq = kept
	return nil
}
