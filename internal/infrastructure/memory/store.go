// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con STORAGE_DRIVER=memory para levantar la API sin PostgreSQL.
package memory

import (
	"sync"

	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
	items    map[string]*entity.StockItem
	itemSeq  []string // orden de inserción de SKUs
	products map[string]*entity.Product
	cart     map[string]*entity.CartLine
	cartSeq  []string
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*entity.Account),
		items:    make(map[string]*entity.StockItem),
		products: make(map[string]*entity.Product),
		cart:     make(map[string]*entity.CartLine),
	}
}

func copyAccount(a *entity.Account) *entity.Account {
	c := *a
	return &c
}

func copyItem(it *entity.StockItem) *entity.StockItem {
	c := *it
	if it.Quantity != nil {
		c.Quantity = entity.IntPtr(*it.Quantity)
	}
	if it.MinLevel != nil {
		c.MinLevel = entity.IntPtr(*it.MinLevel)
	}
	return &c
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func removeString(list []string, v string) []string {
	for i, s := range list {
		if s == v {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
