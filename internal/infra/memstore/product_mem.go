package memstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type ProductStore struct {
	s *Store
}

func (ps *ProductStore) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	out := make([]model.Product, 0, len(ps.s.products))
	for _, p := range ps.s.products {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}

	// 新しい順
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func matches(p model.Product, f repo.ProductFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Featured && !p.Featured {
		return false
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		needle := strings.ToLower(s)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

func (ps *ProductStore) FindByID(ctx context.Context, id int64) (model.Product, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	i, ok := ps.s.indexOf(id)
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return ps.s.products[i], nil
}

func (ps *ProductStore) Create(ctx context.Context, p model.Product) (model.Product, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	// 既存最大ID+1
	var maxID int64
	for _, q := range ps.s.products {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	p.ID = maxID + 1
	ps.s.products = append(ps.s.products, p)
	return p, nil
}

func (ps *ProductStore) Update(ctx context.Context, id int64, patch repo.ProductPatch) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	i, ok := ps.s.indexOf(id)
	if !ok {
		return repo.ErrNotFound
	}

	p := &ps.s.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (ps *ProductStore) Delete(ctx context.Context, id int64) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	i, ok := ps.s.indexOf(id)
	if !ok {
		return repo.ErrNotFound
	}
	ps.s.products = append(ps.s.products[:i], ps.s.products[i+1:]...)
	return nil
}

func (ps *ProductStore) DecrementStock(ctx context.Context, id int64, qty int64) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()
	return ps.s.decrementStockLocked(id, qty)
}

// 呼び出し側がロックを握っている前提
func (s *Store) decrementStockLocked(id int64, qty int64) error {
	i, ok := s.indexOf(id)
	if !ok {
		return repo.ErrNotFound
	}
	if s.products[i].StockQuantity < qty {
		return repo.ErrInsufficientStock
	}
	s.products[i].StockQuantity -= qty
	s.products[i].UpdatedAt = time.Now()
	return nil
}

func (s *Store) indexOf(id int64) (int, bool) {
	for i, p := range s.products {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}
