// Package memstore はDBに届かないときの代替ストア。
// プロセス内だけで生きる固定シードのデータセットを持つ。
package memstore

import (
	"sync"
	"time"

	"shop/internal/domain/model"
)

type Store struct {
	mu sync.Mutex

	products    []model.Product
	orders      []model.Order
	orderItems  map[int64][]model.OrderItem
	nextOrderID int64
	nextItemID  int64
}

// New はシード済みストアを作る。プロセスごとに一度だけ作って注入する
func New() *Store {
	return &Store{
		products:    seedProducts(time.Now()),
		orders:      []model.Order{},
		orderItems:  map[int64][]model.OrderItem{},
		nextOrderID: 1,
		nextItemID:  1,
	}
}

// ProductRepository実装としてのビュー
func (s *Store) Products() *ProductStore {
	return &ProductStore{s: s}
}

// OrderRepository実装としてのビュー
func (s *Store) Orders() *OrderStore {
	return &OrderStore{s: s}
}
