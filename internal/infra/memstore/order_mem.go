package memstore

import (
	"context"
	"sort"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type OrderStore struct {
	s *Store
}

func (os *OrderStore) Create(ctx context.Context, order model.Order, items []model.OrderItem) (int64, error) {
	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	// 先に在庫を確かめてから書く（途中で失敗して中途半端に残さない）。
	// 同じ商品が複数行に出ることがあるので商品ごとの合計数量で見る
	required := map[int64]int64{}
	for _, it := range items {
		required[it.ProductID] += it.Quantity
	}
	for id, qty := range required {
		i, ok := os.s.indexOf(id)
		if !ok {
			return 0, repo.ErrNotFound
		}
		if os.s.products[i].StockQuantity < qty {
			return 0, repo.ErrInsufficientStock
		}
	}

	order.ID = os.s.nextOrderID
	os.s.nextOrderID++

	stored := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		it.ID = os.s.nextItemID
		os.s.nextItemID++
		it.OrderID = order.ID
		stored = append(stored, it)

		if err := os.s.decrementStockLocked(it.ProductID, it.Quantity); err != nil {
			return 0, err
		}
	}

	os.s.orders = append(os.s.orders, order)
	os.s.orderItems[order.ID] = stored
	return order.ID, nil
}

func (os *OrderStore) FindByID(ctx context.Context, orderID int64) (model.Order, []model.OrderItem, error) {
	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	for _, o := range os.s.orders {
		if o.ID == orderID {
			items := append([]model.OrderItem{}, os.s.orderItems[orderID]...)
			return o, items, nil
		}
	}
	return model.Order{}, nil, repo.ErrNotFound
}

func (os *OrderStore) ListAll(ctx context.Context) ([]model.Order, error) {
	os.s.mu.Lock()
	defer os.s.mu.Unlock()
	return sortNewest(append([]model.Order{}, os.s.orders...)), nil
}

func (os *OrderStore) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	out := []model.Order{}
	for _, o := range os.s.orders {
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	return sortNewest(out), nil
}

func (os *OrderStore) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	for i := range os.s.orders {
		if os.s.orders[i].ID == orderID {
			os.s.orders[i].Status = status
			os.s.orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repo.ErrNotFound
}

func sortNewest(orders []model.Order) []model.Order {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders
}
