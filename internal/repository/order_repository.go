package repository

import (
	"context"

	"shop/internal/domain/model"
)

type OrderRepository interface {
	// 注文＋明細を保存し、明細ぶんの在庫を減らす（一つの論理操作）
	Create(ctx context.Context, order model.Order, items []model.OrderItem) (int64, error)

	FindByID(ctx context.Context, orderID int64) (model.Order, []model.OrderItem, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
