package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"shop/internal/domain/model"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// 一覧の絞り込み。指定された条件は全部ANDで効く
type ProductFilter struct {
	Category string
	Featured bool
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// 部分更新。nilのフィールドは触らない
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	ImageURL      *string
	Category      *string
	StockQuantity *int64
	Featured      *bool
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.ImageURL == nil && p.Category == nil && p.StockQuantity == nil &&
		p.Featured == nil
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, id int64, patch ProductPatch) error
	Delete(ctx context.Context, id int64) error

	// 在庫が足りないときは ErrInsufficientStock
	DecrementStock(ctx context.Context, id int64, qty int64) error
}
