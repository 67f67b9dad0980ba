package usecase

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type DashboardUsecase struct {
	products repo.ProductRepository
	orders   repo.OrderRepository
}

func NewDashboardUsecase(products repo.ProductRepository, orders repo.OrderRepository) *DashboardUsecase {
	return &DashboardUsecase{products: products, orders: orders}
}

type DashboardOutput struct {
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingOrders int             `json:"pending_orders"`
}

// 毎回フルスキャンで集計する。件数が小さい前提
func (u *DashboardUsecase) Summary(ctx context.Context) (DashboardOutput, error) {
	products, err := u.products.List(ctx, repo.ProductFilter{})
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	revenue := decimal.Zero
	pending := 0
	for _, o := range orders {
		revenue = revenue.Add(o.TotalAmount)
		// pending/processing を「未処理」として数える
		if o.Status == model.OrderStatusPending || o.Status == model.OrderStatusProcessing {
			pending++
		}
	}

	return DashboardOutput{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalRevenue:  revenue,
		PendingOrders: pending,
	}, nil
}
