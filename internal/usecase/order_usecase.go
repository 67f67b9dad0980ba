package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"shop/internal/domain/model"
	"shop/internal/payment"
	repo "shop/internal/repository"
)

type OrderUsecase struct {
	orders   repo.OrderRepository
	payments payment.Provider
}

func NewOrderUsecase(orders repo.OrderRepository, payments payment.Provider) *OrderUsecase {
	return &OrderUsecase{orders: orders, payments: payments}
}

type CustomerInfo struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

type PlaceOrderInput struct {
	Cart         []model.CartItem
	CustomerInfo CustomerInfo
}

type PlaceOrderOutput struct {
	OrderID      int64  `json:"order_id"`
	ClientSecret string `json:"client_secret"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if len(in.Cart) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	if strings.TrimSpace(in.CustomerInfo.Name) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.CustomerInfo.Email) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "email required")
	}
	if strings.TrimSpace(in.CustomerInfo.Address) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "address required")
	}
	if strings.TrimSpace(in.CustomerInfo.Phone) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "phone required")
	}
	for _, it := range in.Cart {
		if it.Product.ID <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product")
		}
		if it.Quantity < 1 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	// 合計は作成時点で確定。以後は再計算しない
	total := model.CartSubtotal(in.Cart)

	intent, err := u.payments.CreateIntent(ctx, total, "usd", payment.Metadata{
		CustomerEmail: in.CustomerInfo.Email,
		CustomerName:  in.CustomerInfo.Name,
	})
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "payment error")
	}

	//明細は注文時点のスナップショット
	items := make([]model.OrderItem, 0, len(in.Cart))
	for _, ci := range in.Cart {
		items = append(items, model.OrderItem{
			ProductID:    ci.Product.ID,
			ProductName:  ci.Product.Name,
			ProductPrice: ci.Product.Price,
			Quantity:     ci.Quantity,
		})
	}

	now := time.Now()
	orderID, err := u.orders.Create(ctx, model.Order{
		UserEmail:       in.CustomerInfo.Email,
		UserName:        in.CustomerInfo.Name,
		UserAddress:     in.CustomerInfo.Address,
		UserPhone:       in.CustomerInfo.Phone,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		StripePaymentID: intent.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, items)
	if errors.Is(err, repo.ErrInsufficientStock) {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}
	if errors.Is(err, repo.ErrNotFound) {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PlaceOrderOutput{
		OrderID:      orderID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

type OrderDetailOutput struct {
	model.Order
	Items []model.OrderItem `json:"items"`
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, items, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return OrderDetailOutput{Order: o, Items: items}, nil
}

func (u *OrderUsecase) ListOrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "email required")
	}

	orders, err := u.orders.ListByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// 管理画面用。明細は付けない
func (u *OrderUsecase) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(status) == "" {
		return NewHTTPError(http.StatusBadRequest, "status required")
	}
	st, ok := model.ParseOrderStatus(status)
	if !ok {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orders.UpdateStatus(ctx, orderID, st)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
