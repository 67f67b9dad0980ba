package fallback

import (
	"context"

	"go.uber.org/zap"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// OrderStore は OrderRepository を一次→二次の順で試す
type OrderStore struct {
	primary   repo.OrderRepository
	secondary repo.OrderRepository
	log       *zap.Logger
}

func NewOrderStore(primary, secondary repo.OrderRepository, log *zap.Logger) *OrderStore {
	return &OrderStore{primary: primary, secondary: secondary, log: log}
}

func (s *OrderStore) failover(op string, err error) {
	s.log.Warn("primary store unavailable, using fallback",
		zap.String("op", op), zap.Error(err))
}

func (s *OrderStore) Create(ctx context.Context, order model.Order, items []model.OrderItem) (int64, error) {
	if s.primary != nil {
		id, err := s.primary.Create(ctx, order, items)
		if err == nil {
			return id, nil
		}
		if !shouldFailover(err) {
			return 0, err
		}
		s.failover("order.create", err)
	}
	return s.secondary.Create(ctx, order, items)
}

func (s *OrderStore) FindByID(ctx context.Context, orderID int64) (model.Order, []model.OrderItem, error) {
	if s.primary != nil {
		o, items, err := s.primary.FindByID(ctx, orderID)
		if err == nil {
			return o, items, nil
		}
		if !shouldFailover(err) {
			return model.Order{}, nil, err
		}
		s.failover("order.find", err)
	}
	return s.secondary.FindByID(ctx, orderID)
}

func (s *OrderStore) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.primary != nil {
		orders, err := s.primary.ListAll(ctx)
		if err == nil {
			return orders, nil
		}
		if !shouldFailover(err) {
			return nil, err
		}
		s.failover("order.list", err)
	}
	return s.secondary.ListAll(ctx)
}

func (s *OrderStore) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	if s.primary != nil {
		orders, err := s.primary.ListByEmail(ctx, email)
		if err == nil {
			return orders, nil
		}
		if !shouldFailover(err) {
			return nil, err
		}
		s.failover("order.list_by_email", err)
	}
	return s.secondary.ListByEmail(ctx, email)
}

func (s *OrderStore) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.primary != nil {
		err := s.primary.UpdateStatus(ctx, orderID, status)
		if err == nil || !shouldFailover(err) {
			return err
		}
		s.failover("order.update_status", err)
	}
	return s.secondary.UpdateStatus(ctx, orderID, status)
}
