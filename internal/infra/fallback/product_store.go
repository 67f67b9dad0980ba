package fallback

import (
	"context"

	"go.uber.org/zap"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// ProductStore は ProductRepository を一次→二次の順で試す。
// primaryがnilのとき（起動時からDBなし）は常に二次側を使う。
type ProductStore struct {
	primary   repo.ProductRepository
	secondary repo.ProductRepository
	log       *zap.Logger
}

func NewProductStore(primary, secondary repo.ProductRepository, log *zap.Logger) *ProductStore {
	return &ProductStore{primary: primary, secondary: secondary, log: log}
}

func (s *ProductStore) failover(op string, err error) {
	s.log.Warn("primary store unavailable, using fallback",
		zap.String("op", op), zap.Error(err))
}

func (s *ProductStore) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	if s.primary != nil {
		items, err := s.primary.List(ctx, f)
		if err == nil {
			return items, nil
		}
		if !shouldFailover(err) {
			return nil, err
		}
		s.failover("product.list", err)
	}
	return s.secondary.List(ctx, f)
}

func (s *ProductStore) FindByID(ctx context.Context, id int64) (model.Product, error) {
	if s.primary != nil {
		p, err := s.primary.FindByID(ctx, id)
		if err == nil {
			return p, nil
		}
		if !shouldFailover(err) {
			return model.Product{}, err
		}
		s.failover("product.find", err)
	}
	return s.secondary.FindByID(ctx, id)
}

func (s *ProductStore) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if s.primary != nil {
		created, err := s.primary.Create(ctx, p)
		if err == nil {
			return created, nil
		}
		if !shouldFailover(err) {
			return model.Product{}, err
		}
		s.failover("product.create", err)
	}
	return s.secondary.Create(ctx, p)
}

func (s *ProductStore) Update(ctx context.Context, id int64, patch repo.ProductPatch) error {
	if s.primary != nil {
		err := s.primary.Update(ctx, id, patch)
		if err == nil || !shouldFailover(err) {
			return err
		}
		s.failover("product.update", err)
	}
	return s.secondary.Update(ctx, id, patch)
}

func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	if s.primary != nil {
		err := s.primary.Delete(ctx, id)
		if err == nil || !shouldFailover(err) {
			return err
		}
		s.failover("product.delete", err)
	}
	return s.secondary.Delete(ctx, id)
}

func (s *ProductStore) DecrementStock(ctx context.Context, id int64, qty int64) error {
	if s.primary != nil {
		err := s.primary.DecrementStock(ctx, id, qty)
		if err == nil || !shouldFailover(err) {
			return err
		}
		s.failover("product.decrement_stock", err)
	}
	return s.secondary.DecrementStock(ctx, id, qty)
}
