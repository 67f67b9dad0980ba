package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type CatalogUsecase struct {
	products repo.ProductRepository
}

// DI
func NewCatalogUsecase(products repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Category string
	Featured bool
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// 絞り込みはそのままストアに渡す。矛盾した価格帯（min > max）も
// エラーにはせず、単に空の結果になる
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	items, err := u.products.List(ctx, repo.ProductFilter{
		Category: in.Category,
		Featured: in.Featured,
		Search:   strings.TrimSpace(in.Search),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	ImageURL      string
	Category      string
	StockQuantity int64
	Featured      bool
}

// name/price/category は必須。それ以外は省略時のデフォルトで埋まる
func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if !in.Price.IsPositive() {
		return 0, NewHTTPError(http.StatusBadRequest, "price required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "category required")
	}
	if in.StockQuantity < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	now := time.Now()
	p, err := u.products.Create(ctx, model.Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
		Category:      in.Category,
		StockQuantity: in.StockQuantity,
		Featured:      in.Featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

// patchに入っているフィールドだけ更新する
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, productID int64, patch repo.ProductPatch) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if patch.IsEmpty() {
		return NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	if patch.StockQuantity != nil && *patch.StockQuantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	err := u.products.Update(ctx, productID, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.products.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
