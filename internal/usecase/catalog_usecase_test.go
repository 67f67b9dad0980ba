package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"
)

func assertErrContains(t *testing.T, err error, msg string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), msg)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, id int64, patch repo.ProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *productRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *productRepoMock) DecrementStock(ctx context.Context, id int64, qty int64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func TestCatalogUsecase_ListProducts_ContradictoryBoundsYieldEmpty(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	// min > max はエラーではなく空の結果
	want := repo.ProductFilter{MinPrice: decPtr("100"), MaxPrice: decPtr("10")}
	pRepo.On("List", mock.Anything, want).Return([]model.Product{}, nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		MinPrice: decPtr("100"),
		MaxPrice: decPtr("10"),
	})
	require.NoError(t, err)
	assert.Empty(t, out)

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_ListProducts_PassesFilter(t *testing.T) {
	ctx := context.Background()
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	want := repo.ProductFilter{
		Category: model.CategorySports,
		Featured: true,
		Search:   "yoga",
	}
	pRepo.On("List", mock.Anything, want).Return([]model.Product{{ID: 7, Name: "Yoga Mat"}}, nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{
		Category: model.CategorySports,
		Featured: true,
		Search:   "  yoga ",
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_GetProduct_NotFound(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), 99)
	assertStatus(t, err, 404)
}

func TestCatalogUsecase_CreateProduct_RequiredFields(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{Price: dec("10"), Category: "Home"})
	assertErrContains(t, err, "name required")

	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{Name: "Mug", Category: "Home"})
	assertErrContains(t, err, "price required")

	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{Name: "Mug", Price: dec("10")})
	assertErrContains(t, err, "category required")

	pRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_CreateProduct_Success(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Mug" &&
			p.Price.Equal(dec("12.50")) &&
			p.Category == model.CategoryHome &&
			!p.CreatedAt.IsZero() &&
			!p.UpdatedAt.IsZero()
	})).Return(model.Product{ID: 42}, nil)

	id, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:     " Mug ",
		Price:    dec("12.50"),
		Category: model.CategoryHome,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_UpdateProduct_EmptyPatch(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	err := uc.UpdateProduct(context.Background(), 1, repo.ProductPatch{})
	assertErrContains(t, err, "no fields to update")
	assertStatus(t, err, 400)

	pRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogUsecase_UpdateProduct_NotFound(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	name := "Mug"
	pRepo.On("Update", mock.Anything, int64(99), mock.Anything).Return(repo.ErrNotFound)

	err := uc.UpdateProduct(context.Background(), 99, repo.ProductPatch{Name: &name})
	assertStatus(t, err, 404)
}

func TestCatalogUsecase_UpdateProduct_PartialPatchPassesThrough(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	price := dec("15.00")
	patch := repo.ProductPatch{Price: &price}
	pRepo.On("Update", mock.Anything, int64(3), patch).Return(nil)

	require.NoError(t, uc.UpdateProduct(context.Background(), 3, patch))
	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_DeleteProduct_NotFound(t *testing.T) {
	pRepo := new(productRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	err := uc.DeleteProduct(context.Background(), 99)
	assertStatus(t, err, 404)
}
