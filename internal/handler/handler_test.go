package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/domain/model"
	"shop/internal/handler"
	"shop/internal/infra/memstore"
	"shop/internal/payment"
	"shop/internal/server"
	"shop/internal/usecase"
)

// インメモリストア直結でAPI全体を立てる
func newTestServer() *server.Handlers {
	mem := memstore.New()

	catalogUC := usecase.NewCatalogUsecase(mem.Products())
	orderUC := usecase.NewOrderUsecase(mem.Orders(), payment.NewSimulatedProvider())
	dashboardUC := usecase.NewDashboardUsecase(mem.Products(), mem.Orders())

	return &server.Handlers{
		Products:      handler.NewProductHandler(catalogUC),
		Orders:        handler.NewOrderHandler(orderUC),
		AdminProducts: handler.NewAdminProductHandler(catalogUC),
		AdminOrders:   handler.NewAdminOrderHandler(orderUC),
		Dashboard:     handler.NewDashboardHandler(dashboardUC),
	}
}

func doJSON(t *testing.T, hs *server.Handlers, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := server.New(*hs)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProductsEndpoint_ListAndFilter(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var all []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 12)

	rec = doJSON(t, hs, http.MethodGet, "/products?category=Electronics&featured=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var filtered []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	assert.Len(t, filtered, 3)
}

func TestProductsEndpoint_Detail(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var p model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Wireless Headphones", p.Name)

	rec = doJSON(t, hs, http.MethodGet, "/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProductsEndpoint_Create(t *testing.T) {
	hs := newTestServer()

	// priceは文字列でも数値でも受ける
	rec := doJSON(t, hs, http.MethodPost, "/admin/products",
		`{"name":"Desk Chair","price":"159.99","category":"Home"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out handler.ProductCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, int64(13), out.ID)

	rec = doJSON(t, hs, http.MethodPost, "/admin/products",
		`{"price":10,"category":"Home"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminProductsEndpoint_PartialUpdate(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodPatch, "/admin/products/1", `{"price":149.99}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, hs, http.MethodGet, "/products/1", "")
	var p model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "149.99", p.Price.String())
	// 他のフィールドは元のまま
	assert.Equal(t, "Wireless Headphones", p.Name)

	// 空ボディは400
	rec = doJSON(t, hs, http.MethodPatch, "/admin/products/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminProductsEndpoint_Delete(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodDelete, "/admin/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, hs, http.MethodDelete, "/admin/products/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

const orderBody = `{
  "cart": [
    {"product": {"id": 1, "name": "Wireless Headphones", "price": 199.99}, "quantity": 2},
    {"product": {"id": 2, "name": "Smart Watch", "price": "299.99"}, "quantity": 1}
  ],
  "customerInfo": {"name": "Taro", "email": "taro@example.com", "address": "1-2-3 Chiyoda", "phone": "090-0000-0000"}
}`

func TestOrdersEndpoint_CreateAndTrack(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodPost, "/orders", orderBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out usecase.PlaceOrderOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(1), out.OrderID)
	assert.NotEmpty(t, out.ClientSecret)

	// 明細つきで引ける
	rec = doJSON(t, hs, http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail usecase.OrderDetailOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "699.97", detail.TotalAmount.String())
	assert.Len(t, detail.Items, 2)

	// メールでの追跡
	rec = doJSON(t, hs, http.MethodGet, "/orders?email=taro@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	// 在庫が減っている
	rec = doJSON(t, hs, http.MethodGet, "/products/1", "")
	var p model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int64(48), p.StockQuantity)
}

func TestOrdersEndpoint_EmptyCart(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodPost, "/orders",
		`{"cart": [], "customerInfo": {"name":"a","email":"b","address":"c","phone":"d"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrdersEndpoint_EmailRequired(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminOrdersEndpoint_ListAndStatus(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodPost, "/orders", orderBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, hs, http.MethodGet, "/admin/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusPending, orders[0].Status)

	rec = doJSON(t, hs, http.MethodPatch, "/admin/orders/1", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// enum外は400
	rec = doJSON(t, hs, http.MethodPatch, "/admin/orders/1", `{"status":"refunded"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 存在しない注文は404
	rec = doJSON(t, hs, http.MethodPatch, "/admin/orders/99", `{"status":"shipped"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDashboardEndpoint(t *testing.T) {
	hs := newTestServer()

	rec := doJSON(t, hs, http.MethodPost, "/orders", orderBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, hs, http.MethodGet, "/admin/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out usecase.DashboardOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 12, out.TotalProducts)
	assert.Equal(t, 1, out.TotalOrders)
	assert.Equal(t, "699.97", out.TotalRevenue.String())
	assert.Equal(t, 1, out.PendingOrders)
}
