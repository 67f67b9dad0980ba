package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shop/internal/handler"
)

type Handlers struct {
	Products      *handler.ProductHandler
	Orders        *handler.OrderHandler
	AdminProducts *handler.AdminProductHandler
	AdminOrders   *handler.AdminOrderHandler
	Dashboard     *handler.DashboardHandler
}

func New(hs Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	RegisterRoutes(e, hs)
	return e
}
