package server

import "github.com/labstack/echo/v4"

func RegisterRoutes(e *echo.Echo, hs Handlers) {
	hs.Products.RegisterRoutes(e)
	hs.Orders.RegisterRoutes(e)
	hs.AdminProducts.RegisterRoutes(e)
	hs.AdminOrders.RegisterRoutes(e)
	hs.Dashboard.RegisterRoutes(e)
}
