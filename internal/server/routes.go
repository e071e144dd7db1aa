package server

import (
	"github.com/Doggod727/online-shopping-system-sub001/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録するハンドラ一式
type Handlers struct {
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	State        *handler.StateHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Product.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e)
	h.State.RegisterRoutes(e)
}
