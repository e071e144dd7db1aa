package handler

import (
	"fmt"
	"net/http"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PUT /state/pagination のボディ（どちらも任意）
type PaginationRequest struct {
	CurrentPage  *int `json:"current_page"`
	ItemsPerPage *int `json:"items_per_page"`
}

// 画面状態（Store）の参照と操作
type StateHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewStateHandler(uc *usecase.ProductUsecase) *StateHandler {
	return &StateHandler{uc: uc}
}

func (h *StateHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/state")
	g.GET("", h.snapshot)
	g.DELETE("/selected", h.clearSelected)
	g.PUT("/pagination", h.pagination)
}

func (h *StateHandler) snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.State())
}

func (h *StateHandler) clearSelected(c echo.Context) error {
	h.uc.ClearSelected()
	return c.JSON(http.StatusOK, h.uc.State())
}

func (h *StateHandler) pagination(c echo.Context) error {
	var req PaginationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if (req.CurrentPage != nil && *req.CurrentPage < 1) || (req.ItemsPerPage != nil && *req.ItemsPerPage < 1) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "page values must be >= 1"})
	}
	if req.ItemsPerPage != nil && *req.ItemsPerPage > model.MaxLimit {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("items_per_page must be <= %d", model.MaxLimit)})
	}

	if req.ItemsPerPage != nil {
		h.uc.SetItemsPerPage(*req.ItemsPerPage)
	}
	if req.CurrentPage != nil {
		h.uc.SetCurrentPage(*req.CurrentPage)
	}
	return c.JSON(http.StatusOK, h.uc.State())
}
