package handler

import (
	"net/http"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 削除のレスポンス
type DeleteResponse struct {
	ID string `json:"id"`
}

// ベアラーが要る /products の変更系とベンダー一覧
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// 変更系を登録。トークンは middleware.Bearer が context に載せておく。
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products/vendor", h.vendorProducts)
	e.POST("/products", h.createProduct)
	e.PUT("/products/:id", h.updateProduct)
	e.DELETE("/products/:id", h.deleteProduct)
}

func (h *AdminProductHandler) vendorProducts(c echo.Context) error {
	products, err := h.uc.FetchVendorProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ProductListResponse{Products: products, Total: int64(len(products))})
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req model.CreateProductDto
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	var req model.UpdateProductDto
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	id, err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DeleteResponse{ID: id})
}
