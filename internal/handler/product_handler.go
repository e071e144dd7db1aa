package handler

import (
	"net/http"
	"strconv"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 一覧のレスポンス
type ProductListResponse struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
}

// /products の読み取り系
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 読み取り系のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/all", h.all)
	e.GET("/products/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	q, err := parseQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	// limit 未指定なら画面の1ページ件数
	if q.Limit == 0 {
		q.Limit = h.uc.State().ItemsPerPage
	}

	page, err := h.uc.ListProducts(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ProductListResponse{Products: page.Products, Total: page.Total})
}

func (h *ProductHandler) all(c echo.Context) error {
	page, err := h.uc.FetchAllProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ProductListResponse{Products: page.Products, Total: page.Total})
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type queryError string

func (e queryError) Error() string { return string(e) }

// クエリ文字列を ProductQuery にする。空の値は未指定。
func parseQuery(c echo.Context) (model.ProductQuery, error) {
	q := model.ProductQuery{
		Category:      c.QueryParam("category"),
		Search:        c.QueryParam("search"),
		SortBy:        model.SortKey(c.QueryParam("sort_by")),
		SortDirection: model.SortDirection(c.QueryParam("sort_direction")),
	}

	var err error
	if q.Page, err = intParam(c, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = intParam(c, "limit"); err != nil {
		return q, err
	}
	if q.MinPrice, err = priceParam(c, "min_price"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = priceParam(c, "max_price"); err != nil {
		return q, err
	}
	return q, nil
}

func intParam(c echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, queryError("invalid " + name)
	}
	return n, nil
}

func priceParam(c echo.Context, name string) (*decimal.Decimal, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, queryError("invalid " + name)
	}
	return &d, nil
}
