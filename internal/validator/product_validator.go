package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

type productValidator struct{}

// Usecaseは interface を依存注入
func NewProductValidator() usecase.ProductValidator {
	return &productValidator{}
}

// 一覧条件を検証（送信前）
func (v *productValidator) ValidateQuery(q model.ProductQuery) error {
	if q.Page < 0 {
		return invalid("page must be >= 1")
	}
	if q.Limit < 0 || q.Limit > model.MaxLimit {
		return invalid(fmt.Sprintf("limit must be between 1 and %d", model.MaxLimit))
	}
	if q.MinPrice != nil && q.MinPrice.IsNegative() {
		return invalid("min_price must be >= 0")
	}
	if q.MaxPrice != nil && q.MaxPrice.IsNegative() {
		return invalid("max_price must be >= 0")
	}
	if q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice) {
		return invalid("min_price must be <= max_price")
	}

	// sort_by は未知でも並べ替えないだけなので検証しない
	switch q.SortDirection {
	case "", model.SortAsc, model.SortDesc:
	default:
		return invalid("invalid sort_direction")
	}
	return nil
}

// 商品IDの必須チェック
func (v *productValidator) ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("product id required")
	}
	return nil
}

// 作成の入力を検証
func (v *productValidator) ValidateCreate(dto model.CreateProductDto) error {
	if strings.TrimSpace(dto.Name) == "" {
		return invalid("name required")
	}
	if dto.Price.IsNegative() {
		return invalid("price must be >= 0")
	}
	if dto.Stock < 0 {
		return invalid("stock must be >= 0")
	}
	return nil
}

// 更新の入力を検証（指定された項目だけ）
func (v *productValidator) ValidateUpdate(dto model.UpdateProductDto) error {
	if dto.IsEmpty() {
		return invalid("nothing to update")
	}
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		return invalid("name required")
	}
	if dto.Price != nil && dto.Price.IsNegative() {
		return invalid("price must be >= 0")
	}
	if dto.Stock != nil && *dto.Stock < 0 {
		return invalid("stock must be >= 0")
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
