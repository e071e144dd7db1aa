package validator

import (
	"testing"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidateQuery(t *testing.T) {
	v := NewProductValidator()

	tests := []struct {
		name    string
		q       model.ProductQuery
		wantErr string
	}{
		{name: "empty", q: model.ProductQuery{}},
		{name: "full", q: model.ProductQuery{Category: "食品", MinPrice: dec("10"), MaxPrice: dec("10"), SortBy: "price", SortDirection: "asc", Page: 2, Limit: 12}},
		{name: "unknown sort key", q: model.ProductQuery{SortBy: "popularity"}},
		{name: "negative page", q: model.ProductQuery{Page: -1}, wantErr: "page"},
		{name: "negative limit", q: model.ProductQuery{Limit: -5}, wantErr: "limit"},
		{name: "limit at cap", q: model.ProductQuery{Limit: model.MaxLimit}},
		{name: "limit over cap", q: model.ProductQuery{Limit: model.MaxLimit + 1}, wantErr: "limit"},
		{name: "huge page", q: model.ProductQuery{Page: 4611686018427387905, Limit: 3}},
		{name: "negative min", q: model.ProductQuery{MinPrice: dec("-1")}, wantErr: "min_price"},
		{name: "negative max", q: model.ProductQuery{MaxPrice: dec("-0.01")}, wantErr: "max_price"},
		{name: "min over max", q: model.ProductQuery{MinPrice: dec("300"), MaxPrice: dec("200")}, wantErr: "min_price must be <= max_price"},
		{name: "bad direction", q: model.ProductQuery{SortDirection: "up"}, wantErr: "sort_direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuery(tt.q)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateID(t *testing.T) {
	v := NewProductValidator()

	assert.NoError(t, v.ValidateID("42"))
	assert.ErrorIs(t, v.ValidateID("  "), ErrInvalidInput)
}

func TestValidateCreate(t *testing.T) {
	v := NewProductValidator()

	assert.NoError(t, v.ValidateCreate(model.CreateProductDto{Name: "Tea", Price: decimal.NewFromInt(10), Stock: 0}))
	assert.ErrorContains(t, v.ValidateCreate(model.CreateProductDto{Name: " "}), "name required")
	assert.ErrorContains(t, v.ValidateCreate(model.CreateProductDto{Name: "Tea", Price: decimal.NewFromInt(-1)}), "price")
	assert.ErrorContains(t, v.ValidateCreate(model.CreateProductDto{Name: "Tea", Stock: -1}), "stock")
}

func TestValidateUpdate(t *testing.T) {
	v := NewProductValidator()
	empty := ""
	stock := int64(-3)

	assert.NoError(t, v.ValidateUpdate(model.UpdateProductDto{Price: dec("5")}))
	assert.ErrorContains(t, v.ValidateUpdate(model.UpdateProductDto{}), "nothing to update")
	assert.ErrorContains(t, v.ValidateUpdate(model.UpdateProductDto{Name: &empty}), "name required")
	assert.ErrorContains(t, v.ValidateUpdate(model.UpdateProductDto{Stock: &stock}), "stock")
}
