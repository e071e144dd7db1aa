package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// POST /products のボディ
type CreateProductDto struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Category    *string         `json:"category,omitempty"`
}

func (d CreateProductDto) MarshalJSON() ([]byte, error) {
	type plain CreateProductDto
	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{plain(d), priceNumber(d.Price)})
}

// PUT /products/{id} のボディ（全項目任意）
type UpdateProductDto struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int64           `json:"stock,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

func (d UpdateProductDto) MarshalJSON() ([]byte, error) {
	type plain UpdateProductDto
	out := struct {
		plain
		Price *json.Number `json:"price,omitempty"`
	}{plain: plain(d)}
	if d.Price != nil {
		n := priceNumber(*d.Price)
		out.Price = &n
	}
	return json.Marshal(out)
}

// IsEmpty は変更項目が一つも無いか
func (d UpdateProductDto) IsEmpty() bool {
	return d.Name == nil && d.Description == nil && d.Price == nil && d.Stock == nil && d.Category == nil
}
