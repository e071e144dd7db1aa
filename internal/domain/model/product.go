package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// 詳細に説明が無いときの表示文言
const DefaultDescription = "暂无描述"

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	InStock     bool            `json:"in_stock"`
	Category    string          `json:"category,omitempty"`
	VendorID    string          `json:"vendor_id"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Rating      *float64        `json:"rating,omitempty"`
	RatingCount *int64          `json:"rating_count,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// 価格はJSON上では数値で送る（バックエンドが文字列を受け付けない）
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{plain(p), priceNumber(p.Price)})
}

func priceNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Normalize は詳細表示用にデフォルト値を埋めたコピーを返す。
func (p Product) Normalize() Product {
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	if p.Rating == nil {
		zero := 0.0
		p.Rating = &zero
	}
	if p.RatingCount == nil {
		var zero int64
		p.RatingCount = &zero
	}
	return p
}

// CreatedTime は created_at をパースする。読めないときはゼロ値。
func (p Product) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		// chronoのNaiveDateTime（タイムゾーン無し）
		t, err = time.Parse("2006-01-02T15:04:05.999999999", p.CreatedAt)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

// RatingValue は評価（未設定なら0）
func (p Product) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// 一覧の結果。Total はページングに関係ない一致件数。
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
}
