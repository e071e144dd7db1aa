package model

import (
	"math"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByName      SortKey = "name"
	SortByCreatedAt SortKey = "created_at"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	// 1ページに取れる上限
	MaxLimit = 100
)

// ProductQuery は一覧の検索条件。
// 文字列の空、ポインタのnil、数値の0は「未指定」として扱う。
type ProductQuery struct {
	Category      string
	Search        string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	SortBy        SortKey
	SortDirection SortDirection
	Page          int
	Limit         int
}

// Normalized は page/limit の未指定をデフォルトで埋める
func (q ProductQuery) Normalized() ProductQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Ascending は sort_direction=asc のときだけ true（未指定は降順）
func (q ProductQuery) Ascending() bool {
	return q.SortDirection == SortAsc
}

// Offset は (page-1)*limit。int に収まらないときは math.MaxInt（どの一覧でも範囲外）。
func (q ProductQuery) Offset() int {
	n := q.Normalized()
	if n.Page-1 > math.MaxInt/n.Limit {
		return math.MaxInt
	}
	return (n.Page - 1) * n.Limit
}
