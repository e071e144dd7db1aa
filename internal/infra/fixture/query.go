package fixture

import (
	"slices"
	"sort"
	"strings"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter はカテゴリ（完全一致）、価格帯（両端含む）、キーワード（名前/説明/カテゴリの部分一致）で絞り込む。
func Filter(products []model.Product, q model.ProductQuery) []model.Product {
	fold := cases.Fold()
	search := ""
	if q.Search != "" {
		search = fold.String(q.Search)
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
			continue
		}
		if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
			continue
		}
		if search != "" &&
			!strings.Contains(fold.String(p.Name), search) &&
			!strings.Contains(fold.String(p.Description), search) &&
			!strings.Contains(fold.String(p.Category), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort は安定ソートで並べ替える。降順は昇順結果の反転。
// 未知のキー（未指定含む）は入力順のまま。
func Sort(products []model.Product, key model.SortKey, dir model.SortDirection) []model.Product {
	out := slices.Clone(products)

	var less func(a, b model.Product) bool
	switch key {
	case model.SortByPrice:
		less = func(a, b model.Product) bool { return a.Price.LessThan(b.Price) }
	case model.SortByName:
		col := collate.New(language.Chinese)
		less = func(a, b model.Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case model.SortByCreatedAt:
		less = func(a, b model.Product) bool { return a.CreatedTime().Before(b.CreatedTime()) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if dir != model.SortAsc {
		slices.Reverse(out)
	}
	return out
}

// Paginate は [skip, skip+limit) を切り出す。範囲外は空。
func Paginate(products []model.Product, page, limit int) []model.Product {
	q := model.ProductQuery{Page: page, Limit: limit}.Normalized()
	skip := q.Offset()
	if skip >= len(products) {
		return []model.Product{}
	}
	end := skip + min(q.Limit, len(products)-skip)
	return slices.Clone(products[skip:end])
}

// Query は Filter → Sort → Paginate。Total は絞り込み後の件数。
func Query(products []model.Product, q model.ProductQuery) model.ProductPage {
	q = q.Normalized()
	matched := Sort(Filter(products, q), q.SortBy, q.SortDirection)
	return model.ProductPage{
		Products: Paginate(matched, q.Page, q.Limit),
		Total:    int64(len(matched)),
	}
}

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func rating(v float64) *float64 {
	return &v
}

func count(v int64) *int64 {
	return &v
}
