package fixture

import (
	"strings"
	"testing"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func prices(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Price.String()
	}
	return out
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCatalog_Shape(t *testing.T) {
	require.Len(t, catalog, 25)

	perCategory := map[string]int{}
	seen := map[string]bool{}
	for _, p := range catalog {
		perCategory[p.Category]++
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, perCategory, 5)
	for cat, n := range perCategory {
		assert.Equal(t, 5, n, cat)
	}
}

func TestQuery_CategoryPriceAscending(t *testing.T) {
	page := Query(catalog, model.ProductQuery{
		Category:      "电子产品",
		SortBy:        model.SortByPrice,
		SortDirection: model.SortAsc,
		Page:          1,
		Limit:         3,
	})

	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, []string{"1299", "2499", "5999"}, prices(page.Products))
}

func TestFilter_PriceBoundsInclusive(t *testing.T) {
	got := Filter(catalog, model.ProductQuery{MinPrice: dec(199), MaxPrice: dec(299)})

	assert.ElementsMatch(t, []string{"10", "16", "19", "20", "24", "25"}, ids(got))
	for _, p := range got {
		assert.False(t, p.Price.LessThan(decimal.NewFromInt(199)))
		assert.False(t, p.Price.GreaterThan(decimal.NewFromInt(299)))
	}
}

func TestFilter_SearchIgnoresCase(t *testing.T) {
	assert.Equal(t, []string{"3"}, ids(Filter(catalog, model.ProductQuery{Search: "pro"})))
	assert.Contains(t, ids(Filter(catalog, model.ProductQuery{Search: "ecg"})), "3")

	// カテゴリ名も対象
	got := Filter(catalog, model.ProductQuery{Search: "美妆"})
	assert.Len(t, got, 5)
}

func TestFilter_AllResultsSatisfyCategory(t *testing.T) {
	got := Filter(catalog, model.ProductQuery{Category: "食品", Search: "礼盒"})
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, "食品", p.Category)
		assert.True(t, strings.Contains(p.Name+p.Description, "礼盒"))
	}
}

func TestSort_DescendingIsReverseOfAscending(t *testing.T) {
	for _, key := range []model.SortKey{model.SortByPrice, model.SortByName, model.SortByCreatedAt} {
		asc := Sort(catalog, key, model.SortAsc)
		desc := Sort(catalog, key, model.SortDesc)

		reversed := make([]string, len(asc))
		for i, id := range ids(asc) {
			reversed[len(asc)-1-i] = id
		}
		assert.Equal(t, reversed, ids(desc), string(key))
	}
}

func TestSort_DefaultDirectionIsDescending(t *testing.T) {
	got := Sort(catalog, model.SortByCreatedAt, "")
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "25", got[len(got)-1].ID)
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	got := Sort(catalog, "popularity", model.SortAsc)
	assert.Equal(t, ids(catalog), ids(got))
}

func TestPaginate_OutOfRange(t *testing.T) {
	got := Paginate(catalog, 100, 12)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	last := Paginate(catalog, 3, 12)
	assert.Equal(t, []string{"25"}, ids(last))
}

func TestQuery_HugePageIsEmpty(t *testing.T) {
	for _, limit := range []int{3, 4, model.MaxLimit} {
		page := Query(catalog, model.ProductQuery{Page: 4611686018427387905, Limit: limit})
		assert.NotNil(t, page.Products)
		assert.Empty(t, page.Products, "limit=%d", limit)
		assert.Equal(t, int64(25), page.Total)
	}
}

func TestQuery_TotalIgnoresPagination(t *testing.T) {
	page := Query(catalog, model.ProductQuery{Page: 100})
	assert.Equal(t, int64(25), page.Total)
	assert.Empty(t, page.Products)
}
