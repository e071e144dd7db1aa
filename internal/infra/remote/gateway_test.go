package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestGateway(t *testing.T, h http.HandlerFunc) *ProductGateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewProductGateway(srv.URL+"/api", 2*time.Second, newTestLogger())
}

func TestQueryValues_OnlyPresentFields(t *testing.T) {
	assert.Empty(t, QueryValues(model.ProductQuery{}).Encode())

	lo := decimal.NewFromInt(100)
	v := QueryValues(model.ProductQuery{Category: "服装", MinPrice: &lo, SortDirection: model.SortAsc, Limit: 3})
	assert.Equal(t, "服装", v.Get("category"))
	assert.Equal(t, "100", v.Get("min_price"))
	assert.Equal(t, "asc", v.Get("sort_direction"))
	assert.Equal(t, "3", v.Get("limit"))
	assert.False(t, v.Has("search"))
	assert.False(t, v.Has("max_price"))
	assert.False(t, v.Has("page"))
}

func TestGateway_List_OmitsAbsentParams(t *testing.T) {
	var rawQuery, path string
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		path = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	})

	page, err := g.List(context.Background(), model.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, "/api/products", path)
	assert.Empty(t, rawQuery)
	assert.Equal(t, int64(0), page.Total)
	assert.NotNil(t, page.Products)
}

func TestGateway_List_ArrayUsesLengthAsTotal(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"a","price":10},{"id":"b","price":"20.5"}]`))
	})

	page, err := g.List(context.Background(), model.ProductQuery{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, "20.5", page.Products[1].Price.String())
}

func TestGateway_List_Envelope(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"products":[{"id":"13"}],"total":40}`))
	})

	page, err := g.List(context.Background(), model.ProductQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(40), page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "13", page.Products[0].ID)
}

func TestGateway_List_MalformedBody(t *testing.T) {
	for _, body := range []string{`{"items":[]}`, `{"products":null}`, `"ok"`, ``, `[{"id":`} {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		_, err := g.List(context.Background(), model.ProductQuery{})
		assert.ErrorIs(t, err, ErrMalformedResponse, body)
	}
}

func TestGateway_List_ServerError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database down"}`))
	})

	_, err := g.List(context.Background(), model.ProductQuery{})
	ae, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, ae.Status)
	assert.Equal(t, "database down", ae.Message)
}

func TestGateway_List_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	g := NewProductGateway(srv.URL, time.Second, newTestLogger())

	_, err := g.List(context.Background(), model.ProductQuery{})
	require.Error(t, err)
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI)
}

func TestGateway_FindByID_NotFound(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/999", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Product not found"}`))
	})

	_, err := g.FindByID(context.Background(), "999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	ae, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Product not found", ae.Message)
}

func TestGateway_FindByID_MissingID(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"no id"}`))
	})

	_, err := g.FindByID(context.Background(), "1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGateway_Create_SendsBearerAndJSON(t *testing.T) {
	var got map[string]any
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"new-1","name":"Tea","price":99.5,"stock":3}`))
	})

	p, err := g.Create(context.Background(), "tok-1", model.CreateProductDto{
		Name:  "Tea",
		Price: decimal.RequireFromString("99.5"),
		Stock: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", p.ID)
	assert.Equal(t, 99.5, got["price"])
	assert.Equal(t, "Tea", got["name"])
}

func TestGateway_Update_OnlySendsSetFields(t *testing.T) {
	var got map[string]any
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/7", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"7","name":"renamed"}`))
	})

	name := "renamed"
	p, err := g.Update(context.Background(), "tok", "7", model.UpdateProductDto{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", p.Name)
	assert.Equal(t, map[string]any{"name": "renamed"}, got)
}

func TestGateway_Delete(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, g.Delete(context.Background(), "tok", "7"))
}

func TestGateway_Delete_Unauthorized(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})

	err := g.Delete(context.Background(), "tok", "7")
	ae, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ae.StatusCode())
	assert.Equal(t, "token expired", ae.ServerMessage())
}
