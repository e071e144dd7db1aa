package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ProductGateway はバックエンドの /products を叩く主経路のクライアント。
type ProductGateway struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

var (
	_ repository.ProductSource = (*ProductGateway)(nil)
	_ repository.ProductWriter = (*ProductGateway)(nil)
)

// DI
func NewProductGateway(baseURL string, timeout time.Duration, logger *logrus.Logger) *ProductGateway {
	return &ProductGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (g *ProductGateway) Name() string { return "remote" }

// QueryValues は指定された項目だけをクエリにする（未指定は送らない）
func QueryValues(q model.ProductQuery) url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		v.Set("min_price", q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		v.Set("max_price", q.MaxPrice.String())
	}
	if q.SortBy != "" {
		v.Set("sort_by", string(q.SortBy))
	}
	if q.SortDirection != "" {
		v.Set("sort_direction", string(q.SortDirection))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func (g *ProductGateway) List(ctx context.Context, q model.ProductQuery) (model.ProductPage, error) {
	u := g.baseURL + "/products"
	if params := QueryValues(q).Encode(); params != "" {
		u += "?" + params
	}
	g.log.Debugf("ProductGateway: Requesting product list from URL: %s", u)

	body, err := g.do(ctx, http.MethodGet, u, "", nil)
	if err != nil {
		return model.ProductPage{}, err
	}

	page, err := DecodePage(body)
	if err != nil {
		g.log.Errorf("ProductGateway: Failed to decode product list: %v", err)
		return model.ProductPage{}, err
	}
	return page, nil
}

func (g *ProductGateway) FindByID(ctx context.Context, id string) (model.Product, error) {
	u := fmt.Sprintf("%s/products/%s", g.baseURL, url.PathEscape(id))
	g.log.Debugf("ProductGateway: Requesting product %s", id)

	body, err := g.do(ctx, http.MethodGet, u, "", nil)
	if err != nil {
		if ae, ok := AsAPIError(err); ok && ae.Status == http.StatusNotFound {
			return model.Product{}, fmt.Errorf("%w: %w", repository.ErrNotFound, ae)
		}
		return model.Product{}, err
	}

	p, err := DecodeProduct(body)
	if err != nil {
		g.log.Errorf("ProductGateway: Failed to decode product %s: %v", id, err)
		return model.Product{}, err
	}
	return p, nil
}

func (g *ProductGateway) Create(ctx context.Context, token string, dto model.CreateProductDto) (model.Product, error) {
	body, err := g.do(ctx, http.MethodPost, g.baseURL+"/products", token, dto)
	if err != nil {
		return model.Product{}, err
	}
	p, err := DecodeProduct(body)
	if err != nil {
		return model.Product{}, err
	}
	g.log.Infof("ProductGateway: Created product %s", p.ID)
	return p, nil
}

func (g *ProductGateway) Update(ctx context.Context, token string, id string, dto model.UpdateProductDto) (model.Product, error) {
	u := fmt.Sprintf("%s/products/%s", g.baseURL, url.PathEscape(id))
	body, err := g.do(ctx, http.MethodPut, u, token, dto)
	if err != nil {
		return model.Product{}, err
	}
	p, err := DecodeProduct(body)
	if err != nil {
		return model.Product{}, err
	}
	g.log.Infof("ProductGateway: Updated product %s", p.ID)
	return p, nil
}

func (g *ProductGateway) Delete(ctx context.Context, token string, id string) error {
	u := fmt.Sprintf("%s/products/%s", g.baseURL, url.PathEscape(id))
	if _, err := g.do(ctx, http.MethodDelete, u, token, nil); err != nil {
		return err
	}
	g.log.Infof("ProductGateway: Deleted product %s", id)
	return nil
}

// do は1回だけリクエストを送り、2xxならボディを返す。リトライはしない。
func (g *ProductGateway) do(ctx context.Context, method, u, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		g.log.Errorf("ProductGateway: Failed to create %s request for %s: %v", method, u, err)
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Errorf("ProductGateway: Failed to execute %s %s: %v", method, u, err)
		return nil, fmt.Errorf("failed to communicate with product service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		ae := newAPIError(resp.StatusCode, data)
		g.log.Warnf("ProductGateway: %s %s failed with status %d", method, u, resp.StatusCode)
		return nil, ae
	}
	return data, nil
}
