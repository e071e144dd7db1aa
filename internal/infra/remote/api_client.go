package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/repository"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenSource はセッションに保存されたベアラートークンを返す
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// APIClient はもう一つの経路（resty）。トークンがあればリクエストごとに付ける。
type APIClient struct {
	rc  *resty.Client
	log *logrus.Logger
}

var (
	_ repository.ProductSource       = (*APIClient)(nil)
	_ repository.VendorProductLister = (*APIClient)(nil)
)

// DI
func NewAPIClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *logrus.Logger) *APIClient {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		if r.Token != "" || tokens == nil {
			return nil
		}
		if tok, ok := tokens.Token(r.Context()); ok {
			r.SetAuthToken(tok)
		} else {
			logger.Debugf("APIClient: request without credential: %s", r.URL)
		}
		return nil
	})

	return &APIClient{rc: rc, log: logger}
}

func (c *APIClient) Name() string { return "api-client" }

func (c *APIClient) List(ctx context.Context, q model.ProductQuery) (model.ProductPage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParamsFromValues(QueryValues(q)).
		Get("/products")
	body, err := c.check(resp, err, "list products")
	if err != nil {
		return model.ProductPage{}, err
	}
	return DecodePage(body)
}

func (c *APIClient) FindByID(ctx context.Context, id string) (model.Product, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/products/{id}")
	body, err := c.check(resp, err, "get product "+id)
	if err != nil {
		if ae, ok := AsAPIError(err); ok && ae.Status == http.StatusNotFound {
			return model.Product{}, fmt.Errorf("%w: %w", repository.ErrNotFound, ae)
		}
		return model.Product{}, err
	}
	return DecodeProduct(body)
}

// ListVendor は GET /products/vendor（要認証）
func (c *APIClient) ListVendor(ctx context.Context, token string) ([]model.Product, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/products/vendor")
	body, err := c.check(resp, err, "list vendor products")
	if err != nil {
		return nil, err
	}
	page, err := DecodePage(body)
	if err != nil {
		return nil, err
	}
	return page.Products, nil
}

func (c *APIClient) check(resp *resty.Response, err error, op string) ([]byte, error) {
	if err != nil {
		c.log.Errorf("APIClient: %s failed: %v", op, err)
		return nil, fmt.Errorf("failed to communicate with product service: %w", err)
	}
	if !isSuccess(resp.StatusCode()) {
		c.log.Warnf("APIClient: %s failed with status %d", op, resp.StatusCode())
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}
