package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	repo "github.com/Doggod727/online-shopping-system-sub001/internal/repository"
	"github.com/Doggod727/online-shopping-system-sub001/internal/session"
	"github.com/Doggod727/online-shopping-system-sub001/internal/store"

	"github.com/sirupsen/logrus"
)

const (
	msgFetchProductsFailed = "failed to fetch products"
	msgFetchProductFailed  = "failed to fetch product"
	msgProductNotFound     = "product not found"
	msgCreateFailed        = "failed to create product"
	msgUpdateFailed        = "failed to update product"
	msgDeleteFailed        = "failed to delete product"
	msgNotLoggedIn         = "not logged in"
	msgCredentialExpired   = "credential expired"
)

// 送信前の入力チェック
type ProductValidator interface {
	ValidateQuery(q model.ProductQuery) error
	ValidateID(id string) error
	ValidateCreate(dto model.CreateProductDto) error
	ValidateUpdate(dto model.UpdateProductDto) error
}

// 変更系で使うベアラートークン（無い/期限切れならエラー）
type CredentialProvider interface {
	Credential(ctx context.Context) (string, error)
}

// ProductSources は読み取り/変更の経路一式
type ProductSources struct {
	Lister  repo.ProductSource // 一覧: remote → fixture
	Finder  repo.ProductSource // 詳細: remote → api-client → fixture
	Pager   repo.ProductSource // 全件取得: api-client
	Writer  repo.ProductWriter
	Vendors repo.VendorProductLister
}

// ProductUsecase は商品データの同期（取得・フォールバック・変更の反映）をまとめる。
// Store への書き込みはここからだけ行う。
type ProductUsecase struct {
	src              ProductSources
	creds            CredentialProvider
	validator        ProductValidator
	store            *store.ProductStore
	log              *logrus.Logger
	fetchAllPageSize int
}

// DI
func NewProductUsecase(
	src ProductSources,
	creds CredentialProvider,
	validator ProductValidator,
	st *store.ProductStore,
	logger *logrus.Logger,
	fetchAllPageSize int,
) *ProductUsecase {
	if fetchAllPageSize < 1 {
		fetchAllPageSize = 100
	}
	return &ProductUsecase{
		src:              src,
		creds:            creds,
		validator:        validator,
		store:            st,
		log:              logger,
		fetchAllPageSize: fetchAllPageSize,
	}
}

// ListProducts はリモートを優先し、失敗したら見本データで同じ条件を適用して返す。
// 全経路が失敗したときだけエラーになる（0件はエラーではない）。
func (u *ProductUsecase) ListProducts(ctx context.Context, q model.ProductQuery) (model.ProductPage, error) {
	t := u.store.StartLoad(store.LoadList)

	if err := u.validator.ValidateQuery(q); err != nil {
		return model.ProductPage{}, u.fail(t, NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	page, err := u.src.Lister.List(ctx, q)
	if err != nil {
		u.log.WithError(err).Error("ProductUsecase: all sources failed for product list")
		return model.ProductPage{}, u.fail(t, NewHTTPError(http.StatusServiceUnavailable, msgFetchProductsFailed))
	}

	nq := q.Normalized()
	page = fitToWindow(page, nq)
	if !u.store.CompleteList(t, page, nq.Page) {
		u.log.WithField("page", nq.Page).Debug("ProductUsecase: discarded stale list response")
	}
	return page, nil
}

// GetProductByID は remote → api-client → fixture の順に探す。
// 見つかった商品は説明/評価のデフォルトを埋めてから返す。
func (u *ProductUsecase) GetProductByID(ctx context.Context, id string) (model.Product, error) {
	t := u.store.StartLoad(store.LoadDetail)

	if err := u.validator.ValidateID(id); err != nil {
		return model.Product{}, u.fail(t, NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	p, err := u.src.Finder.FindByID(ctx, id)
	if err != nil {
		u.log.WithError(err).WithField("id", id).Error("ProductUsecase: product not available from any source")
		return model.Product{}, u.fail(t, readError(err))
	}

	p = p.Normalize()
	u.store.CompleteDetail(t, p)
	return p, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, dto model.CreateProductDto) (model.Product, error) {
	t := u.store.StartLoad(store.LoadMutation)

	token, err := u.credential(ctx)
	if err != nil {
		return model.Product{}, u.fail(t, err)
	}
	if err := u.validator.ValidateCreate(dto); err != nil {
		return model.Product{}, u.fail(t, NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	created, err := u.src.Writer.Create(ctx, token, dto)
	if err != nil {
		u.log.WithError(err).Warn("ProductUsecase: create failed")
		return model.Product{}, u.fail(t, remoteError(err, msgCreateFailed))
	}

	u.store.CompleteMutation(t, store.Mutation{Kind: store.Created, Product: created})
	return created, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id string, dto model.UpdateProductDto) (model.Product, error) {
	t := u.store.StartLoad(store.LoadMutation)

	token, err := u.credential(ctx)
	if err != nil {
		return model.Product{}, u.fail(t, err)
	}
	if err := u.validator.ValidateID(id); err != nil {
		return model.Product{}, u.fail(t, NewHTTPError(http.StatusBadRequest, err.Error()))
	}
	if err := u.validator.ValidateUpdate(dto); err != nil {
		return model.Product{}, u.fail(t, NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	updated, err := u.src.Writer.Update(ctx, token, id, dto)
	if err != nil {
		u.log.WithError(err).WithField("id", id).Warn("ProductUsecase: update failed")
		return model.Product{}, u.fail(t, remoteError(err, msgUpdateFailed))
	}

	u.store.CompleteMutation(t, store.Mutation{Kind: store.Updated, Product: updated})
	return updated, nil
}

// DeleteProduct は削除したIDを返す
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id string) (string, error) {
	t := u.store.StartLoad(store.LoadMutation)

	token, err := u.credential(ctx)
	if err != nil {
		return "", u.fail(t, err)
	}
	if err := u.validator.ValidateID(id); err != nil {
		return "", u.fail(t, NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	if err := u.src.Writer.Delete(ctx, token, id); err != nil {
		u.log.WithError(err).WithField("id", id).Warn("ProductUsecase: delete failed")
		return "", u.fail(t, remoteError(err, msgDeleteFailed))
	}

	u.store.CompleteMutation(t, store.Mutation{Kind: store.Deleted, ID: id})
	return id, nil
}

func (u *ProductUsecase) ClearSelected() {
	u.store.ClearSelected()
}

func (u *ProductUsecase) SetCurrentPage(page int) {
	u.store.SetCurrentPage(page)
}

func (u *ProductUsecase) SetItemsPerPage(n int) {
	u.store.SetItemsPerPage(n)
}

func (u *ProductUsecase) State() store.ProductState {
	return u.store.Snapshot()
}

func (u *ProductUsecase) credential(ctx context.Context) (string, error) {
	token, err := u.creds.Credential(ctx)
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, session.ErrCredentialExpired):
		return "", NewHTTPError(http.StatusUnauthorized, msgCredentialExpired)
	default:
		return "", NewHTTPError(http.StatusUnauthorized, msgNotLoggedIn)
	}
}

// fail は Store にエラー文言を残し、同じエラーを返す
func (u *ProductUsecase) fail(t store.Ticket, err error) error {
	msg := err.Error()
	if he, ok := AsHTTPError(err); ok {
		msg = he.Message
	}
	u.store.FailLoad(t, msg)
	return err
}

// 詳細取得の最終失敗。404 を返したサーバーの文言だけを優先する。
func readError(err error) error {
	if !errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusServiceUnavailable, msgFetchProductFailed)
	}
	msg := msgProductNotFound
	if se, ok := findServerError(err, http.StatusNotFound); ok && se.ServerMessage() != "" {
		msg = se.ServerMessage()
	}
	return NewHTTPError(http.StatusNotFound, msg)
}

// リモートの失敗をそのまま見せる。サーバーの文言を優先し、無ければ汎用の文言。
func remoteError(err error, generic string) error {
	se, ok := asServerError(err)
	if !ok {
		return NewHTTPError(http.StatusBadGateway, generic)
	}
	msg := se.ServerMessage()
	if msg == "" {
		msg = generic
	}
	return NewHTTPError(se.StatusCode(), msg)
}

// fitToWindow は limit を超える応答（ページングを無視した配列など）をページ幅に収める
func fitToWindow(page model.ProductPage, q model.ProductQuery) model.ProductPage {
	if len(page.Products) <= q.Limit {
		return page
	}
	if int64(len(page.Products)) == page.Total {
		skip := q.Offset()
		if skip >= len(page.Products) {
			page.Products = []model.Product{}
			return page
		}
		page.Products = page.Products[skip : skip+min(q.Limit, len(page.Products)-skip)]
		return page
	}
	page.Products = page.Products[:q.Limit]
	return page
}
