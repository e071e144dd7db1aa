package usecase

import (
	"context"
	"net/http"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const msgFetchVendorProductsFailed = "failed to fetch vendor products"

const (
	// 全件取得で辿るページ数の上限。超える総数はバックエンドの異常として扱う
	maxFetchAllPages = 1000
	// 同時に取りに行くページ数
	fetchAllConcurrency = 4
)

// FetchVendorProducts はログイン中ベンダーの商品を一覧に載せる。見本データには落とさない。
func (u *ProductUsecase) FetchVendorProducts(ctx context.Context) ([]model.Product, error) {
	t := u.store.StartLoad(store.LoadList)

	token, err := u.credential(ctx)
	if err != nil {
		return nil, u.fail(t, err)
	}

	products, err := u.src.Vendors.ListVendor(ctx, token)
	if err != nil {
		u.log.WithError(err).Warn("ProductUsecase: vendor products failed")
		return nil, u.fail(t, remoteError(err, msgFetchVendorProductsFailed))
	}

	u.store.CompleteList(t, model.ProductPage{Products: products, Total: int64(len(products))}, model.DefaultPage)
	return products, nil
}

// FetchAllProducts は1ページ目で総数を知り、残りのページを並行で取って順番どおりにつなぐ。
// 管理画面向け。失敗はそのまま返す。
func (u *ProductUsecase) FetchAllProducts(ctx context.Context) (model.ProductPage, error) {
	t := u.store.StartLoad(store.LoadList)

	size := u.fetchAllPageSize
	first, err := u.src.Pager.List(ctx, model.ProductQuery{Page: 1, Limit: size})
	if err != nil {
		u.log.WithError(err).Error("ProductUsecase: fetch all products failed on first page")
		return model.ProductPage{}, u.fail(t, remoteError(err, msgFetchProductsFailed))
	}

	all := first.Products
	total := first.Total
	if total > int64(len(all)) {
		pageCount := total / int64(size)
		if total%int64(size) != 0 {
			pageCount++
		}
		if pageCount > maxFetchAllPages {
			u.log.WithFields(logrus.Fields{"total": total, "pages": pageCount}).Error("ProductUsecase: implausible product total")
			return model.ProductPage{}, u.fail(t, NewHTTPError(http.StatusBadGateway, msgFetchProductsFailed))
		}
		pages := int(pageCount)
		rest := make([][]model.Product, pages-1)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(fetchAllConcurrency)
		for p := 2; p <= pages; p++ {
			p := p
			g.Go(func() error {
				page, err := u.src.Pager.List(gctx, model.ProductQuery{Page: p, Limit: size})
				if err != nil {
					return err
				}
				rest[p-2] = page.Products
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			u.log.WithError(err).WithField("pages", pages).Error("ProductUsecase: fetch all products failed")
			return model.ProductPage{}, u.fail(t, remoteError(err, msgFetchProductsFailed))
		}
		for _, products := range rest {
			all = append(all, products...)
		}
	}

	result := model.ProductPage{Products: all, Total: max(total, int64(len(all)))}
	u.store.CompleteList(t, result, model.DefaultPage)
	u.log.WithField("count", len(all)).Info("ProductUsecase: fetched all products")
	return result, nil
}
