package repository

import (
	"context"
	"errors"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の読み取り元（リモートAPI / 代替クライアント / フィクスチャ）が守る約束。
type ProductSource interface {
	Name() string
	List(ctx context.Context, q model.ProductQuery) (model.ProductPage, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
}

// 商品の変更はリモートにしか行わない。token はベアラー認証用。
type ProductWriter interface {
	Create(ctx context.Context, token string, dto model.CreateProductDto) (model.Product, error)
	Update(ctx context.Context, token string, id string, dto model.UpdateProductDto) (model.Product, error)
	Delete(ctx context.Context, token string, id string) error
}

// ベンダー（出品者）自身の商品一覧
type VendorProductLister interface {
	ListVendor(ctx context.Context, token string) ([]model.Product, error)
}
