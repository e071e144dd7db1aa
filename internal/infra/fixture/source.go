package fixture

import (
	"context"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
	"github.com/Doggod727/online-shopping-system-sub001/internal/repository"
)

// Source は見本データを ProductSource として公開する。I/Oは無く、変更もされない。
type Source struct {
	products []model.Product
}

// DI
func NewSource() *Source {
	return NewSourceWith(catalog)
}

func NewSourceWith(products []model.Product) *Source {
	cp := make([]model.Product, len(products))
	for i, p := range products {
		cp[i] = clone(p)
	}
	return &Source{products: cp}
}

var _ repository.ProductSource = (*Source)(nil)

func (s *Source) Name() string { return "fixture" }

func (s *Source) List(_ context.Context, q model.ProductQuery) (model.ProductPage, error) {
	page := Query(s.products, q)
	for i := range page.Products {
		page.Products[i] = clone(page.Products[i])
	}
	return page, nil
}

func (s *Source) FindByID(_ context.Context, id string) (model.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return model.Product{}, repository.ErrNotFound
}

// Rating/RatingCount のポインタを共有しない
func clone(p model.Product) model.Product {
	if p.Rating != nil {
		p.Rating = rating(*p.Rating)
	}
	if p.RatingCount != nil {
		p.RatingCount = count(*p.RatingCount)
	}
	return p
}
