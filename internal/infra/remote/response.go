package remote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
)

type pageEnvelope struct {
	Products *[]model.Product `json:"products"`
	Total    *int64           `json:"total"`
}

// DecodePage は一覧レスポンスを ProductPage にそろえる。
// 受け付ける形は {products, total} と Product[] の2つだけ。配列のとき total は件数。
func DecodePage(body []byte) (model.ProductPage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return model.ProductPage{}, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	switch trimmed[0] {
	case '[':
		var products []model.Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return model.ProductPage{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return model.ProductPage{Products: nonNil(products), Total: int64(len(products))}, nil

	case '{':
		var env pageEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return model.ProductPage{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if env.Products == nil {
			return model.ProductPage{}, fmt.Errorf("%w: missing products", ErrMalformedResponse)
		}
		products := nonNil(*env.Products)
		total := int64(len(products))
		if env.Total != nil && *env.Total > total {
			total = *env.Total
		}
		return model.ProductPage{Products: products, Total: total}, nil
	}

	return model.ProductPage{}, fmt.Errorf("%w: unexpected json", ErrMalformedResponse)
}

// DecodeProduct は単品レスポンス。id が無いものは壊れているとみなす。
func DecodeProduct(body []byte) (model.Product, error) {
	var p model.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return model.Product{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if p.ID == "" {
		return model.Product{}, fmt.Errorf("%w: missing id", ErrMalformedResponse)
	}
	return p, nil
}

func nonNil(products []model.Product) []model.Product {
	if products == nil {
		return []model.Product{}
	}
	return products
}
