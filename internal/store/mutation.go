package store

import "github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"

// 作成：末尾に追加。既に同じIDがあれば置き換えるだけ（二重に載せない）
func applyCreated(st *ProductState, p model.Product) {
	if i := indexOf(st.Items, p.ID); i >= 0 {
		st.Items[i] = cloneProduct(p)
		return
	}
	st.Items = append(st.Items, cloneProduct(p))
	st.TotalCount++
}

// 更新：一覧と、選択中なら詳細も置き換える
func applyUpdated(st *ProductState, p model.Product) {
	if i := indexOf(st.Items, p.ID); i >= 0 {
		st.Items[i] = cloneProduct(p)
	}
	if st.SelectedProduct != nil && st.SelectedProduct.ID == p.ID {
		cp := cloneProduct(p)
		st.SelectedProduct = &cp
	}
}

// 削除：一覧から外して件数を減らす。選択中なら詳細も空にする
func applyDeleted(st *ProductState, id string) {
	if i := indexOf(st.Items, id); i >= 0 {
		st.Items = append(st.Items[:i:i], st.Items[i+1:]...)
	}
	if st.TotalCount > 0 {
		st.TotalCount--
	}
	if st.SelectedProduct != nil && st.SelectedProduct.ID == id {
		st.SelectedProduct = nil
	}
}

func indexOf(items []model.Product, id string) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

func cloneProduct(p model.Product) model.Product {
	if p.Rating != nil {
		r := *p.Rating
		p.Rating = &r
	}
	if p.RatingCount != nil {
		c := *p.RatingCount
		p.RatingCount = &c
	}
	return p
}
