package store

import (
	"sync"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"
)

// ProductState は画面が読む商品関連の状態。永続化はしない。
type ProductState struct {
	Items           []model.Product `json:"items"`
	SelectedProduct *model.Product  `json:"selected_product"`
	IsLoading       bool            `json:"is_loading"`
	Error           *string         `json:"error"`
	TotalCount      int64           `json:"total_count"`
	CurrentPage     int             `json:"current_page"`
	ItemsPerPage    int             `json:"items_per_page"`
}

type LoadKind int

const (
	LoadList LoadKind = iota
	LoadDetail
	LoadMutation
)

func (k LoadKind) String() string {
	switch k {
	case LoadList:
		return "list"
	case LoadDetail:
		return "detail"
	default:
		return "mutation"
	}
}

// Ticket は StartLoad が発行する。完了/失敗のときに返してもらう。
type Ticket struct {
	Kind LoadKind
	seq  uint64
}

type MutationKind int

const (
	Created MutationKind = iota
	Updated
	Deleted
)

// Mutation は成功した変更の結果。Deleted のときは ID だけ使う。
type Mutation struct {
	Kind    MutationKind
	Product model.Product
	ID      string
}

// ProductStore は ProductState の唯一の持ち主。
// 遷移はすべて1回のロックで完結し、途中の状態は外から見えない。
type ProductStore struct {
	mu          sync.Mutex
	state       ProductState
	seq         uint64
	latest      map[LoadKind]uint64
	open        map[uint64]struct{}
	subscribers map[int]func(ProductState)
	nextSub     int
}

// DI
func New(itemsPerPage int) *ProductStore {
	if itemsPerPage < 1 {
		itemsPerPage = model.DefaultLimit
	}
	return &ProductStore{
		state: ProductState{
			Items:        []model.Product{},
			CurrentPage:  model.DefaultPage,
			ItemsPerPage: itemsPerPage,
		},
		latest:      map[LoadKind]uint64{},
		open:        map[uint64]struct{}{},
		subscribers: map[int]func(ProductState){},
	}
}

// StartLoad は読み込み開始。loading を立ててエラーを消す。
func (s *ProductStore) StartLoad(kind LoadKind) Ticket {
	s.mu.Lock()
	s.seq++
	t := Ticket{Kind: kind, seq: s.seq}
	s.latest[kind] = t.seq
	s.open[t.seq] = struct{}{}
	s.state.IsLoading = true
	s.state.Error = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return t
}

// CompleteList は一覧結果を反映する。古いリクエストの結果なら捨てて false。
func (s *ProductStore) CompleteList(t Ticket, page model.ProductPage, pageNo int) bool {
	return s.finish(t, func(st *ProductState) {
		st.Items = cloneAll(page.Products)
		st.TotalCount = page.Total
		if pageNo < 1 {
			pageNo = model.DefaultPage
		}
		st.CurrentPage = pageNo
	})
}

// CompleteDetail は詳細（選択中の商品）を反映する
func (s *ProductStore) CompleteDetail(t Ticket, p model.Product) bool {
	return s.finish(t, func(st *ProductState) {
		cp := cloneProduct(p)
		st.SelectedProduct = &cp
	})
}

// CompleteMutation は変更結果を一覧と詳細に反映する。変更は古い扱いにしない。
func (s *ProductStore) CompleteMutation(t Ticket, m Mutation) bool {
	return s.finish(t, func(st *ProductState) {
		switch m.Kind {
		case Created:
			applyCreated(st, m.Product)
		case Updated:
			applyUpdated(st, m.Product)
		case Deleted:
			applyDeleted(st, m.ID)
		}
	})
}

// FailLoad はエラー文言を残して終了する
func (s *ProductStore) FailLoad(t Ticket, message string) bool {
	return s.finish(t, func(st *ProductState) {
		msg := message
		st.Error = &msg
	})
}

func (s *ProductStore) finish(t Ticket, apply func(*ProductState)) bool {
	s.mu.Lock()
	if _, ok := s.open[t.seq]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.open, t.seq)

	applied := t.Kind == LoadMutation || t.seq == s.latest[t.Kind]
	if applied {
		apply(&s.state)
	}
	s.state.IsLoading = len(s.open) > 0
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return applied
}

func (s *ProductStore) ClearSelected() {
	s.update(func(st *ProductState) { st.SelectedProduct = nil })
}

func (s *ProductStore) SetCurrentPage(page int) {
	if page < 1 {
		return
	}
	s.update(func(st *ProductState) { st.CurrentPage = page })
}

func (s *ProductStore) SetItemsPerPage(n int) {
	if n < 1 {
		return
	}
	s.update(func(st *ProductState) { st.ItemsPerPage = n })
}

func (s *ProductStore) update(apply func(*ProductState)) {
	s.mu.Lock()
	apply(&s.state)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// Snapshot は状態のコピー
func (s *ProductStore) Snapshot() ProductState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe は遷移ごとにスナップショットを受け取る。戻り値で解除。
func (s *ProductStore) Subscribe(fn func(ProductState)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *ProductStore) notify(snap ProductState) {
	s.mu.Lock()
	subs := make([]func(ProductState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *ProductStore) snapshotLocked() ProductState {
	st := s.state
	st.Items = cloneAll(s.state.Items)
	if s.state.SelectedProduct != nil {
		cp := cloneProduct(*s.state.SelectedProduct)
		st.SelectedProduct = &cp
	}
	if s.state.Error != nil {
		msg := *s.state.Error
		st.Error = &msg
	}
	return st
}
