package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// トークンが無い
	ErrNotLoggedIn = errors.New("not logged in")

	// JWTのexpが過ぎている
	ErrCredentialExpired = errors.New("credential expired")
)

type ctxKey struct{}

// WithToken はリクエスト単位のベアラートークンを context に載せる
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, strings.TrimSpace(token))
}

func tokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(ctxKey{}).(string)
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}

// Store はプロセス内のセッション保存領域（再起動で消える）。
type Store struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

// DI
func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

func (s *Store) Clear() {
	s.SetToken("")
}

// Token は context のトークンを優先し、無ければ保存済みのものを返す
func (s *Store) Token(ctx context.Context) (string, bool) {
	if tok, ok := tokenFromContext(ctx); ok {
		return tok, true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

// Credential は変更系の事前チェック。ネットワークには出ない。
// JWTとして読めてexpが過去なら期限切れ。JWTでないトークンはそのまま通す。
func (s *Store) Credential(ctx context.Context) (string, error) {
	tok, ok := s.Token(ctx)
	if !ok {
		return "", ErrNotLoggedIn
	}
	if expired(tok, s.now()) {
		return "", ErrCredentialExpired
	}
	return tok, nil
}

func expired(raw string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
