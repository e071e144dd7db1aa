package usecase

import (
	"errors"
	"fmt"
)

// HTTPError は呼び出し側（画面）に見せる失敗。Message はそのまま表示してよい文言。
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// serverError はバックエンドが返した非2xx応答（remote.APIError が満たす）
type serverError interface {
	error
	StatusCode() int
	ServerMessage() string
}

func asServerError(err error) (serverError, bool) {
	var se serverError
	ok := errors.As(err, &se)
	return se, ok
}

// findServerError は errors.Join も辿って、指定ステータスのサーバー応答を探す
func findServerError(err error, status int) (serverError, bool) {
	if err == nil {
		return nil, false
	}
	if se, ok := err.(serverError); ok && se.StatusCode() == status {
		return se, true
	}
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return findServerError(x.Unwrap(), status)
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if se, ok := findServerError(e, status); ok {
				return se, true
			}
		}
	}
	return nil, false
}
