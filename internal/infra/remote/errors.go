package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMalformedResponse はボディが想定した形でなかったとき
var ErrMalformedResponse = errors.New("malformed response")

// APIError は2xx以外の応答。Message はサーバーが返した文言（無ければ空）。
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote returned status %d", e.Status)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.Status, e.Message)
}

func (e *APIError) StatusCode() int { return e.Status }

func (e *APIError) ServerMessage() string { return e.Message }

// AsAPIError は err の中の *APIError を取り出す
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// {"message": ...} か {"error": ...} から文言を拾う
func newAPIError(status int, body []byte) *APIError {
	ae := &APIError{Status: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		ae.Message = strings.TrimSpace(eb.Message)
		if ae.Message == "" {
			ae.Message = strings.TrimSpace(eb.Error)
		}
	}
	return ae
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
