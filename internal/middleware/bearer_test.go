package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Doggod727/online-shopping-system-sub001/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// context に載ったトークンをそのまま返すエンドポイント
func newEchoWithBearer() *echo.Echo {
	e := echo.New()
	e.Use(Bearer(quietLogger()))
	e.GET("/whoami", func(c echo.Context) error {
		tok, ok := session.NewStore().Token(c.Request().Context())
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, tok)
	})
	return e
}

func TestBearer(t *testing.T) {
	tests := []struct {
		name       string
		authz      string
		wantStatus int
		wantBody   string
	}{
		{name: "no header", authz: "", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "bearer", authz: "Bearer abc.def", wantStatus: http.StatusOK, wantBody: "abc.def"},
		{name: "lowercase scheme", authz: "bearer xyz", wantStatus: http.StatusOK, wantBody: "xyz"},
		{name: "basic", authz: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty token", authz: "Bearer   ", wantStatus: http.StatusUnauthorized},
		{name: "no token", authz: "Bearer", wantStatus: http.StatusUnauthorized},
	}

	e := newEchoWithBearer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authz != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authz)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(quietLogger()))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
