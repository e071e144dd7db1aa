package middleware

import (
	"net/http"
	"strings"

	"github.com/Doggod727/online-shopping-system-sub001/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Bearer は Authorization のトークンを request context に載せる。
// ヘッダが無ければそのまま通す（変更系の可否は usecase が判断する）。
func Bearer(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			if authz == "" {
				return next(c)
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				log.WithField("path", c.Path()).Warn("Middleware: invalid Authorization header format")
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid authorization header"})
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid authorization header"})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(session.WithToken(req.Context(), rawToken)))
			return next(c)
		}
	}
}
