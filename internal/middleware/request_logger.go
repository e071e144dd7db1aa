package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger はリクエストごとに1行、結果をステータスに応じたレベルで出す
func RequestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			entry := logger.WithFields(logrus.Fields{
				"method":      req.Method,
				"path":        req.URL.Path,
				"remote_ip":   c.RealIP(),
				"status_code": res.Status,
				"latency_ms":  time.Since(start).Milliseconds(),
			})
			if reqID := res.Header().Get(echo.HeaderXRequestID); reqID != "" {
				entry = entry.WithField("request_id", reqID)
			}

			switch {
			case res.Status >= 500:
				entry.Error("Request completed with server error")
			case res.Status >= 400:
				entry.Warn("Request completed with client error")
			default:
				entry.Info("Request completed")
			}
			return nil
		}
	}
}
