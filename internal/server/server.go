package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	appmw "github.com/Doggod727/online-shopping-system-sub001/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// New はミドルウェアとルートを載せた echo を組み立てる
func New(logger *logrus.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(appmw.Bearer(logger))

	RegisterRoutes(e, h)
	return e
}

// Start は ctx が終わるまで待ち受け、終わったら graceful shutdown する
func Start(ctx context.Context, e *echo.Echo, addr string, logger *logrus.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("Server: listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Server: shutting down")
	return e.Shutdown(shutdownCtx)
}
