package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Doggod727/online-shopping-system-sub001/internal/config"
	"github.com/Doggod727/online-shopping-system-sub001/internal/handler"
	"github.com/Doggod727/online-shopping-system-sub001/internal/infra/fixture"
	"github.com/Doggod727/online-shopping-system-sub001/internal/infra/remote"
	"github.com/Doggod727/online-shopping-system-sub001/internal/repository"
	"github.com/Doggod727/online-shopping-system-sub001/internal/server"
	"github.com/Doggod727/online-shopping-system-sub001/internal/session"
	"github.com/Doggod727/online-shopping-system-sub001/internal/store"
	"github.com/Doggod727/online-shopping-system-sub001/internal/usecase"
	"github.com/Doggod727/online-shopping-system-sub001/internal/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("invalid LOG_LEVEL %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger := newLogger(cfg.LogLevel)

	//セッション（起動時トークンがあれば載せる）
	sess := session.NewStore()
	if cfg.SessionToken != "" {
		sess.SetToken(cfg.SessionToken)
	}

	//取得経路
	gateway := remote.NewProductGateway(cfg.APIBaseURL, cfg.APITimeout, logger)
	apiClient := remote.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout, sess, logger)

	listSources := []repository.ProductSource{gateway}
	findSources := []repository.ProductSource{gateway, apiClient}
	if cfg.EnableFixtureFallback {
		fx := fixture.NewSource()
		listSources = append(listSources, fx)
		findSources = append(findSources, fx)
	}
	lister := repository.NewChain(logger, listSources...)
	finder := repository.NewChain(logger, findSources...)
	logger.WithFields(logrus.Fields{
		"list_chain":   lister.Name(),
		"detail_chain": finder.Name(),
	}).Info("product sources configured")

	//Usecase生成
	st := store.New(cfg.DefaultPageSize)
	productUC := usecase.NewProductUsecase(
		usecase.ProductSources{
			Lister:  lister,
			Finder:  finder,
			Pager:   apiClient,
			Writer:  gateway,
			Vendors: apiClient,
		},
		sess,
		validator.NewProductValidator(),
		st,
		logger,
		cfg.FetchAllPageSize,
	)

	//Handler生成
	e := server.New(logger, server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		State:        handler.NewStateHandler(productUC),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		unsubscribe := st.Subscribe(func(s store.ProductState) {
			logger.WithFields(logrus.Fields{
				"items":      len(s.Items),
				"total":      s.TotalCount,
				"is_loading": s.IsLoading,
				"page":       s.CurrentPage,
			}).Debug("product state changed")
		})
		<-gctx.Done()
		unsubscribe()
		return nil
	})
	g.Go(func() error {
		return server.Start(gctx, e, cfg.Port, logger)
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Fatal("server stopped with error")
	}
	logger.Info("server stopped")
}
