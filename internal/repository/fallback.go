package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Doggod727/online-shopping-system-sub001/internal/domain/model"

	"github.com/sirupsen/logrus"
)

// Chain は複数の ProductSource を順番に試し、最初に成功した結果を返す。
type Chain struct {
	sources []ProductSource
	log     logrus.FieldLogger
}

// DI
func NewChain(log logrus.FieldLogger, sources ...ProductSource) *Chain {
	return &Chain{sources: sources, log: log}
}

func (c *Chain) Name() string {
	names := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		names = append(names, s.Name())
	}
	return strings.Join(names, ">")
}

func (c *Chain) List(ctx context.Context, q model.ProductQuery) (model.ProductPage, error) {
	var errs []error
	for i, s := range c.sources {
		page, err := s.List(ctx, q)
		if err == nil {
			if i > 0 {
				c.log.WithField("source", s.Name()).Info("ProductChain: list served by fallback source")
			}
			return page, nil
		}
		c.log.WithFields(logrus.Fields{"source": s.Name(), "error": err}).Warn("ProductChain: list failed, trying next source")
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return model.ProductPage{}, exhausted(errs)
}

func (c *Chain) FindByID(ctx context.Context, id string) (model.Product, error) {
	var errs []error
	for i, s := range c.sources {
		p, err := s.FindByID(ctx, id)
		if err == nil {
			if i > 0 {
				c.log.WithFields(logrus.Fields{"source": s.Name(), "id": id}).Info("ProductChain: product served by fallback source")
			}
			return p, nil
		}
		c.log.WithFields(logrus.Fields{"source": s.Name(), "id": id, "error": err}).Warn("ProductChain: lookup failed, trying next source")
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return model.Product{}, exhausted(errs)
}

// 全ソース失敗。最後のソースの失敗（通常はフィクスチャの not found）を errors.Is で辿れる形にする
func exhausted(errs []error) error {
	if len(errs) == 0 {
		return errors.New("no product source configured")
	}
	return fmt.Errorf("all product sources failed: %w", errors.Join(errs...))
}
