package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	Port string `envconfig:"PORT" default:":8090"` // BFFの待ち受け

	APIBaseURL string        `envconfig:"API_BASE_URL" default:"http://127.0.0.1:8080/api"` // 商品APIのベースURL
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DefaultPageSize  int `envconfig:"DEFAULT_PAGE_SIZE" default:"12"`
	FetchAllPageSize int `envconfig:"FETCH_ALL_PAGE_SIZE" default:"100"` // 全件取得の1ページ

	SessionToken          string `envconfig:"SESSION_TOKEN"` // 起動時に持たせておくベアラー（任意）
	EnableFixtureFallback bool   `envconfig:"ENABLE_FIXTURE_FALLBACK" default:"true"`
}

// Loadは .env（あれば）と環境変数から読む
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	//必須チェック
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL: %q", c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be >= 1")
	}
	if c.FetchAllPageSize < 1 {
		return fmt.Errorf("FETCH_ALL_PAGE_SIZE must be >= 1")
	}
	return nil
}
