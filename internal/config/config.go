package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/YusovID/product-reviews-service/pkg/logger/slogpretty"
)

type Config struct {
	Env      string   `yaml:"env" env:"ENV,NODE_ENV" env-default:"local"`
	Server   Server   `yaml:"server"`
	Upstream Upstream `yaml:"upstream"`
	Log      Log      `yaml:"log"`
}

type Server struct {
	Host              string        `yaml:"host" env:"HOST" env-default:"0.0.0.0"`
	Port              string        `yaml:"port" env:"PORT" env-default:"3000"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"SERVER_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns host:port.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type Upstream struct {
	BaseURL string `yaml:"base_url" env:"UPSTREAM_API_URL,DUMMYJSON_API_URL" env-default:"https://dummyjson.com"`
	// ProductID is carried for parity with the data source settings; the
	// reviews path reads the global comments collection.
	ProductID int           `yaml:"product_id" env:"UPSTREAM_PRODUCT_ID,DUMMYJSON_PRODUCT_ID" env-default:"1"`
	Timeout   time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT" env-default:"10s"`
	Breaker   Breaker       `yaml:"breaker"`
}

// Breaker configures the upstream circuit breaker. Tripping is off unless
// Enabled is set; a disabled breaker only tracks state and counts.
type Breaker struct {
	Enabled      bool          `yaml:"enabled" env:"UPSTREAM_BREAKER_ENABLED" env-default:"false"`
	MaxRequests  uint32        `yaml:"max_requests" env:"UPSTREAM_BREAKER_MAX_REQUESTS" env-default:"1"`
	Interval     time.Duration `yaml:"interval" env:"UPSTREAM_BREAKER_INTERVAL" env-default:"60s"`
	Timeout      time.Duration `yaml:"timeout" env:"UPSTREAM_BREAKER_TIMEOUT" env-default:"30s"`
	FailureRatio float64       `yaml:"failure_ratio" env:"UPSTREAM_BREAKER_FAILURE_RATIO" env-default:"0.5"`
	MinRequests  uint32        `yaml:"min_requests" env:"UPSTREAM_BREAKER_MIN_REQUESTS" env-default:"5"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load reads the YAML file named by CONFIG_PATH when it is set, otherwise
// the environment alone. Environment variables override file values.
func Load() (*Config, error) {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file does not exist: %w", err)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("server.port must be a number in 1..65535, got %q", c.Server.Port)
	}

	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("upstream.base_url must be an absolute http(s) URL, got %q", c.Upstream.BaseURL)
	}

	if c.Upstream.Timeout <= 0 {
		return errors.New("upstream.timeout must be > 0")
	}

	if c.Upstream.Breaker.FailureRatio <= 0 || c.Upstream.Breaker.FailureRatio > 1 {
		return errors.New("upstream.breaker.failure_ratio must be in (0, 1]")
	}

	if _, err := slogpretty.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
