package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"5000"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Redis struct {
		Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`

		ResolveTTL time.Duration `env:"REDIS_RESOLVE_TTL" envDefault:"5m"`
		PhotoTTL   time.Duration `env:"REDIS_PHOTO_TTL" envDefault:"24h"`
	}

	// Missing credentials switch the service into demo mode instead of failing startup.
	Telegram struct {
		APIID         int    `env:"API_ID" envDefault:"0"`
		APIHash       string `env:"API_HASH"`
		BotToken      string `env:"BOT_TOKEN"`
		SessionString string `env:"SESSION_STRING"`

		StartTimeout   time.Duration `env:"TELEGRAM_START_TIMEOUT" envDefault:"30s"`
		RequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"20s"`
		MaxConcurrent  int64         `env:"TELEGRAM_MAX_CONCURRENT" envDefault:"4"`
		RateLimit      float64       `env:"TELEGRAM_RATE_LIMIT" envDefault:"10"`
		PeerCacheSize  int           `env:"TELEGRAM_PEER_CACHE_SIZE" envDefault:"4096"`

		InitDataAuth bool          `env:"TELEGRAM_INIT_DATA_AUTH" envDefault:"false"`
		InitDataTTL  time.Duration `env:"TELEGRAM_INIT_DATA_TTL" envDefault:"24h"`
	}

	Lookup struct {
		FallbackToDemoOnNotFound bool   `env:"FALLBACK_TO_DEMO_ON_NOT_FOUND" envDefault:"false"`
		DemoOnUnavailable        bool   `env:"DEMO_ON_UNAVAILABLE" envDefault:"true"`
		ExposeEstimatedCreation  bool   `env:"EXPOSE_ESTIMATED_CREATION" envDefault:"false"`
		PhotoDir                 string `env:"PHOTO_DIR" envDefault:"static/photos"`
		PhotoURLPrefix           string `env:"PHOTO_URL_PREFIX" envDefault:"/static/photos"`
	}
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// .env is optional, production sets variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Server.Port)
	}
	if c.Telegram.MaxConcurrent <= 0 {
		return fmt.Errorf("TELEGRAM_MAX_CONCURRENT must be positive, got %d", c.Telegram.MaxConcurrent)
	}
	if c.Telegram.RequestTimeout <= 0 {
		return fmt.Errorf("TELEGRAM_REQUEST_TIMEOUT must be positive")
	}
	if c.Lookup.PhotoDir == "" {
		return fmt.Errorf("PHOTO_DIR is required")
	}
	return nil
}

// HasTelegramCredentials reports whether the live client can be bootstrapped.
func (c *Config) HasTelegramCredentials() bool {
	return c.Telegram.APIID != 0 && c.Telegram.APIHash != "" && c.Telegram.BotToken != ""
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
