package configs

import (
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoURI string `env:"MONGOURI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"biznest"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"72h"`

	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET"`

	Currency            string  `env:"CURRENCY" envDefault:"INR"`
	ShippingFlatRate    float64 `env:"SHIPPING_FLAT_RATE" envDefault:"5.00"`
	CartDuplicatePolicy string  `env:"CART_DUPLICATE_POLICY" envDefault:"merge"`
}

// Load reads .env when present, then parses the environment into a Config.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGOURI is empty")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.CartDuplicatePolicy != "merge" && cfg.CartDuplicatePolicy != "reject" {
		return Config{}, fmt.Errorf("CART_DUPLICATE_POLICY must be merge or reject, got %q", cfg.CartDuplicatePolicy)
	}
	return cfg, nil
}
