package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Session       SessionConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Checkout      CheckoutConfig
	Gemini        GeminiConfig
	Square        SquareConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NASHWA_APP_ENV" default:"dev"`
	Port         string `envconfig:"NASHWA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NASHWA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NASHWA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SessionConfig bounds the lifetime of the volatile per-shopper state.
type SessionConfig struct {
	TTL           time.Duration `envconfig:"NASHWA_SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"NASHWA_SESSION_SWEEP_INTERVAL" default:"5m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NASHWA_REDIS_URL"`
	Address      string        `envconfig:"NASHWA_REDIS_ADDR"`
	Password     string        `envconfig:"NASHWA_REDIS_PASSWORD"`
	DB           int           `envconfig:"NASHWA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NASHWA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NASHWA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NASHWA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NASHWA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NASHWA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint has been configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret                 string `envconfig:"NASHWA_JWT_SECRET"`
	Issuer                 string `envconfig:"NASHWA_JWT_ISSUER" default:"nashwa-storefront"`
	ExpirationMinutes      int    `envconfig:"NASHWA_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"NASHWA_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"NASHWA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"NASHWA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"NASHWA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"NASHWA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"NASHWA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"NASHWA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"NASHWA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"NASHWA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"NASHWA_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"NASHWA_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"NASHWA_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// CheckoutConfig carries the storefront's order placement knobs. Amounts are
// integer BDT with no minor units.
type CheckoutConfig struct {
	DeliveryFee     int           `envconfig:"NASHWA_CHECKOUT_DELIVERY_FEE" default:"150"`
	ProcessingDelay time.Duration `envconfig:"NASHWA_CHECKOUT_PROCESSING_DELAY" default:"2s"`
	Currency        string        `envconfig:"NASHWA_CHECKOUT_CURRENCY" default:"BDT"`
}

type GeminiConfig struct {
	APIKey string `envconfig:"NASHWA_GEMINI_API_KEY"`
	Model  string `envconfig:"NASHWA_GEMINI_MODEL" default:"gemini-3-flash-preview"`
}

type SquareConfig struct {
	AccessToken string `envconfig:"NASHWA_SQUARE_ACCESS_TOKEN"`
	Env         string `envconfig:"NASHWA_SQUARE_ENV" default:"sandbox"`
	LocationID  string `envconfig:"NASHWA_SQUARE_LOCATION_ID"`
}

// Environment returns the normalized Square environment (sandbox/production).
func (s SquareConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "sandbox"
	}
	return env
}

// Enabled reports whether card payments can be routed through Square.
func (s SquareConfig) Enabled() bool {
	return strings.TrimSpace(s.AccessToken) != "" && strings.TrimSpace(s.LocationID) != ""
}
