package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "LIMPME_"

type Config struct {
	Server    ServerConfig    `toml:"server" envPrefix:"SERVER_"`
	Database  DatabaseConfig  `toml:"database" envPrefix:"DATABASE_"`
	Redis     RedisConfig     `toml:"redis" envPrefix:"REDIS_"`
	Auth      AuthConfig      `toml:"auth" envPrefix:"AUTH_"`
	Booking   BookingConfig   `toml:"booking" envPrefix:"BOOKING_"`
	Logs      LogsConfig      `toml:"logs" envPrefix:"LOGS_"`
	Metrics   MetricsConfig   `toml:"metrics" envPrefix:"METRICS_"`
	CORS      CORSConfig      `toml:"cors" envPrefix:"CORS_"`
	RateLimit RateLimitConfig `toml:"rate_limit" envPrefix:"RATE_LIMIT_"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT"`         // секунды
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT"`       // секунды
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT"`         // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"HOST"`
	Port            int    `toml:"port" env:"PORT"`
	User            string `toml:"user" env:"USER"`
	Password        string `toml:"password" env:"PASSWORD"`
	DBName          string `toml:"dbname" env:"DBNAME"`
	SSLMode         string `toml:"sslmode" env:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" env:"AUTO_MIGRATE"`
}

// RedisConfig черновики, блокировки отправки и отозванные токены.
// Если выключен, используются хранилища в памяти процесса.
type RedisConfig struct {
	Enabled  bool   `toml:"enabled" env:"ENABLED"`
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
}

type AuthConfig struct {
	JWTSecret    string `toml:"jwt_secret" env:"JWT_SECRET"`
	Issuer       string `toml:"issuer" env:"ISSUER"`
	TokenTTL     int    `toml:"token_ttl" env:"TOKEN_TTL"` // минуты
	BcryptCost   int    `toml:"bcrypt_cost" env:"BCRYPT_COST"`
	SecureCookie bool   `toml:"secure_cookie" env:"SECURE_COOKIE"`
}

type BookingConfig struct {
	TimeZone          string `toml:"time_zone" env:"TIME_ZONE"`
	RedirectDelay     int    `toml:"redirect_delay" env:"REDIRECT_DELAY"` // миллисекунды
	LockTTL           int    `toml:"lock_ttl" env:"LOCK_TTL"`             // секунды
	DraftTTL          int    `toml:"draft_ttl" env:"DRAFT_TTL"`           // часы
	CancelRescheduled bool   `toml:"cancel_rescheduled" env:"CANCEL_RESCHEDULED"`
	PlansURL          string `toml:"plans_url" env:"PLANS_URL"`
	WhatsAppURL       string `toml:"whatsapp_url" env:"WHATSAPP_URL"`
}

type LogsConfig struct {
	Level string `toml:"level" env:"LEVEL"`
	File  string `toml:"file" env:"FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
}

// RateLimitConfig лимит на вход и регистрацию с одного IP
type RateLimitConfig struct {
	PerMinute int `toml:"per_minute" env:"PER_MINUTE"`
	Burst     int `toml:"burst" env:"BURST"`
	// TrustedProxies IP или CIDR, от которых принимается X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies" env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load читает TOML файл, затем .env рядом с процессом и переменные окружения LIMPME_*.
// Переменные окружения имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "limpme"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 7 * 24 * 60
	}

	if c.Booking.TimeZone == "" {
		c.Booking.TimeZone = domain.DefaultTimeZone
	}
	if c.Booking.RedirectDelay == 0 {
		c.Booking.RedirectDelay = int(domain.DefaultRedirectDelay / time.Millisecond)
	}
	if c.Booking.LockTTL == 0 {
		c.Booking.LockTTL = 30
	}
	if c.Booking.DraftTTL == 0 {
		c.Booking.DraftTTL = 24
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "limpme_booking"
	}

	if c.RateLimit.PerMinute == 0 {
		c.RateLimit.PerMinute = 20
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("database.host and database.dbname are required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when redis is enabled")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return errors.New("auth.jwt_secret must be at least 32 characters")
	}
	if c.Auth.TokenTTL < 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Auth.BcryptCost != 0 && (c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31) {
		return fmt.Errorf("auth.bcrypt_cost must be in 4..31, got %d", c.Auth.BcryptCost)
	}
	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		return fmt.Errorf("booking.time_zone: %w", err)
	}
	if c.Booking.RedirectDelay < 0 || c.Booking.LockTTL < 0 || c.Booking.DraftTTL < 0 {
		return errors.New("booking durations must be positive")
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate_limit values must be positive")
	}
	for _, proxy := range c.RateLimit.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("rate_limit.trusted_proxies: invalid address %q", proxy)
		}
	}
	return nil
}

func validProxy(v string) bool {
	v = strings.TrimSpace(v)
	if strings.Contains(v, "/") {
		_, err := netip.ParsePrefix(v)
		return err == nil
	}
	_, err := netip.ParseAddr(v)
	return err == nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

func (a AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(a.TokenTTL) * time.Minute
}

// Location часовой пояс, в котором считаются "сегодня" и воскресенье.
// Validate уже проверил, что зона существует.
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (b BookingConfig) RedirectAfter() time.Duration {
	return time.Duration(b.RedirectDelay) * time.Millisecond
}

func (b BookingConfig) SubmitLockTTL() time.Duration {
	return time.Duration(b.LockTTL) * time.Second
}

func (b BookingConfig) DraftLifetime() time.Duration {
	return time.Duration(b.DraftTTL) * time.Hour
}
