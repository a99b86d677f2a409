package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Gateway  GatewayConfig
	Policy   PolicyConfig
	Worker   WorkerConfig
	Log      LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"nextfund"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	Migrate         bool          `env:"DB_MIGRATE" envDefault:"true"`
}
type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	PoolTimeout time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
}
type AuthConfig struct {
	JWTSecret     string `env:"AUTH_JWT_SECRET,required"`
	WebhookSecret string `env:"AUTH_WEBHOOK_SECRET"`
	JobToken      string `env:"AUTH_JOB_TOKEN"`
}
type GatewayConfig struct {
	BaseURL    string        `env:"GATEWAY_BASE_URL" envDefault:"https://api.pushinpay.com.br"`
	Token      string        `env:"GATEWAY_TOKEN"`
	WebhookURL string        `env:"GATEWAY_WEBHOOK_URL"`
	Timeout    time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`
}
type PolicyConfig struct {
	FreeDailyLimit      int             `env:"POLICY_FREE_DAILY_LIMIT" envDefault:"5"`
	FreeContentReward   decimal.Decimal `env:"POLICY_FREE_CONTENT_REWARD" envDefault:"6.00"`
	MinWatchPercent     int             `env:"POLICY_MIN_WATCH_PERCENT" envDefault:"80"`
	QuizRequireCorrect  bool            `env:"POLICY_QUIZ_REQUIRE_CORRECT" envDefault:"false"`
	MinWithdrawal       decimal.Decimal `env:"POLICY_MIN_WITHDRAWAL" envDefault:"15.00"`
	MinWithdrawVipLevel int             `env:"POLICY_MIN_WITHDRAW_VIP_LEVEL" envDefault:"1"`
	MinDeposit          decimal.Decimal `env:"POLICY_MIN_DEPOSIT" envDefault:"10.00"`
}
type WorkerConfig struct {
	DailyResetEnabled       bool   `env:"WORKER_DAILY_RESET_ENABLED" envDefault:"true"`
	DailyResetTimezone      string `env:"WORKER_DAILY_RESET_TZ" envDefault:"America/Sao_Paulo"`
	NotificationConcurrency int    `env:"WORKER_NOTIFICATION_CONCURRENCY" envDefault:"10"`
}
type LogConfig struct {
	Pretty bool `env:"LOG_PRETTY" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Location resolves the timezone the daily boundary is computed in.
func (w WorkerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(w.DailyResetTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", w.DailyResetTimezone, err)
	}
	return loc, nil
}
