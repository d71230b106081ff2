package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Telegram run modes.
const (
	TelegramModeWebhook = "webhook"
	TelegramModePolling = "polling"
)

// Session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bot
	Telegram TelegramConfig
	App      AppConfig

	// Storage
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken        string
	Mode            string
	WebhookURL      string
	WebhookSecret   string
	NgrokAPIURL     string
	PollTimeout     int
	RateLimitPerMin int
	UserRatePerMin  int
}

type AppConfig struct {
	DefaultLanguage string
	Timezone        string
	PageSize        int
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Backend  string
	TTL      time.Duration
	Capacity int
}

// Load loads configuration using Viper.
// A .env file is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/dotask/
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/dotask/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.Mode = strings.ToLower(viper.GetString("telegram.mode"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	cfg.Telegram.PollTimeout = viper.GetInt("telegram.poll_timeout")
	cfg.Telegram.RateLimitPerMin = viper.GetInt("telegram.rate_limit_per_min")
	cfg.Telegram.UserRatePerMin = viper.GetInt("telegram.user_rate_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if secret := viper.GetString("telegram_webhook_secret"); secret != "" {
		cfg.Telegram.WebhookSecret = secret
	}

	// App
	cfg.App.DefaultLanguage = viper.GetString("app.default_language")
	cfg.App.Timezone = viper.GetString("app.timezone")
	cfg.App.PageSize = viper.GetInt("app.page_size")

	// Storage
	cfg.Database.Driver = strings.ToLower(viper.GetString("database.driver"))
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.Session.Backend = strings.ToLower(viper.GetString("session.backend"))
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.Capacity = viper.GetInt("session.capacity")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("telegram.mode", TelegramModePolling)
	viper.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")
	viper.SetDefault("telegram.poll_timeout", 30)
	viper.SetDefault("telegram.rate_limit_per_min", 600)
	viper.SetDefault("telegram.user_rate_per_min", 60)

	viper.SetDefault("app.default_language", "en")
	viper.SetDefault("app.timezone", "UTC")
	viper.SetDefault("app.page_size", 5)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "file:dotask.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	viper.SetDefault("database.max_open_conns", 1)
	viper.SetDefault("database.max_idle_conns", 1)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("session.backend", SessionBackendMemory)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.capacity", 10000)
}

func (cfg *Config) validate() error {
	if cfg.Telegram.BotToken == "" {
		return errors.New("telegram.bot_token (TELEGRAM_BOT_TOKEN) is required")
	}
	switch cfg.Telegram.Mode {
	case TelegramModeWebhook, TelegramModePolling:
	default:
		return fmt.Errorf("telegram.mode must be %q or %q, got %q", TelegramModeWebhook, TelegramModePolling, cfg.Telegram.Mode)
	}
	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("session.backend must be %q or %q, got %q", SessionBackendMemory, SessionBackendRedis, cfg.Session.Backend)
	}
	if cfg.App.PageSize < 1 {
		return fmt.Errorf("app.page_size must be positive, got %d", cfg.App.PageSize)
	}
	return nil
}
