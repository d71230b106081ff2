package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{BotToken: "t", Mode: TelegramModePolling},
		Session:  SessionConfig{Backend: SessionBackendMemory},
		App:      AppConfig{PageSize: 5},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing token", func(c *Config) { c.Telegram.BotToken = "" }, "bot_token"},
		{"bad mode", func(c *Config) { c.Telegram.Mode = "push" }, "telegram.mode"},
		{"bad session backend", func(c *Config) { c.Session.Backend = "disk" }, "session.backend"},
		{"bad page size", func(c *Config) { c.App.PageSize = 0 }, "page_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_MODE", "WEBHOOK")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("APP_PAGE_SIZE", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.BotToken != "123:abc" || cfg.Telegram.Mode != TelegramModeWebhook {
		t.Errorf("unexpected telegram config: %+v", cfg.Telegram)
	}
	if cfg.Session.TTL.Minutes() != 5 || cfg.App.PageSize != 7 {
		t.Errorf("unexpected overrides: ttl=%v page_size=%d", cfg.Session.TTL, cfg.App.PageSize)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Session.Backend != SessionBackendMemory {
		t.Errorf("unexpected defaults: %+v %+v", cfg.Database, cfg.Session)
	}
}
