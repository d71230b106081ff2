package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"dotask-bot/config"
	"dotask-bot/config/database"
	"dotask-bot/config/redis"
	_ "dotask-bot/docs" // Swagger docs
	"dotask-bot/internal/httpserver"
	"dotask-bot/internal/middleware"
	"dotask-bot/internal/session"
	sessionMemory "dotask-bot/internal/session/memory"
	sessionRedis "dotask-bot/internal/session/redis"
	tgDelivery "dotask-bot/internal/task/delivery/telegram"
	"dotask-bot/internal/task/repository/sqldb"
	"dotask-bot/internal/task/usecase"
	"dotask-bot/pkg/datemath"
	"dotask-bot/pkg/log"
	"dotask-bot/pkg/ratelimit"
	"dotask-bot/pkg/telegram"
)

// @title       dotask bot API
// @description Telegram task manager bot: webhook and health endpoints.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting dotask bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Telegram mode: %s", cfg.Telegram.Mode)

	// 3. Database
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer database.Disconnect(db)

	dialect := sqldb.Dialect(cfg.Database.Driver)
	if err := sqldb.Migrate(ctx, db, dialect); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}
	logger.Infof(ctx, "✅ Database ready (%s)", cfg.Database.Driver)

	// 4. Sessions
	sessions, closeSessions, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		return
	}
	defer closeSessions()

	// 5. Task domain
	telegramBot, err := telegram.NewBot(cfg.Telegram.BotToken)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Telegram bot: ", err)
		return
	}
	logger.Infof(ctx, "✅ Authorized as @%s", telegramBot.Username())

	dateMathParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	taskRepo := sqldb.New(db, dialect, logger)
	taskUC := usecase.New(logger, taskRepo, dateMathParser, cfg.App.PageSize, cfg.App.DefaultLanguage)
	telegramHandler := tgDelivery.New(
		logger,
		taskUC,
		telegramBot,
		sessions,
		ratelimit.New(cfg.Telegram.UserRatePerMin),
		dateMathParser.Location(),
		cfg.App.DefaultLanguage,
	)

	// 6. HTTP Server
	httpCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
	}
	if cfg.Telegram.Mode == config.TelegramModeWebhook {
		httpCfg.TelegramHandler = telegramHandler
		httpCfg.Middleware = middleware.New(
			logger,
			cfg.Telegram.WebhookSecret,
			ratelimit.New(cfg.Telegram.RateLimitPerMin),
		)
	}
	httpServer, err := httpserver.New(logger, httpCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})

	switch cfg.Telegram.Mode {
	case config.TelegramModeWebhook:
		g.Go(func() error {
			registerWebhook(gctx, logger, telegramBot, cfg.Telegram)
			return nil
		})
	case config.TelegramModePolling:
		if err := telegramBot.DeleteWebhook(); err != nil {
			logger.Warnf(ctx, "Failed to delete Telegram webhook: %v", err)
		}
		g.Go(func() error {
			logger.Info(gctx, "Polling Telegram for updates...")
			return telegramBot.Poll(gctx, cfg.Telegram.PollTimeout, func(u telegram.Update) {
				telegramHandler.HandleUpdate(gctx, u)
			})
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
	}
	telegramHandler.Wait()

	logger.Info(context.Background(), "Server stopped gracefully")
}

// newSessionStore builds the configured session backend and its cleanup.
func newSessionStore(ctx context.Context, cfg *config.Config, logger log.Logger) (session.Store, func(), error) {
	if cfg.Session.Backend != config.SessionBackendRedis {
		logger.Info(ctx, "Using in-memory session store")
		return sessionMemory.New(cfg.Session.Capacity, cfg.Session.TTL), func() {}, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof(ctx, "✅ Redis session store at %s", cfg.Redis.Addr)
	return sessionRedis.New(logger, client, cfg.Session.TTL), func() {
		if err := redis.Disconnect(client); err != nil {
			logger.Warnf(ctx, "Failed to close redis: %v", err)
		}
	}, nil
}

// registerWebhook points Telegram at this service, auto-detecting an ngrok
// tunnel when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Webhook URL unknown: set TELEGRAM_WEBHOOK_URL or run ngrok")
		return
	}

	if err := bot.SetWebhook(webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
