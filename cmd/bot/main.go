package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"deligo/internal/config"
	"deligo/internal/handler"
	"deligo/internal/middleware"
	"deligo/internal/repository/memory"
	"deligo/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting DeliGo Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize in-memory stores
	sessionStore := memory.NewSessionStore()
	catalogStore := memory.NewCatalog()
	feedStore := memory.NewFeed()

	// Initialize services
	sessionService := service.NewSessionService(sessionStore, logger)
	cartService := service.NewCartService(sessionStore, cfg.DeliveryFee, logger)
	paymentService := service.NewPaymentService(logger)
	orderService := service.NewOrderService(sessionStore, paymentService, cfg.DeliveryFee, logger)
	catalogService := service.NewCatalogService(catalogStore, logger)
	feedService := service.NewFeedService(feedStore)
	locationService := service.NewLocationService(cfg.LocationDelay, logger)
	trackerService := service.NewTrackerService(sessionStore, cfg.TrackerInterval, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(
		middleware.SessionMiddleware(sessionService, logger),
		middleware.LoggingMiddleware(logger),
	)

	// Initialize handler
	h := handler.NewHandler(
		bot,
		sessionService,
		cartService,
		orderService,
		catalogService,
		feedService,
		locationService,
		cfg.Currency,
		cfg.PageSize,
		logger,
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start the mock order tracker in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go trackerService.Run(ctx)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}
