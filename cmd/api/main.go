package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"music-store-backend/internal/client"
	"music-store-backend/internal/config"
	"music-store-backend/internal/discount"
	"music-store-backend/internal/handler"
	"music-store-backend/internal/logger"
	"music-store-backend/internal/repository"
	"music-store-backend/internal/server"
	"music-store-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, cfg.Environment)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !cfg.StripeConfigured() {
		log.Warn("STRIPE_SECRET_KEY is not set; checkout and webhooks will fail")
	}
	if !cfg.MailConfigured() {
		log.Warn("SMTP credentials are not set; transactional emails will fail")
	}

	db, err := client.InitSqliteClient(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	stripeClient := client.NewStripeClient(&cfg.Stripe)
	mailClient := client.NewSMTPMailClient(&cfg.SMTP)

	webhookEventRepo := repository.NewWebhookEventRepository(db)

	evaluator := discount.NewEvaluator(discount.DefaultRules())
	notificationService := service.NewNotificationService(mailClient, cfg)
	checkoutService := service.NewCheckoutService(stripeClient, evaluator, cfg.Business.Name, cfg.FrontendURL)
	webhookService := service.NewWebhookService(stripeClient, notificationService, webhookEventRepo, log)
	contactService := service.NewContactService(notificationService)

	paymentHandler := handler.NewPaymentHandler(checkoutService, webhookService, stripeClient, cfg.Stripe.SecretKey)
	contactHandler := handler.NewContactHandler(contactService)

	srv := server.NewServer(cfg, log, paymentHandler, contactHandler)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", zap.String("address", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
