package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"belle-detente-backend/config"
	v1 "belle-detente-backend/internal/delivery/http/v1"
	"belle-detente-backend/internal/repository/content"
	"belle-detente-backend/internal/usecase"
	"belle-detente-backend/pkg/email"
	"belle-detente-backend/pkg/logger"
	"belle-detente-backend/pkg/validation"
)

// @title           La Belle Détente API
// @version         1.0
// @description     Backend for the home-massage brochure site: contact form pipeline and content catalog.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting belle-detente backend", "port", cfg.Port)

	// 3. Load Content Catalog
	store, err := content.NewStore()
	if err != nil {
		logger.Log.Error("Failed to load content catalog", "error", err)
		os.Exit(1)
	}

	// 4. Setup Email Sender
	var sender email.Sender
	var configured bool
	switch cfg.EmailProvider {
	case "smtp":
		s := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		sender, configured = s, s.IsConfigured()
	default:
		s := email.NewResendSender(cfg.ResendAPIKey)
		sender, configured = s, s.IsConfigured()
	}
	if !configured || cfg.ContactEmailTo == "" {
		logger.Log.Warn("Email delivery not fully configured - contact forms will be unavailable",
			"provider", cfg.EmailProvider)
	}

	// 5. Setup UseCases
	contactValidator := validation.NewContactValidator()
	contactUC := usecase.NewContactUsecase(contactValidator, sender, cfg.FromAddress, cfg.ContactEmailTo)
	catalogUC := usecase.NewCatalogUsecase(store)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		CatalogUC: catalogUC,
		Content:   store,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
