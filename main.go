package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-pricing/config"
	"hotel-pricing/controllers"
	"hotel-pricing/repositories"
	"hotel-pricing/routes"
	"hotel-pricing/services"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	shutdownTracing, err := config.SetupTracing(cfg, os.Stdout)
	if err != nil {
		logger.Error("tracing setup failed", "error", err)
		os.Exit(1)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Error("database connect failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database connection established and migrations applied", "driver", cfg.DBDriver)

	// Repositories
	hotelRepo := repositories.NewHotelRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	policyRepo := repositories.NewPolicyRepository(db)

	// Services
	pricingService := services.NewPricingService(bookingRepo, roomRepo, logger)
	policyService := services.NewPolicyService(hotelRepo, policyRepo, time.Now, logger)

	// Controllers
	pricingController := controllers.NewPricingController(pricingService, logger)
	policyController := controllers.NewPolicyController(policyService, logger)

	router := routes.SetupRouter(pricingController, policyController, cfg.CorsOrigins, logger)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("flushing traces failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped gracefully")
}
