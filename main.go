package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/config"
	"github.com/yeremiapane/food-ordering-app/database"
	"github.com/yeremiapane/food-ordering-app/feed"
	"github.com/yeremiapane/food-ordering-app/metrics"
	"github.com/yeremiapane/food-ordering-app/repository"
	"github.com/yeremiapane/food-ordering-app/router"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	log := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)

	// Set gin mode
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db, log); err != nil {
		log.Fatalf("Failed to AutoMigrate: %v", err)
	}
	if cfg.SeedData {
		if err := database.Seed(db, log); err != nil {
			log.Fatalf("Failed to seed reference data: %v", err)
		}
	}

	r := router.SetupRouter(buildDeps(cfg, db, log, metrics.NewDefault()))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// buildDeps wires repositories, services and the order feed for the HTTP router.
func buildDeps(cfg config.Config, db *gorm.DB, log *logrus.Logger, m *metrics.Metrics) router.Deps {
	repos := repository.New(db)
	hub := feed.NewHub(log, m)

	customers := services.NewCustomerService(repos, utils.NewPasswordHasher(), utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer), log, m).
		WithSessionCloser(hub)
	payments := services.NewPaymentService(repos)
	addresses := services.NewAddressService(repos, log)
	items := services.NewItemService(repos)

	return router.Deps{
		Config:      cfg,
		Log:         log,
		Metrics:     m,
		Hub:         hub,
		Customers:   customers,
		Addresses:   addresses,
		Restaurants: services.NewRestaurantService(repos, items, log),
		Categories:  services.NewCategoryService(repos),
		Items:       items,
		Payments:    payments,
		Orders:      services.NewOrderService(repos, payments, addresses, items, hub, log, m),
	}
}
