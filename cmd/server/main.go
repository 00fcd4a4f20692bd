package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ejparker/curdboard-backend/config"
	"github.com/ejparker/curdboard-backend/internal/app/controller"
	"github.com/ejparker/curdboard-backend/internal/app/repository"
	"github.com/ejparker/curdboard-backend/internal/app/service"
	"github.com/ejparker/curdboard-backend/internal/middleware"
	"github.com/ejparker/curdboard-backend/internal/router"
	"github.com/ejparker/curdboard-backend/internal/scheduler"
	"github.com/ejparker/curdboard-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Curdboard Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"data_dir":    cfg.Data.Dir,
		"log_level":   logLevel,
	})

	// Make sure the data directory exists; the collections themselves
	// default to empty until written.
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create data directory", err, map[string]interface{}{
			"data_dir": cfg.Data.Dir,
		})
	}

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(cfg.Data.BusinessesFile())
	reviewRepo := repository.NewReviewRepository(cfg.Data.ReviewsFile())
	userRepo := repository.NewUserRepository(cfg.Data.UsersFile())
	couponRepo := repository.NewCouponRepository(cfg.Data.CouponsFile())

	// Initialize services
	authService := service.NewAuthService(userRepo)
	directoryService := service.NewDirectoryService(businessRepo)
	reviewService := service.NewReviewService(reviewRepo, businessRepo)
	profileService := service.NewProfileService(reviewRepo, businessRepo)
	couponService := service.NewCouponService(couponRepo)

	// Initialize controllers
	sessionCookie := controller.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secret: cfg.Session.Secret,
		Expiry: cfg.Session.Expiry,
		Secure: cfg.Session.CookieSecure,
	}
	authController := controller.NewAuthController(authService, sessionCookie)
	businessController := controller.NewBusinessController(directoryService, reviewService)
	profileController := controller.NewProfileController(profileService)
	pageController := controller.NewPageController(couponService)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Session.Secret, cfg.Session.CookieName)

	// Setup router
	r := router.NewRouter(
		authController,
		businessController,
		profileController,
		pageController,
		sessionMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the rating reconciler when a schedule is configured
	var reconciler *scheduler.RatingReconciler
	if cfg.Reconciler.Schedule != "" {
		reconciler = scheduler.NewRatingReconciler(cfg.Reconciler.Schedule, reviewService)
		if err := reconciler.Start(); err != nil {
			logger.Fatal("Failed to start rating reconciler", err)
		}
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	if reconciler != nil {
		reconciler.Stop()
	}
	logger.Info("Server stopped successfully")
}
