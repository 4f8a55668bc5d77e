package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopcore/shopcore-be/internal/api"
	"github.com/shopcore/shopcore-be/internal/auth"
	"github.com/shopcore/shopcore-be/internal/config"
	"github.com/shopcore/shopcore-be/internal/database"
	"github.com/shopcore/shopcore-be/internal/logger"
	"github.com/shopcore/shopcore-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Ensure the directory for product images exists
	if err := os.MkdirAll(cfg.ImageDir, 0755); err != nil {
		log.Fatalf("Failed to create image directory: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up auth primitives
	hasher, err := auth.NewHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to initialize password hasher: %v", err)
	}
	issuer := auth.NewTokenIssuer(
		cfg.JWTSecret,
		time.Duration(cfg.JWTExpiresDays)*24*time.Hour,
		time.Duration(cfg.CookieExpiresDays)*24*time.Hour,
		cfg.Production,
	)

	// Set up services
	userStore := services.NewUserStore(db)
	authService := services.NewAuthService(userStore, hasher, issuer)
	productService := services.NewProductService(db, cfg.ImageDir)

	// Set up router
	router := api.NewRouter(authService, productService, issuer, cfg.ImageDir)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
