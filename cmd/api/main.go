package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Billmike/MR-API/config"
	"github.com/Billmike/MR-API/internal/api"
	"github.com/Billmike/MR-API/internal/database"
	"github.com/Billmike/MR-API/internal/router"
	"github.com/Billmike/MR-API/internal/server"
	"github.com/Billmike/MR-API/internal/service"
)

func main() {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; the API runs without it.
	var rdb *redis.Client
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		rdb, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		log.Println("REDIS_HOST not set, running without Redis")
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	userService := service.NewUserService(db)
	recipeService := service.NewRecipeService(db)
	engagementService := service.NewEngagementService(db)

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		User:       api.NewUserHandler(userService),
		Recipe:     api.NewRecipeHandler(recipeService),
		Engagement: api.NewEngagementHandler(engagementService),
		Sessions:   authService,
		DB:         db,
		Redis:      rdb,
	}

	if cfg.S3Bucket != "" {
		imageService, err := service.NewImageService(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize image service: %v", err)
		}
		handlers.Image = api.NewImageHandler(imageService)
	} else {
		log.Println("S3_BUCKET not set, image uploads disabled")
	}

	srv := server.New(router.SetupRouter(handlers), cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
