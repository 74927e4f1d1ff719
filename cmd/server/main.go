package main

import (
	"log"

	"github.com/Baaaki/brew-book/internal/config"
	"github.com/Baaaki/brew-book/internal/database"
	"github.com/Baaaki/brew-book/internal/handler"
	"github.com/Baaaki/brew-book/internal/middleware"
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/Baaaki/brew-book/internal/router"
	"github.com/Baaaki/brew-book/internal/service"
	"github.com/Baaaki/brew-book/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Rate limiting is skipped when no Redis is configured.
	var limiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		limiter = middleware.NewRateLimiter(redis.NewClient(opts), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		})
	}

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	annotationRepo := repository.NewAnnotationRepository(database.DB)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	equipmentService := service.NewEquipmentService(userRepo)
	recipeService := service.NewRecipeService(recipeRepo, annotationRepo)
	annotationService := service.NewAnnotationService(annotationRepo)

	r := router.New(cfg, userRepo, limiter, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg.IsProduction()),
		Equipment:  handler.NewEquipmentHandler(equipmentService),
		Recipe:     handler.NewRecipeHandler(recipeService),
		Admin:      handler.NewAdminHandler(recipeService),
		Annotation: handler.NewAnnotationHandler(annotationService),
	})

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := r.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
