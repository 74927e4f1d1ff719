package router

import (
	"github.com/Baaaki/brew-book/internal/config"
	"github.com/Baaaki/brew-book/internal/handler"
	"github.com/Baaaki/brew-book/internal/middleware"
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Equipment  *handler.EquipmentHandler
	Recipe     *handler.RecipeHandler
	Admin      *handler.AdminHandler
	Annotation *handler.AnnotationHandler
}

// New builds the HTTP surface. Allowed CORS origins come in through the
// config rather than package state, so a deployment can change them without
// touching code. The rate limiter is optional: pass nil to run without one.
func New(cfg *config.Config, users *repository.UserRepository, limiter *middleware.RateLimiter, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	// No identity required
	r.POST("/users", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.GET("/users/:username/role", h.Auth.GetRole)
	r.GET("/equipment", h.Equipment.ListKinds)
	r.GET("/users/:username/equipment", h.Equipment.GetSelection)
	r.PUT("/users/:username/equipment", h.Equipment.ReplaceSelection)

	// Notes are recipe-shared and deliberately unauthenticated.
	r.POST("/recipies/:id/notes", h.Annotation.AddNote)
	r.DELETE("/recipies/:id/notes/:index", h.Annotation.DeleteNote)

	// Catalog routes resolve the caller-supplied username once per request.
	identified := r.Group("", middleware.Identity(users))
	{
		identified.GET("/master/recipies", h.Recipe.ListMaster)
		identified.GET("/recipies", h.Recipe.ListPersonal)
		identified.GET("/recipie/:id", h.Recipe.Get)
		identified.POST("/recipies", h.Recipe.Create)
		identified.PUT("/recipies/:id", h.Recipe.Update)
		identified.DELETE("/recipies/:id", h.Recipe.Delete)
		identified.POST("/recipies/:id/clone", h.Recipe.Clone)
		identified.POST("/recipies/:id/rating", h.Annotation.Rate)
	}

	admin := identified.Group("/admin", middleware.AdminRequired())
	{
		admin.GET("/recipes", h.Admin.List)
		admin.POST("/recipes", h.Admin.Create)
		admin.PUT("/recipes/:id", h.Admin.Update)
		admin.DELETE("/recipes/:id", h.Admin.Delete)
	}

	return r
}
