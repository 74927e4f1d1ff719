package handler

import (
	"net/http"

	"github.com/Baaaki/brew-book/internal/middleware"
	"github.com/Baaaki/brew-book/internal/service"
	"github.com/Baaaki/brew-book/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the master-catalog curation operations. All routes
// sit behind the Identity and AdminRequired middleware.
type AdminHandler struct {
	recipeService *service.RecipeService
}

func NewAdminHandler(recipeService *service.RecipeService) *AdminHandler {
	return &AdminHandler{recipeService: recipeService}
}

// List returns every master recipe with the aggregate rating view.
// GET /admin/recipes?username=...
func (h *AdminHandler) List(c *gin.Context) {
	details, err := h.recipeService.AdminList()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// Create adds a master recipe attributed to the calling admin.
// POST /admin/recipes?username=...
func (h *AdminHandler) Create(c *gin.Context) {
	var payload RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	admin := middleware.CurrentAccount(c)
	id, err := h.recipeService.AdminCreate(admin, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Log.Info("Admin created master recipe",
		zap.String("admin_id", admin.ID.String()),
		zap.Uint("recipe_id", id),
	)

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Update replaces any recipe by id and stamps it master tier.
// PUT /admin/recipes/:id?username=...
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var payload RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.recipeService.AdminUpdate(id, payload.toInput()); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete removes any recipe by id.
// DELETE /admin/recipes/:id?username=...
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipeService.AdminDelete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
