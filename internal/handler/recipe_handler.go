package handler

import (
	"net/http"
	"strconv"

	"github.com/Baaaki/brew-book/internal/middleware"
	"github.com/Baaaki/brew-book/internal/service"
	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RecipePayload mirrors the browser client's recipe form. "Recipie" and the
// wrapped utensil objects are historical field names, kept so the existing
// client keeps working.
type RecipePayload struct {
	Title       string       `json:"Title" binding:"required"`
	Description string       `json:"Description"`
	Utensils    []UtensilRef `json:"Utensils"`
	Recipie     string       `json:"Recipie"`
	Ingredients []string     `json:"Ingredients"`
}

type UtensilRef struct {
	Utensil string `json:"Utensil"`
}

func (p *RecipePayload) toInput() service.RecipeInput {
	equipment := make([]string, 0, len(p.Utensils))
	for _, ref := range p.Utensils {
		equipment = append(equipment, ref.Utensil)
	}
	return service.RecipeInput{
		Title:            p.Title,
		Description:      p.Description,
		Equipment:        equipment,
		InstructionsText: p.Recipie,
		Ingredients:      p.Ingredients,
	}
}

// recipeID parses the :id path parameter, replying 400 on garbage.
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return 0, false
	}
	return uint(id), true
}

// ListMaster returns every master recipe, optionally filtered by equipment,
// with the caller's own rating attached. Responds with a bare array; the
// personal listing wraps its array. Both shapes are client contract.
// GET /master/recipies?username=...&equipment=...
func (h *RecipeHandler) ListMaster(c *gin.Context) {
	account := middleware.CurrentAccount(c)

	details, err := h.recipeService.ListMaster(account, c.QueryArray("equipment"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ListPersonal returns the caller's personal recipes.
// GET /recipies?username=...&equipment=...
func (h *RecipeHandler) ListPersonal(c *gin.Context) {
	account := middleware.CurrentAccount(c)

	details, err := h.recipeService.ListPersonal(account, c.QueryArray("equipment"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": details})
}

// Get returns one recipe if it is master tier or owned by the caller.
// GET /recipie/:id?username=...
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	detail, err := h.recipeService.Get(id, middleware.CurrentAccount(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create adds a personal recipe owned by the caller.
// POST /recipies?username=...
func (h *RecipeHandler) Create(c *gin.Context) {
	var payload RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.recipeService.CreatePersonal(middleware.CurrentAccount(c), payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Update replaces a personal recipe owned by the caller.
// PUT /recipies/:id?username=...
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var payload RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.recipeService.UpdatePersonal(id, middleware.CurrentAccount(c), payload.toInput()); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete removes a personal recipe owned by the caller, cascading to its
// children.
// DELETE /recipies/:id?username=...
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipeService.DeletePersonal(id, middleware.CurrentAccount(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Clone creates an independent personal copy of a master recipe using the
// submitted field overrides.
// POST /recipies/:id/clone?username=...
func (h *RecipeHandler) Clone(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var payload RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cloneID, err := h.recipeService.Clone(id, middleware.CurrentAccount(c), payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": cloneID})
}
