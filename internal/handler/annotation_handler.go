package handler

import (
	"net/http"
	"strconv"

	"github.com/Baaaki/brew-book/internal/middleware"
	"github.com/Baaaki/brew-book/internal/service"
	"github.com/gin-gonic/gin"
)

type AnnotationHandler struct {
	annotationService *service.AnnotationService
}

func NewAnnotationHandler(annotationService *service.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{annotationService: annotationService}
}

type RatingRequest struct {
	// Pointer so an explicit 0 still binds; the score itself is stored
	// without bound checks.
	Rating *int `json:"rating" binding:"required"`
}

type NoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// Rate upserts the caller's score for a recipe.
// POST /recipies/:id/rating?username=...
func (h *AnnotationHandler) Rate(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.annotationService.Rate(id, middleware.CurrentAccount(c), *req.Rating); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddNote attaches free text to a recipe. No identity is required; notes
// are shared per recipe rather than per user.
// POST /recipies/:id/notes
func (h *AnnotationHandler) AddNote(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.annotationService.AddNote(id, req.Note); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteNote removes a note by its current position in the recipe's note
// list. The index is unstable across concurrent edits; clients must fetch
// before deleting.
// DELETE /recipies/:id/notes/:index
func (h *AnnotationHandler) DeleteNote(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note index"})
		return
	}

	if err := h.annotationService.DeleteNote(id, index); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
