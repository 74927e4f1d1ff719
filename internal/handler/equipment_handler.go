package handler

import (
	"net/http"

	"github.com/Baaaki/brew-book/internal/service"
	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	equipmentService *service.EquipmentService
}

func NewEquipmentHandler(equipmentService *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

type EquipmentRequest struct {
	Utensils []string `json:"Utensils" binding:"required"`
}

// ListKinds returns the fixed equipment vocabulary.
// GET /equipment
func (h *EquipmentHandler) ListKinds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"equipment": h.equipmentService.ListKinds()})
}

// GetSelection returns the named user's equipment.
// GET /users/:username/equipment
func (h *EquipmentHandler) GetSelection(c *gin.Context) {
	equipment, err := h.equipmentService.GetSelection(c.Param("username"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"equipment": equipment})
}

// ReplaceSelection swaps the user's whole selection for the submitted set.
// PUT /users/:username/equipment
func (h *EquipmentHandler) ReplaceSelection(c *gin.Context) {
	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := h.equipmentService.ReplaceSelection(c.Param("username"), req.Utensils); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"equipment": req.Utensils})
}
