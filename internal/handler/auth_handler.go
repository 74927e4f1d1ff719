package handler

import (
	"net/http"

	"github.com/Baaaki/brew-book/internal/service"
	"github.com/Baaaki/brew-book/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService  *service.AuthService
	isProduction bool
}

func NewAuthHandler(authService *service.AuthService, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		isProduction: isProduction,
	}
}

// Field names follow the existing browser client's payloads.
type RegisterRequest struct {
	Username string   `json:"Username" binding:"required"`
	Password string   `json:"Password" binding:"required"`
	Utensils []string `json:"Utensils"`
}

type LoginRequest struct {
	Username string `json:"Username" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

// Register creates an account with its initial equipment selection.
// POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Registration request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	logger.Log.Info("User registration attempt",
		zap.String("username", req.Username),
		zap.String("ip", c.ClientIP()),
	)

	if _, err := h.authService.Register(req.Username, req.Password, req.Utensils); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

// Login verifies credentials and sets the JWT in an HTTP-only cookie.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Login request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		7*24*60*60, // 7 days in seconds
		"/",
		"",
		h.isProduction, // secure (HTTPS-only in production)
		true,           // httpOnly
	)

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetRole reports whether the named account is a user or an admin.
// GET /users/:username/role
func (h *AuthHandler) GetRole(c *gin.Context) {
	role, err := h.authService.GetRole(c.Param("username"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}
