package middleware

import (
	"net/http"

	"github.com/Baaaki/brew-book/internal/models"
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/gin-gonic/gin"
)

const accountKey = "account"

// Identity resolves the caller-supplied username into an account record
// once per request and stores it in the request context. There is no
// session state: every catalog operation re-supplies and re-resolves the
// bare username. The caller is trusted to be who they claim; no credential
// is checked here.
func Identity(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "username query parameter required",
			})
			c.Abort()
			return
		}

		user, err := users.GetUserByUsername(username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve user",
			})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			c.Abort()
			return
		}

		c.Set(accountKey, user)
		c.Next()
	}
}

// AdminRequired gates a route group to accounts with role=admin. Must run
// after Identity.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		if !account.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentAccount returns the account resolved by Identity, or nil when the
// middleware has not run on this request.
func CurrentAccount(c *gin.Context) *models.User {
	value, ok := c.Get(accountKey)
	if !ok {
		return nil
	}
	account, _ := value.(*models.User)
	return account
}
