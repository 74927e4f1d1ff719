package testutil

import (
	"github.com/Baaaki/brew-book/internal/models"
	"github.com/Baaaki/brew-book/internal/utils"
	"github.com/google/uuid"
)

// CreateTestUser creates a test user with a hashed password.
func CreateTestUser(username, password string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
	}, nil
}

// DefaultTestUser returns a default regular user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "Test123456", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "Admin123456", models.RoleAdmin)
}
