package main

import (
	"log"
	"os"

	"github.com/Baaaki/brew-book/internal/config"
	"github.com/Baaaki/brew-book/internal/database"
	"github.com/Baaaki/brew-book/internal/models"
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/Baaaki/brew-book/internal/utils"
	"github.com/google/uuid"
)

type starterRecipe struct {
	title        string
	description  string
	equipment    []string
	instructions []string
	ingredients  []string
}

var starterRecipes = []starterRecipe{
	{
		title:       "Pour Over Basics",
		description: "A clean, balanced cup for everyday brewing.",
		equipment:   []string{"Pour-over"},
		instructions: []string{
			"Rinse the filter with hot water and discard the rinse water.",
			"Add 20g of medium-fine grounds.",
			"Bloom with 40g of water for 30 seconds.",
			"Pour the remaining 280g of water in slow circles.",
			"Total brew time should land around 3 minutes.",
		},
		ingredients: []string{"20g coffee, medium-fine grind", "320g water at 94C"},
	},
	{
		title:       "Classic French Press",
		description: "Full-bodied immersion brew.",
		equipment:   []string{"French Press"},
		instructions: []string{
			"Add 30g of coarse grounds to the press.",
			"Fill with 500g of water just off the boil.",
			"Steep for 4 minutes, then press slowly.",
		},
		ingredients: []string{"30g coffee, coarse grind", "500g water at 96C"},
	},
	{
		title:       "Overnight Cold Brew",
		description: "Low-acid concentrate, ready by morning.",
		equipment:   []string{"Cold Brew"},
		instructions: []string{
			"Combine 100g of coarse grounds with 1L of cold water.",
			"Steep in the fridge for 14 hours.",
			"Strain and dilute 1:1 before serving.",
		},
		ingredients: []string{"100g coffee, coarse grind", "1L cold water"},
	},
}

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_PASSWORD")
	}

	var admin models.User
	result := database.DB.Where("username = ?", adminUsername).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Username)
	} else {
		passwordHash, err := utils.HashPassword(adminPassword)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}

		admin = models.User{
			ID:           uuid.New(),
			Username:     adminUsername,
			PasswordHash: passwordHash,
			Role:         models.RoleAdmin,
		}
		if err := database.DB.Create(&admin).Error; err != nil {
			log.Fatal("Failed to create admin:", err)
		}
		log.Println("Admin user created:", admin.Username)
	}

	// Only seed the master catalog into an empty recipe table.
	var count int64
	database.DB.Model(&models.Recipe{}).Count(&count)
	if count > 0 {
		log.Printf("Recipe table already has %d rows, skipping catalog seed", count)
		return
	}

	recipeRepo := repository.NewRecipeRepository(database.DB)
	for _, seed := range starterRecipes {
		recipe := models.Recipe{
			Title:       seed.title,
			Description: seed.description,
			IsMaster:    true,
			UserID:      admin.ID,
		}
		if err := recipeRepo.CreateRecipe(&recipe, seed.equipment, seed.instructions, seed.ingredients); err != nil {
			log.Fatal("Failed to seed recipe:", err)
		}
		log.Printf("Seeded master recipe %q (id=%d)", seed.title, recipe.ID)
	}
}
