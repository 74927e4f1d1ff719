package service

import (
	"errors"
	"strings"

	"github.com/Baaaki/brew-book/internal/models"
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/Baaaki/brew-book/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrNotRecipeOwner       = errors.New("not your recipe")
	ErrMasterRecipeReadOnly = errors.New("cannot modify master recipes directly")
	ErrCloneSourceNotMaster = errors.New("can only clone master recipes")
)

// RecipeInput carries the caller-supplied fields for create, update and
// clone. InstructionsText is a newline-delimited block; every line becomes
// one step verbatim, blank lines included.
type RecipeInput struct {
	Title            string
	Description      string
	Equipment        []string
	InstructionsText string
	Ingredients      []string
}

// RecipeDetail is the assembled view returned by every catalog read.
// UserRating is the caller's own score on user-facing reads and the
// truncated mean of all scores on the admin listing; 0 means unrated
// either way.
type RecipeDetail struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Equipment      []string `json:"equipment"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
	UserRating     int      `json:"userRating"`
	UserNotes      []string `json:"userNotes"`
	IsMasterRecipe bool     `json:"isMasterRecipe"`
}

type RecipeService struct {
	recipeRepo     *repository.RecipeRepository
	annotationRepo *repository.AnnotationRepository
}

func NewRecipeService(recipeRepo *repository.RecipeRepository, annotationRepo *repository.AnnotationRepository) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		annotationRepo: annotationRepo,
	}
}

// ListMaster returns every master recipe visible to the caller, filtered by
// equipment when a filter is given, each carrying the caller's own rating.
func (s *RecipeService) ListMaster(caller *models.User, equipmentFilter []string) ([]RecipeDetail, error) {
	recipes, err := s.recipeRepo.ListMasterRecipes()
	if err != nil {
		logger.Log.Error("Failed to list master recipes", zap.Error(err))
		return nil, err
	}
	return s.assembleForCaller(recipes, caller, equipmentFilter)
}

// ListPersonal returns the caller's own personal recipes, same shape as
// ListMaster.
func (s *RecipeService) ListPersonal(caller *models.User, equipmentFilter []string) ([]RecipeDetail, error) {
	recipes, err := s.recipeRepo.ListPersonalRecipes(caller.ID)
	if err != nil {
		logger.Log.Error("Failed to list personal recipes",
			zap.String("user_id", caller.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return s.assembleForCaller(recipes, caller, equipmentFilter)
}

// Get returns the full detail of one recipe. Visible iff the recipe is
// master tier or owned by the caller.
func (s *RecipeService) Get(id uint, caller *models.User) (*RecipeDetail, error) {
	recipe, err := s.recipeRepo.GetRecipeByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	if !recipe.IsMaster && recipe.UserID != caller.ID {
		return nil, ErrNotRecipeOwner
	}

	score, err := s.annotationRepo.GetUserRating(recipe.ID, caller.ID)
	if err != nil {
		return nil, err
	}

	detail := buildDetail(recipe, score)
	return &detail, nil
}

// CreatePersonal creates a personal recipe owned by the caller and returns
// the new id.
func (s *RecipeService) CreatePersonal(caller *models.User, input RecipeInput) (uint, error) {
	recipe := &models.Recipe{
		Title:       input.Title,
		Description: input.Description,
		IsMaster:    false,
		UserID:      caller.ID,
	}
	if err := s.createRecipe(recipe, input); err != nil {
		return 0, err
	}

	logger.Log.Info("Personal recipe created",
		zap.Uint("recipe_id", recipe.ID),
		zap.String("user_id", caller.ID.String()),
	)
	return recipe.ID, nil
}

// UpdatePersonal replaces a personal recipe's fields and child collections.
// Master recipes and other users' recipes are off limits.
func (s *RecipeService) UpdatePersonal(id uint, caller *models.User, input RecipeInput) error {
	recipe, err := s.recipeRepo.GetRecipeByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}
	if recipe.IsMaster {
		return ErrMasterRecipeReadOnly
	}
	if recipe.UserID != caller.ID {
		return ErrNotRecipeOwner
	}

	return s.recipeRepo.ReplaceRecipe(
		id, input.Title, input.Description, false,
		input.Equipment, splitInstructions(input.InstructionsText), input.Ingredients,
	)
}

// DeletePersonal deletes a personal recipe and every dependent row under
// the same ownership rule as UpdatePersonal.
func (s *RecipeService) DeletePersonal(id uint, caller *models.User) error {
	recipe, err := s.recipeRepo.GetRecipeByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}
	if recipe.IsMaster {
		return ErrMasterRecipeReadOnly
	}
	if recipe.UserID != caller.ID {
		return ErrNotRecipeOwner
	}

	if err := s.recipeRepo.DeleteRecipeCascade(id); err != nil {
		logger.Log.Error("Failed to delete recipe",
			zap.Uint("recipe_id", id),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Personal recipe deleted",
		zap.Uint("recipe_id", id),
		zap.String("user_id", caller.ID.String()),
	)
	return nil
}

// Clone creates an independent personal copy of a master recipe for the
// caller, built from the caller-supplied overrides rather than the source
// fields (clone-with-edit). Ratings and notes start empty; the source is
// never touched.
func (s *RecipeService) Clone(id uint, caller *models.User, input RecipeInput) (uint, error) {
	source, err := s.recipeRepo.GetRecipeByID(id)
	if err != nil {
		return 0, err
	}
	if source == nil {
		return 0, ErrRecipeNotFound
	}
	if !source.IsMaster {
		return 0, ErrCloneSourceNotMaster
	}

	clone := &models.Recipe{
		Title:       input.Title,
		Description: input.Description,
		IsMaster:    false,
		UserID:      caller.ID,
	}
	if err := s.createRecipe(clone, input); err != nil {
		return 0, err
	}

	logger.Log.Info("Master recipe cloned",
		zap.Uint("source_id", id),
		zap.Uint("clone_id", clone.ID),
		zap.String("user_id", caller.ID.String()),
	)
	return clone.ID, nil
}

// AdminList returns every master recipe with the aggregate rating view:
// the mean of all users' scores truncated toward zero, 0 when unrated.
func (s *RecipeService) AdminList() ([]RecipeDetail, error) {
	recipes, err := s.recipeRepo.ListMasterRecipes()
	if err != nil {
		logger.Log.Error("Failed to list recipes for admin", zap.Error(err))
		return nil, err
	}

	out := make([]RecipeDetail, 0, len(recipes))
	for i := range recipes {
		recipe := &recipes[i]
		out = append(out, buildDetail(recipe, averageScore(recipe.Ratings)))
	}
	return out, nil
}

// AdminCreate creates a master recipe attributed to the creating admin.
func (s *RecipeService) AdminCreate(admin *models.User, input RecipeInput) (uint, error) {
	recipe := &models.Recipe{
		Title:       input.Title,
		Description: input.Description,
		IsMaster:    true,
		UserID:      admin.ID,
	}
	if err := s.createRecipe(recipe, input); err != nil {
		return 0, err
	}

	logger.Log.Info("Master recipe created",
		zap.Uint("recipe_id", recipe.ID),
		zap.String("admin_id", admin.ID.String()),
	)
	return recipe.ID, nil
}

// AdminUpdate replaces a recipe's fields and stamps it master tier, even if
// the target was previously personal. This is the only promote path.
func (s *RecipeService) AdminUpdate(id uint, input RecipeInput) error {
	recipe, err := s.recipeRepo.GetRecipeByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}

	return s.recipeRepo.ReplaceRecipe(
		id, input.Title, input.Description, true,
		input.Equipment, splitInstructions(input.InstructionsText), input.Ingredients,
	)
}

// AdminDelete removes any recipe by id, cascading to its children.
func (s *RecipeService) AdminDelete(id uint) error {
	recipe, err := s.recipeRepo.GetRecipeByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}

	if err := s.recipeRepo.DeleteRecipeCascade(id); err != nil {
		logger.Log.Error("Failed to delete recipe",
			zap.Uint("recipe_id", id),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Recipe deleted by admin", zap.Uint("recipe_id", id))
	return nil
}

func (s *RecipeService) createRecipe(recipe *models.Recipe, input RecipeInput) error {
	err := s.recipeRepo.CreateRecipe(
		recipe,
		input.Equipment,
		splitInstructions(input.InstructionsText),
		input.Ingredients,
	)
	if err != nil {
		logger.Log.Error("Failed to create recipe",
			zap.String("title", input.Title),
			zap.Error(err),
		)
	}
	return err
}

// assembleForCaller applies the equipment filter and attaches the caller's
// own rating to each retained recipe.
func (s *RecipeService) assembleForCaller(recipes []models.Recipe, caller *models.User, equipmentFilter []string) ([]RecipeDetail, error) {
	out := make([]RecipeDetail, 0, len(recipes))
	for i := range recipes {
		recipe := &recipes[i]
		if !matchesEquipment(recipe, equipmentFilter) {
			continue
		}
		score, err := s.annotationRepo.GetUserRating(recipe.ID, caller.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, buildDetail(recipe, score))
	}
	return out, nil
}

// matchesEquipment implements OR semantics: the recipe passes when its
// required-equipment set intersects the filter. An empty filter passes
// everything.
func matchesEquipment(recipe *models.Recipe, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, link := range recipe.Equipment {
		for _, wanted := range filter {
			if link.Equipment == wanted {
				return true
			}
		}
	}
	return false
}

// splitInstructions turns the newline-delimited block into ordered steps.
// Every line is kept verbatim, blank lines included, so the text round-trips.
func splitInstructions(text string) []string {
	return strings.Split(text, "\n")
}

func averageScore(ratings []models.Rating) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Score
	}
	return sum / len(ratings)
}

func buildDetail(recipe *models.Recipe, userRating int) RecipeDetail {
	equipment := make([]string, 0, len(recipe.Equipment))
	for _, link := range recipe.Equipment {
		equipment = append(equipment, link.Equipment)
	}
	ingredients := make([]string, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, ingredient.Text)
	}
	instructions := make([]string, 0, len(recipe.Instructions))
	for _, instruction := range recipe.Instructions {
		instructions = append(instructions, instruction.Step)
	}
	notes := make([]string, 0, len(recipe.Notes))
	for _, note := range recipe.Notes {
		notes = append(notes, note.Content)
	}

	return RecipeDetail{
		ID:             recipe.ID,
		Title:          recipe.Title,
		Description:    recipe.Description,
		Equipment:      equipment,
		Ingredients:    ingredients,
		Instructions:   instructions,
		UserRating:     userRating,
		UserNotes:      notes,
		IsMasterRecipe: recipe.IsMaster,
	}
}
