package service

import (
	"errors"

	"github.com/Baaaki/brew-book/internal/models"
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/Baaaki/brew-book/pkg/logger"
	"go.uber.org/zap"
)

var ErrNoteNotFound = errors.New("note not found")

type AnnotationService struct {
	annotationRepo *repository.AnnotationRepository
}

func NewAnnotationService(annotationRepo *repository.AnnotationRepository) *AnnotationService {
	return &AnnotationService{annotationRepo: annotationRepo}
}

// Rate saves the caller's score for a recipe, replacing any prior score.
// Scores are not bound-checked; any integer is stored as supplied.
func (s *AnnotationService) Rate(recipeID uint, caller *models.User, score int) error {
	if err := s.annotationRepo.UpsertRating(recipeID, caller.ID, score); err != nil {
		logger.Log.Error("Failed to save rating",
			zap.Uint("recipe_id", recipeID),
			zap.String("user_id", caller.ID.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Rating saved",
		zap.Uint("recipe_id", recipeID),
		zap.String("user_id", caller.ID.String()),
		zap.Int("score", score),
	)
	return nil
}

// AddNote attaches free text to a recipe. Notes carry no author and no
// recipe-existence check is made; a note against an unknown id is accepted
// silently. Inherited looseness, kept on purpose.
func (s *AnnotationService) AddNote(recipeID uint, content string) error {
	return s.annotationRepo.AddNote(recipeID, content)
}

// DeleteNote removes the note at the given position within the recipe's
// notes in storage iteration order. The index is only meaningful against
// the list as it exists right now; callers must not cache it.
func (s *AnnotationService) DeleteNote(recipeID uint, index int) error {
	notes, err := s.annotationRepo.ListNotes(recipeID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(notes) {
		return ErrNoteNotFound
	}

	return s.annotationRepo.DeleteNoteByID(notes[index].ID)
}
