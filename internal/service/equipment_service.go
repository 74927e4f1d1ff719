package service

import (
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/Baaaki/brew-book/pkg/logger"
	"go.uber.org/zap"
)

// equipmentKinds is the closed vocabulary of brewing tools. Kinds are
// referenced by name everywhere; there is no per-instance equipment record.
var equipmentKinds = []string{
	"French Press",
	"Pour-over",
	"Espresso Machine",
	"Cold Brew",
}

type EquipmentService struct {
	userRepo *repository.UserRepository
}

func NewEquipmentService(userRepo *repository.UserRepository) *EquipmentService {
	return &EquipmentService{userRepo: userRepo}
}

// ListKinds returns the fixed equipment vocabulary in its canonical order.
func (s *EquipmentService) ListKinds() []string {
	kinds := make([]string, len(equipmentKinds))
	copy(kinds, equipmentKinds)
	return kinds
}

// GetSelection returns the equipment the user owns.
func (s *EquipmentService) GetSelection(username string) ([]string, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.userRepo.GetEquipment(user.ID)
}

// ReplaceSelection swaps the user's whole selection for the given set.
// Entries are not validated against ListKinds; arbitrary strings are
// accepted. That looseness is inherited behavior, kept on purpose.
func (s *EquipmentService) ReplaceSelection(username string, equipment []string) error {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.ReplaceEquipment(user.ID, equipment); err != nil {
		logger.Log.Error("Failed to replace equipment selection",
			zap.String("username", username),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Equipment selection replaced",
		zap.String("username", username),
		zap.Int("count", len(equipment)),
	)
	return nil
}
