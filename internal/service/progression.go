package service

import (
	"context"

	"iamove/internal/domain"
)

// ProgressionService applies the level progression rule after a finished quiz.
type ProgressionService interface {
	// OnQuizComplete returns the person's level after applying the result.
	// A pass raises the level to targetLevel only when that is exactly one
	// above the current level; the level never decreases.
	OnQuizComplete(ctx context.Context, personID string, targetLevel int, passed bool) (newLevel int, changed bool, err error)
}

type progressionService struct {
	personRepo domain.PersonRepository
}

// NewProgressionService creates a new instance of progressionService
func NewProgressionService(personRepo domain.PersonRepository) ProgressionService {
	return &progressionService{personRepo: personRepo}
}

// OnQuizComplete implements ProgressionService
func (s *progressionService) OnQuizComplete(ctx context.Context, personID string, targetLevel int, passed bool) (int, bool, error) {
	if !domain.IsValidLevel(targetLevel) {
		return 0, false, domain.NewInvalidLevelError(targetLevel)
	}

	person, err := s.personRepo.GetPersonByID(ctx, personID)
	if err != nil {
		return 0, false, domain.NewInternalError("Failed to load person", err)
	}
	if person == nil {
		return 0, false, domain.NewNotFoundError("Person not found")
	}

	if !passed || targetLevel <= person.CurrentLevel {
		return person.CurrentLevel, false, nil
	}
	// Rechecked here because the session was validated at start; the level
	// may have moved since.
	if targetLevel > person.CurrentLevel+1 {
		return 0, false, domain.NewLevelSkipError(targetLevel, person.CurrentLevel)
	}

	if err := s.personRepo.UpdateCurrentLevel(ctx, personID, targetLevel); err != nil {
		return 0, false, domain.NewInternalError("Failed to update level", err)
	}
	return targetLevel, true, nil
}
