package service

import (
	"context"

	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/logger"

	"go.uber.org/zap"
)

// AssessmentService handles the onboarding self-assessment gate.
type AssessmentService interface {
	GateStatus(ctx context.Context, personID string) (*dto.GateStatusResponse, error)
	// SetSelfAssessedLevel stores the declared starting level. Level 0 is a
	// valid, explicit "I don't know" and keeps the gate active.
	SetSelfAssessedLevel(ctx context.Context, siteID, personID string, req *dto.SelfAssessmentRequest) (*dto.SelfAssessmentResponse, error)
}

type assessmentService struct {
	personRepo domain.PersonRepository
	points     PointsService
}

// NewAssessmentService creates a new instance of assessmentService
func NewAssessmentService(personRepo domain.PersonRepository, points PointsService) AssessmentService {
	return &assessmentService{personRepo: personRepo, points: points}
}

// GateStatus implements AssessmentService
func (s *assessmentService) GateStatus(ctx context.Context, personID string) (*dto.GateStatusResponse, error) {
	person, err := s.personRepo.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load person", err)
	}
	if person == nil {
		return nil, domain.NewNotFoundError("Person not found")
	}
	return &dto.GateStatusResponse{
		Required:     person.NeedsSelfAssessment(),
		CurrentLevel: person.CurrentLevel,
	}, nil
}

// SetSelfAssessedLevel implements AssessmentService
func (s *assessmentService) SetSelfAssessedLevel(ctx context.Context, siteID, personID string, req *dto.SelfAssessmentRequest) (*dto.SelfAssessmentResponse, error) {
	if !domain.IsValidSelfAssessment(req.Level) {
		return nil, domain.NewInvalidLevelError(req.Level)
	}

	person, err := s.personRepo.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load person", err)
	}
	if person == nil {
		return nil, domain.NewNotFoundError("Person not found")
	}
	// Self-assessment is an onboarding-only entry point; once a level is
	// set, only passed quizzes can move it.
	if !person.NeedsSelfAssessment() {
		return nil, domain.NewInvalidInputError("Level already assessed")
	}

	resp := &dto.SelfAssessmentResponse{CurrentLevel: req.Level}
	if req.Level == 0 {
		resp.Warning = "Level not set; the self-assessment will be asked again next session"
		return resp, nil
	}

	if err := s.personRepo.UpdateCurrentLevel(ctx, personID, req.Level); err != nil {
		return nil, domain.NewInternalError("Failed to update level", err)
	}

	if _, err := s.points.AwardAction(ctx, siteID, personID, domain.ActionSelfAssessment); err != nil {
		logger.Get().Error("Failed to award self-assessment points",
			zap.String("person_id", personID),
			zap.Error(err))
	}
	return resp, nil
}
