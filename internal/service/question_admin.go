package service

import (
	"context"

	"iamove/internal/domain"
	"iamove/internal/dto"
)

// QuestionAdminService is the question bank management surface.
type QuestionAdminService interface {
	CreateQuestion(ctx context.Context, siteID string, req *dto.CreateQuestionRequest) (*dto.QuestionAdminResponse, error)
	// UpdateQuestion persists the edit and, when the prompt or options
	// changed, drops every translation so the backfill regenerates them.
	UpdateQuestion(ctx context.Context, siteID, questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionAdminResponse, error)
	SetQuestionActive(ctx context.Context, siteID, questionID string, active bool) error
	DeleteQuestion(ctx context.Context, siteID, questionID string) error
	ListQuestions(ctx context.Context, siteID string) ([]dto.QuestionAdminResponse, error)
}

type questionAdminService struct {
	questionRepo    domain.QuestionRepository
	translationRepo domain.TranslationRepository
	txManager       domain.TransactionManager
}

// NewQuestionAdminService creates a new instance of questionAdminService
func NewQuestionAdminService(
	questionRepo domain.QuestionRepository,
	translationRepo domain.TranslationRepository,
	txManager domain.TransactionManager,
) QuestionAdminService {
	return &questionAdminService{
		questionRepo:    questionRepo,
		translationRepo: translationRepo,
		txManager:       txManager,
	}
}

// CreateQuestion implements QuestionAdminService
func (s *questionAdminService) CreateQuestion(ctx context.Context, siteID string, req *dto.CreateQuestionRequest) (*dto.QuestionAdminResponse, error) {
	question := domain.NewQuestion(siteID, req.Prompt, toDomainAnswers(req.Answers), req.Level, req.Category)
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.questionRepo.SaveQuestion(ctx, question); err != nil {
		return nil, domain.NewInternalError("Failed to save question", err)
	}
	return toAdminResponse(question), nil
}

// UpdateQuestion implements QuestionAdminService
func (s *questionAdminService) UpdateQuestion(ctx context.Context, siteID, questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionAdminResponse, error) {
	existing, err := s.loadSiteQuestion(ctx, siteID, questionID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Prompt = req.Prompt
	updated.Answers = toDomainAnswers(req.Answers)
	updated.Level = req.Level
	updated.Category = req.Category
	updated.Active = req.Active
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	structural := structuralChange(existing, &updated)
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.questionRepo.UpdateQuestion(txCtx, &updated); err != nil {
			return err
		}
		if structural {
			return s.translationRepo.DeleteByQuestionID(txCtx, questionID)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to update question", err)
	}
	return toAdminResponse(&updated), nil
}

// SetQuestionActive implements QuestionAdminService
func (s *questionAdminService) SetQuestionActive(ctx context.Context, siteID, questionID string, active bool) error {
	if _, err := s.loadSiteQuestion(ctx, siteID, questionID); err != nil {
		return err
	}
	if err := s.questionRepo.SetQuestionActive(ctx, questionID, active); err != nil {
		return domain.NewInternalError("Failed to change question status", err)
	}
	return nil
}

// DeleteQuestion implements QuestionAdminService
func (s *questionAdminService) DeleteQuestion(ctx context.Context, siteID, questionID string) error {
	if _, err := s.loadSiteQuestion(ctx, siteID, questionID); err != nil {
		return err
	}
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.questionRepo.DeleteQuestion(txCtx, questionID); err != nil {
			return err
		}
		return s.translationRepo.DeleteByQuestionID(txCtx, questionID)
	})
	if err != nil {
		return domain.NewInternalError("Failed to delete question", err)
	}
	return nil
}

// ListQuestions implements QuestionAdminService
func (s *questionAdminService) ListQuestions(ctx context.Context, siteID string) ([]dto.QuestionAdminResponse, error) {
	questions, err := s.questionRepo.ListActiveQuestions(ctx, siteID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}
	out := make([]dto.QuestionAdminResponse, len(questions))
	for i, q := range questions {
		out[i] = *toAdminResponse(q)
	}
	return out, nil
}

func (s *questionAdminService) loadSiteQuestion(ctx context.Context, siteID, questionID string) (*domain.Question, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load question", err)
	}
	if question == nil || question.SiteID != siteID {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}
	return question, nil
}

// structuralChange reports whether the edit invalidates existing translations.
// Level and category changes keep them; any text or flag change does not.
func structuralChange(before, after *domain.Question) bool {
	if before.Prompt != after.Prompt || len(before.Answers) != len(after.Answers) {
		return true
	}
	for i := range before.Answers {
		if before.Answers[i] != after.Answers[i] {
			return true
		}
	}
	return false
}

func toDomainAnswers(in []dto.AnswerOptionInput) []domain.AnswerOption {
	out := make([]domain.AnswerOption, len(in))
	for i, a := range in {
		out[i] = domain.AnswerOption{Text: a.Text, IsCorrect: a.IsCorrect}
	}
	return out
}

func toAdminResponse(q *domain.Question) *dto.QuestionAdminResponse {
	answers := make([]dto.AnswerOptionInput, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = dto.AnswerOptionInput{Text: a.Text, IsCorrect: a.IsCorrect}
	}
	return &dto.QuestionAdminResponse{
		ID:        q.ID,
		Prompt:    q.Prompt,
		Answers:   answers,
		Level:     q.Level,
		Category:  q.Category,
		Active:    q.Active,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
