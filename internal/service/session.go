package service

import (
	"context"
	"time"

	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/logger"
	"iamove/internal/util"

	"go.uber.org/zap"
)

// QuizSessionService drives quiz attempts: starting a session, applying
// answers and firing the completion side effects exactly once.
type QuizSessionService interface {
	Start(ctx context.Context, siteID, personID string, req *dto.StartQuizRequest) (*dto.StartQuizResponse, error)
	SubmitAnswer(ctx context.Context, siteID, personID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetSession(ctx context.Context, personID, sessionID string) (*dto.SessionResponse, error)
}

type quizSessionService struct {
	selector    SelectorService
	store       SessionStore
	personRepo  domain.PersonRepository
	eventRepo   domain.AnswerEventRepository
	progression ProgressionService
	points      PointsService
}

// NewQuizSessionService creates a new instance of quizSessionService
func NewQuizSessionService(
	selector SelectorService,
	store SessionStore,
	personRepo domain.PersonRepository,
	eventRepo domain.AnswerEventRepository,
	progression ProgressionService,
	points PointsService,
) QuizSessionService {
	return &quizSessionService{
		selector:    selector,
		store:       store,
		personRepo:  personRepo,
		eventRepo:   eventRepo,
		progression: progression,
		points:      points,
	}
}

// Start implements QuizSessionService
func (s *quizSessionService) Start(ctx context.Context, siteID, personID string, req *dto.StartQuizRequest) (*dto.StartQuizResponse, error) {
	if !domain.IsValidLevel(req.TargetLevel) {
		return nil, domain.NewInvalidLevelError(req.TargetLevel)
	}

	person, err := s.personRepo.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load person", err)
	}
	if person == nil {
		return nil, domain.NewNotFoundError("Person not found")
	}
	if req.TargetLevel > person.CurrentLevel+1 {
		return nil, domain.NewLevelSkipError(req.TargetLevel, person.CurrentLevel)
	}

	language := req.Language
	if language == "" {
		language = person.Language
	}

	questions, err := s.selector.SelectQuestions(ctx, siteID, req.TargetLevel, language, domain.SessionQuestionCount)
	if err != nil {
		return nil, err
	}

	session := domain.NewQuizSession(util.NewULID(), siteID, personID, req.TargetLevel, language, questions)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	resp := &dto.StartQuizResponse{
		SessionID:      session.ID,
		State:          string(session.State),
		TotalQuestions: len(session.Questions),
	}
	if !session.Terminal() {
		q, _ := session.CurrentQuestion()
		resp.Question = toQuestionView(q)
	}
	return resp, nil
}

// SubmitAnswer implements QuizSessionService
func (s *quizSessionService) SubmitAnswer(ctx context.Context, siteID, personID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := s.store.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.PersonID != personID {
		return nil, domain.NewSessionNotFoundError(req.SessionID)
	}

	question, err := session.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	correct, err := session.ApplyAnswer(req.SelectedIndexes)
	if err != nil {
		return nil, err
	}

	s.recordAnswerEvent(session, question, req.SelectedIndexes, correct)

	resp := &dto.SubmitAnswerResponse{
		Correct: correct,
		Score:   session.Score,
		Errors:  session.Errors,
		State:   string(session.State),
	}

	if session.Terminal() && !session.CompletionSent {
		session.CompletionSent = true
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		passed := session.Passed()
		resp.Passed = &passed

		newLevel, changed, err := s.progression.OnQuizComplete(ctx, personID, session.TargetLevel, passed)
		if err != nil {
			return nil, err
		}
		if changed {
			resp.NewLevel = &newLevel
		}
		if _, err := s.points.AwardAction(ctx, siteID, personID, domain.ActionQuizComplete); err != nil {
			// The quiz outcome stands even when the ledger write fails.
			logger.Get().Error("Failed to award quiz completion points",
				zap.String("person_id", personID),
				zap.String("session_id", session.ID),
				zap.Error(err))
		}
		return resp, nil
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	if session.Terminal() {
		passed := session.Passed()
		resp.Passed = &passed
		return resp, nil
	}

	next, _ := session.CurrentQuestion()
	resp.NextQuestion = toQuestionView(next)
	return resp, nil
}

// GetSession implements QuizSessionService
func (s *quizSessionService) GetSession(ctx context.Context, personID, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.PersonID != personID {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	resp := &dto.SessionResponse{
		SessionID:      session.ID,
		TargetLevel:    session.TargetLevel,
		Language:       session.Language,
		State:          string(session.State),
		Score:          session.Score,
		Errors:         session.Errors,
		Answered:       session.Score + session.Errors,
		TotalQuestions: len(session.Questions),
	}
	if !session.Terminal() {
		q, _ := session.CurrentQuestion()
		resp.Question = toQuestionView(q)
	}
	return resp, nil
}

// recordAnswerEvent persists telemetry without blocking the answer path.
func (s *quizSessionService) recordAnswerEvent(session *domain.QuizSession, question *domain.SessionQuestion, selected []int, correct bool) {
	event := &domain.AnswerEvent{
		ID:              util.NewULID(),
		PersonID:        session.PersonID,
		QuestionID:      question.QuestionID,
		SessionID:       session.ID,
		SelectedIndexes: append([]int(nil), selected...),
		IsCorrect:       correct,
		AttemptedAt:     time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.eventRepo.SaveAnswerEvent(ctx, event); err != nil {
			logger.Get().Warn("Failed to record answer event",
				zap.String("session_id", event.SessionID),
				zap.String("question_id", event.QuestionID),
				zap.Error(err))
		}
	}()
}

func toQuestionView(q *domain.SessionQuestion) *dto.QuestionView {
	answers := make([]dto.AnswerOptionView, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = dto.AnswerOptionView{Index: i, Text: a.Text}
	}
	return &dto.QuestionView{
		QuestionID: q.QuestionID,
		Prompt:     q.Prompt,
		Answers:    answers,
	}
}
