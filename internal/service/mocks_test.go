package service

import (
	"context"
	"time"

	"iamove/internal/domain"
	"iamove/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetRandomActiveQuestions(ctx context.Context, siteID string, level, count int) ([]*domain.Question, error) {
	args := m.Called(ctx, siteID, level, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListActiveQuestions(ctx context.Context, siteID string) ([]*domain.Question, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) SetQuestionActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteQuestion(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockTranslationRepository ---
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Upsert(ctx context.Context, translation *domain.Translation) error {
	args := m.Called(ctx, translation)
	return args.Error(0)
}

func (m *MockTranslationRepository) GetByQuestionAndLanguage(ctx context.Context, questionID, languageCode string) (*domain.Translation, error) {
	args := m.Called(ctx, questionID, languageCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]map[string]*domain.Translation, error) {
	args := m.Called(ctx, questionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]*domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListKeysBySite(ctx context.Context, siteID string) ([]domain.TranslationKey, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TranslationKey), args.Error(1)
}

func (m *MockTranslationRepository) DeleteByQuestionID(ctx context.Context, questionID string) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

// --- MockPersonRepository ---
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) GetPersonByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) UpdateCurrentLevel(ctx context.Context, personID string, level int) error {
	args := m.Called(ctx, personID, level)
	return args.Error(0)
}

func (m *MockPersonRepository) IncrementPoints(ctx context.Context, personID string, delta int) (int, error) {
	args := m.Called(ctx, personID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockPersonRepository) GetRank(ctx context.Context, siteID, personID string) (int, error) {
	args := m.Called(ctx, siteID, personID)
	return args.Int(0), args.Error(1)
}

func (m *MockPersonRepository) ListRankedBySite(ctx context.Context, siteID string, limit int) ([]domain.RankedPerson, error) {
	args := m.Called(ctx, siteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedPerson), args.Error(1)
}

// --- MockSiteRepository ---
type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) GetSiteByID(ctx context.Context, id string) (*domain.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

// --- MockAnswerEventRepository ---
type MockAnswerEventRepository struct {
	mock.Mock
}

func (m *MockAnswerEventRepository) SaveAnswerEvent(ctx context.Context, event *domain.AnswerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) SAdd(ctx context.Context, key, member string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, member, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockTranslator ---
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}

// --- MockTransactionManager ---
// Runs the function directly; transaction boundaries are the repository
// layer's concern.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// --- MockSessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSession), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// --- MockSelectorService ---
type MockSelectorService struct {
	mock.Mock
}

func (m *MockSelectorService) SelectQuestions(ctx context.Context, siteID string, level int, language string, count int) ([]domain.SessionQuestion, error) {
	args := m.Called(ctx, siteID, level, language, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SessionQuestion), args.Error(1)
}

// --- MockProgressionService ---
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) OnQuizComplete(ctx context.Context, personID string, targetLevel int, passed bool) (int, bool, error) {
	args := m.Called(ctx, personID, targetLevel, passed)
	return args.Int(0), args.Bool(1), args.Error(2)
}

// --- MockPointsService ---
type MockPointsService struct {
	mock.Mock
}

func (m *MockPointsService) Award(ctx context.Context, siteID, personID string, req *dto.AwardPointsRequest) (*dto.AwardPointsResponse, error) {
	args := m.Called(ctx, siteID, personID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AwardPointsResponse), args.Error(1)
}

func (m *MockPointsService) AwardAction(ctx context.Context, siteID, personID string, key domain.ActionKey) (int, error) {
	args := m.Called(ctx, siteID, personID, key)
	return args.Int(0), args.Error(1)
}

func (m *MockPointsService) Scoreboard(ctx context.Context, siteID string, limit int) (*dto.ScoreboardResponse, error) {
	args := m.Called(ctx, siteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ScoreboardResponse), args.Error(1)
}
