package service

import (
	"context"
	"fmt"
	"testing"

	"iamove/internal/domain"
	"iamove/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sessionQuestions(n int) []domain.SessionQuestion {
	questions := make([]domain.SessionQuestion, n)
	for i := range questions {
		questions[i] = domain.SessionQuestion{
			QuestionID: fmt.Sprintf("q-%02d", i),
			Prompt:     fmt.Sprintf("Question %d", i),
			Answers: []domain.AnswerOption{
				{Text: "right", IsCorrect: true},
				{Text: "wrong"},
			},
		}
	}
	return questions
}

type sessionServiceFixture struct {
	selector    *MockSelectorService
	store       *MockSessionStore
	personRepo  *MockPersonRepository
	eventRepo   *MockAnswerEventRepository
	progression *MockProgressionService
	points      *MockPointsService
	svc         QuizSessionService
}

func newSessionServiceFixture() *sessionServiceFixture {
	f := &sessionServiceFixture{
		selector:    new(MockSelectorService),
		store:       new(MockSessionStore),
		personRepo:  new(MockPersonRepository),
		eventRepo:   new(MockAnswerEventRepository),
		progression: new(MockProgressionService),
		points:      new(MockPointsService),
	}
	f.svc = NewQuizSessionService(f.selector, f.store, f.personRepo, f.eventRepo, f.progression, f.points)
	return f
}

func TestStart_ReturnsFirstQuestionWithoutCorrectnessFlags(t *testing.T) {
	f := newSessionServiceFixture()

	f.personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 2, Language: "fr"}, nil)
	f.selector.On("SelectQuestions", mock.Anything, "site-1", 3, "en", domain.SessionQuestionCount).
		Return(sessionQuestions(20), nil)
	f.store.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.svc.Start(context.Background(), "site-1", "person-1", &dto.StartQuizRequest{
		TargetLevel: 3,
		Language:    "en",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, string(domain.SessionInProgress), resp.State)
	assert.Equal(t, 20, resp.TotalQuestions)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "q-00", resp.Question.QuestionID)
	require.Len(t, resp.Question.Answers, 2)
	assert.Equal(t, 0, resp.Question.Answers[0].Index)
	assert.Equal(t, "right", resp.Question.Answers[0].Text)
}

func TestStart_FallsBackToPersonLanguage(t *testing.T) {
	f := newSessionServiceFixture()

	f.personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 0, Language: "de"}, nil)
	f.selector.On("SelectQuestions", mock.Anything, "site-1", 1, "de", domain.SessionQuestionCount).
		Return(sessionQuestions(20), nil)
	f.store.On("Save", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Start(context.Background(), "site-1", "person-1", &dto.StartQuizRequest{
		TargetLevel: 1,
	})

	require.NoError(t, err)
	f.selector.AssertExpectations(t)
}

func TestStart_LevelSkipRejected(t *testing.T) {
	f := newSessionServiceFixture()

	f.personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 2}, nil)

	_, err := f.svc.Start(context.Background(), "site-1", "person-1", &dto.StartQuizRequest{
		TargetLevel: 4,
		Language:    "fr",
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLevelSkip, domainErr.Code)
	f.selector.AssertNotCalled(t, "SelectQuestions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStart_EmptyBankYieldsNoQuestionsState(t *testing.T) {
	f := newSessionServiceFixture()

	f.personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 5, Language: "fr"}, nil)
	f.selector.On("SelectQuestions", mock.Anything, "site-1", 6, "fr", domain.SessionQuestionCount).
		Return(nil, nil)
	f.store.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.svc.Start(context.Background(), "site-1", "person-1", &dto.StartQuizRequest{
		TargetLevel: 6,
		Language:    "fr",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.SessionNoQuestions), resp.State)
	assert.Nil(t, resp.Question)
	assert.Zero(t, resp.TotalQuestions)
}

func TestSubmitAnswer_ContinuesWithNextQuestion(t *testing.T) {
	f := newSessionServiceFixture()
	session := domain.NewQuizSession("01HZX0000000000000000000AB", "site-1", "person-1", 3, "fr", sessionQuestions(20))

	f.store.On("Get", mock.Anything, session.ID).Return(session, nil)
	f.store.On("Save", mock.Anything, session).Return(nil)
	f.eventRepo.On("SaveAnswerEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	resp, err := f.svc.SubmitAnswer(context.Background(), "site-1", "person-1", &dto.SubmitAnswerRequest{
		SessionID:       session.ID,
		SelectedIndexes: []int{0},
	})

	require.NoError(t, err)
	assert.True(t, resp.Correct)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, string(domain.SessionInProgress), resp.State)
	assert.Nil(t, resp.Passed)
	require.NotNil(t, resp.NextQuestion)
	assert.Equal(t, "q-01", resp.NextQuestion.QuestionID)
}

func TestSubmitAnswer_OtherPersonsSessionIsNotFound(t *testing.T) {
	f := newSessionServiceFixture()
	session := domain.NewQuizSession("01HZX0000000000000000000AB", "site-1", "person-1", 3, "fr", sessionQuestions(20))

	f.store.On("Get", mock.Anything, session.ID).Return(session, nil)

	_, err := f.svc.SubmitAnswer(context.Background(), "site-1", "intruder", &dto.SubmitAnswerRequest{
		SessionID:       session.ID,
		SelectedIndexes: []int{0},
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestSubmitAnswer_PassFiresProgressionAndPointsOnce(t *testing.T) {
	f := newSessionServiceFixture()
	session := domain.NewQuizSession("01HZX0000000000000000000AB", "site-1", "person-1", 3, "fr", sessionQuestions(20))
	session.Score = domain.PassingScore - 1
	session.Index = domain.PassingScore - 1

	f.store.On("Get", mock.Anything, session.ID).Return(session, nil)
	f.store.On("Save", mock.Anything, session).Return(nil)
	f.eventRepo.On("SaveAnswerEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.progression.On("OnQuizComplete", mock.Anything, "person-1", 3, true).Return(3, true, nil).Once()
	f.points.On("AwardAction", mock.Anything, "site-1", "person-1", domain.ActionQuizComplete).Return(100, nil).Once()

	resp, err := f.svc.SubmitAnswer(context.Background(), "site-1", "person-1", &dto.SubmitAnswerRequest{
		SessionID:       session.ID,
		SelectedIndexes: []int{0},
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.SessionPassedEarly), resp.State)
	require.NotNil(t, resp.Passed)
	assert.True(t, *resp.Passed)
	require.NotNil(t, resp.NewLevel)
	assert.Equal(t, 3, *resp.NewLevel)
	assert.Nil(t, resp.NextQuestion)
	assert.True(t, session.CompletionSent)

	// A replayed submission on the finished session must not fire again.
	_, err = f.svc.SubmitAnswer(context.Background(), "site-1", "person-1", &dto.SubmitAnswerRequest{
		SessionID:       session.ID,
		SelectedIndexes: []int{0},
	})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionFinished, domainErr.Code)
	f.progression.AssertExpectations(t)
	f.points.AssertExpectations(t)
}

func TestSubmitAnswer_SixthErrorFailsAndStillAwardsCompletion(t *testing.T) {
	f := newSessionServiceFixture()
	session := domain.NewQuizSession("01HZX0000000000000000000AB", "site-1", "person-1", 3, "fr", sessionQuestions(20))
	session.Errors = domain.MaxErrors
	session.Index = domain.MaxErrors

	f.store.On("Get", mock.Anything, session.ID).Return(session, nil)
	f.store.On("Save", mock.Anything, session).Return(nil)
	f.eventRepo.On("SaveAnswerEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.progression.On("OnQuizComplete", mock.Anything, "person-1", 3, false).Return(2, false, nil)
	f.points.On("AwardAction", mock.Anything, "site-1", "person-1", domain.ActionQuizComplete).Return(50, nil)

	resp, err := f.svc.SubmitAnswer(context.Background(), "site-1", "person-1", &dto.SubmitAnswerRequest{
		SessionID:       session.ID,
		SelectedIndexes: []int{1},
	})

	require.NoError(t, err)
	assert.False(t, resp.Correct)
	assert.Equal(t, string(domain.SessionFailedEarly), resp.State)
	require.NotNil(t, resp.Passed)
	assert.False(t, *resp.Passed)
	assert.Nil(t, resp.NewLevel)
}

func TestGetSession_Snapshot(t *testing.T) {
	f := newSessionServiceFixture()
	session := domain.NewQuizSession("01HZX0000000000000000000AB", "site-1", "person-1", 3, "en", sessionQuestions(20))
	session.Score = 2
	session.Errors = 1
	session.Index = 3

	f.store.On("Get", mock.Anything, session.ID).Return(session, nil)

	resp, err := f.svc.GetSession(context.Background(), "person-1", session.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Answered)
	assert.Equal(t, 20, resp.TotalQuestions)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "q-03", resp.Question.QuestionID)
}

func TestGetSession_MissingSession(t *testing.T) {
	f := newSessionServiceFixture()

	f.store.On("Get", mock.Anything, "01HZX0000000000000000000ZZ").Return(nil, nil)

	_, err := f.svc.GetSession(context.Background(), "person-1", "01HZX0000000000000000000ZZ")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}
