package service

import (
	"context"
	"errors"
	"testing"

	"iamove/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOnQuizComplete_PassRaisesLevel(t *testing.T) {
	personRepo := new(MockPersonRepository)
	svc := NewProgressionService(personRepo)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 3}, nil)
	personRepo.On("UpdateCurrentLevel", mock.Anything, "person-1", 4).Return(nil)

	newLevel, changed, err := svc.OnQuizComplete(context.Background(), "person-1", 4, true)

	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 4, newLevel)
	personRepo.AssertExpectations(t)
}

func TestOnQuizComplete_FailKeepsLevel(t *testing.T) {
	personRepo := new(MockPersonRepository)
	svc := NewProgressionService(personRepo)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 3}, nil)

	newLevel, changed, err := svc.OnQuizComplete(context.Background(), "person-1", 4, false)

	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 3, newLevel)
	personRepo.AssertNotCalled(t, "UpdateCurrentLevel", mock.Anything, mock.Anything, mock.Anything)
}

func TestOnQuizComplete_PassAtOrBelowCurrentLevelIsNoOp(t *testing.T) {
	personRepo := new(MockPersonRepository)
	svc := NewProgressionService(personRepo)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 5}, nil)

	newLevel, changed, err := svc.OnQuizComplete(context.Background(), "person-1", 3, true)

	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 5, newLevel)
	personRepo.AssertNotCalled(t, "UpdateCurrentLevel", mock.Anything, mock.Anything, mock.Anything)
}

func TestOnQuizComplete_LevelSkipRejected(t *testing.T) {
	personRepo := new(MockPersonRepository)
	svc := NewProgressionService(personRepo)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 2}, nil)

	_, _, err := svc.OnQuizComplete(context.Background(), "person-1", 5, true)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLevelSkip, domainErr.Code)
	personRepo.AssertNotCalled(t, "UpdateCurrentLevel", mock.Anything, mock.Anything, mock.Anything)
}

func TestOnQuizComplete_InvalidTargetLevel(t *testing.T) {
	personRepo := new(MockPersonRepository)
	svc := NewProgressionService(personRepo)

	_, _, err := svc.OnQuizComplete(context.Background(), "person-1", 21, true)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidLevel, domainErr.Code)
}

func TestOnQuizComplete_RepoErrorWrapped(t *testing.T) {
	personRepo := new(MockPersonRepository)
	svc := NewProgressionService(personRepo)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(nil, errors.New("connection reset"))

	_, _, err := svc.OnQuizComplete(context.Background(), "person-1", 4, true)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}
