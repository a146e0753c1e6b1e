package service

import (
	"context"
	"testing"

	"iamove/internal/domain"
	"iamove/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGateStatus_RequiredForUnassessedPerson(t *testing.T) {
	personRepo := new(MockPersonRepository)
	points := new(MockPointsService)
	svc := NewAssessmentService(personRepo, points)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 0}, nil)

	resp, err := svc.GateStatus(context.Background(), "person-1")

	require.NoError(t, err)
	assert.True(t, resp.Required)
	assert.Equal(t, 0, resp.CurrentLevel)
}

func TestGateStatus_NotRequiredOnceAssessed(t *testing.T) {
	personRepo := new(MockPersonRepository)
	points := new(MockPointsService)
	svc := NewAssessmentService(personRepo, points)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 4}, nil)

	resp, err := svc.GateStatus(context.Background(), "person-1")

	require.NoError(t, err)
	assert.False(t, resp.Required)
	assert.Equal(t, 4, resp.CurrentLevel)
}

func TestSetSelfAssessedLevel_StoresLevelAndAwardsPoints(t *testing.T) {
	personRepo := new(MockPersonRepository)
	points := new(MockPointsService)
	svc := NewAssessmentService(personRepo, points)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 0}, nil)
	personRepo.On("UpdateCurrentLevel", mock.Anything, "person-1", 7).Return(nil)
	points.On("AwardAction", mock.Anything, "site-1", "person-1", domain.ActionSelfAssessment).Return(10, nil)

	resp, err := svc.SetSelfAssessedLevel(context.Background(), "site-1", "person-1", &dto.SelfAssessmentRequest{Level: 7})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.CurrentLevel)
	assert.Empty(t, resp.Warning)
	personRepo.AssertExpectations(t)
	points.AssertExpectations(t)
}

func TestSetSelfAssessedLevel_ZeroKeepsGateWithWarning(t *testing.T) {
	personRepo := new(MockPersonRepository)
	points := new(MockPointsService)
	svc := NewAssessmentService(personRepo, points)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 0}, nil)

	resp, err := svc.SetSelfAssessedLevel(context.Background(), "site-1", "person-1", &dto.SelfAssessmentRequest{Level: 0})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentLevel)
	assert.NotEmpty(t, resp.Warning)
	personRepo.AssertNotCalled(t, "UpdateCurrentLevel", mock.Anything, mock.Anything, mock.Anything)
	points.AssertNotCalled(t, "AwardAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetSelfAssessedLevel_RejectedOnceAssessed(t *testing.T) {
	personRepo := new(MockPersonRepository)
	points := new(MockPointsService)
	svc := NewAssessmentService(personRepo, points)

	personRepo.On("GetPersonByID", mock.Anything, "person-1").
		Return(&domain.Person{ID: "person-1", CurrentLevel: 3}, nil)

	_, err := svc.SetSelfAssessedLevel(context.Background(), "site-1", "person-1", &dto.SelfAssessmentRequest{Level: 5})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestSetSelfAssessedLevel_OutOfRange(t *testing.T) {
	personRepo := new(MockPersonRepository)
	points := new(MockPointsService)
	svc := NewAssessmentService(personRepo, points)

	_, err := svc.SetSelfAssessedLevel(context.Background(), "site-1", "person-1", &dto.SelfAssessmentRequest{Level: 21})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidLevel, domainErr.Code)
}
