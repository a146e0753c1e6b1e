package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"iamove/internal/domain"
	"iamove/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testDiscoveryTTL = 30 * time.Minute

func TestAward_CatalogAction(t *testing.T) {
	personRepo := new(MockPersonRepository)
	c := new(MockCache)
	svc := NewPointsService(personRepo, c, testDiscoveryTTL)

	personRepo.On("IncrementPoints", mock.Anything, "person-1", 10).Return(42, nil)
	personRepo.On("GetRank", mock.Anything, "site-1", "person-1").Return(3, nil)

	resp, err := svc.Award(context.Background(), "site-1", "person-1", &dto.AwardPointsRequest{
		Action: "forum_post",
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.PointsAwarded)
	assert.Equal(t, 42, resp.NewTotal)
	assert.Equal(t, 3, resp.Rank)
	personRepo.AssertExpectations(t)
}

func TestAward_UnknownActionRejected(t *testing.T) {
	personRepo := new(MockPersonRepository)
	c := new(MockCache)
	svc := NewPointsService(personRepo, c, testDiscoveryTTL)

	_, err := svc.Award(context.Background(), "site-1", "person-1", &dto.AwardPointsRequest{
		Action: "treasure_hunt",
	})

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUnknownAction, domainErr.Code)
	personRepo.AssertNotCalled(t, "IncrementPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestAward_FirstDiscoveryPaysFullAmount(t *testing.T) {
	personRepo := new(MockPersonRepository)
	c := new(MockCache)
	svc := NewPointsService(personRepo, c, testDiscoveryTTL)

	c.On("SAdd", mock.Anything, mock.Anything, "nav:training", testDiscoveryTTL).Return(true, nil)
	personRepo.On("IncrementPoints", mock.Anything, "person-1", 5).Return(5, nil)
	personRepo.On("GetRank", mock.Anything, "site-1", "person-1").Return(1, nil)

	resp, err := svc.Award(context.Background(), "site-1", "person-1", &dto.AwardPointsRequest{
		Action:     "menu_or_button",
		Affordance: "nav:training",
		SessionID:  "browse-9",
	})

	assert.NoError(t, err)
	assert.Equal(t, "menu_or_button", resp.Action)
	assert.Equal(t, 5, resp.PointsAwarded)
}

func TestAward_RepeatDiscoveryDowngradesToClick(t *testing.T) {
	personRepo := new(MockPersonRepository)
	c := new(MockCache)
	svc := NewPointsService(personRepo, c, testDiscoveryTTL)

	c.On("SAdd", mock.Anything, mock.Anything, "nav:training", testDiscoveryTTL).Return(false, nil)
	personRepo.On("IncrementPoints", mock.Anything, "person-1", 1).Return(6, nil)
	personRepo.On("GetRank", mock.Anything, "site-1", "person-1").Return(1, nil)

	resp, err := svc.Award(context.Background(), "site-1", "person-1", &dto.AwardPointsRequest{
		Action:     "menu_or_button",
		Affordance: "nav:training",
		SessionID:  "browse-9",
	})

	assert.NoError(t, err)
	assert.Equal(t, "click", resp.Action)
	assert.Equal(t, 1, resp.PointsAwarded)
}

func TestAward_SeenSetFailureDowngrades(t *testing.T) {
	personRepo := new(MockPersonRepository)
	c := new(MockCache)
	svc := NewPointsService(personRepo, c, testDiscoveryTTL)

	c.On("SAdd", mock.Anything, mock.Anything, "nav:training", testDiscoveryTTL).
		Return(false, errors.New("redis down"))
	personRepo.On("IncrementPoints", mock.Anything, "person-1", 1).Return(7, nil)
	personRepo.On("GetRank", mock.Anything, "site-1", "person-1").Return(1, nil)

	resp, err := svc.Award(context.Background(), "site-1", "person-1", &dto.AwardPointsRequest{
		Action:     "menu_or_button",
		Affordance: "nav:training",
		SessionID:  "browse-9",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.PointsAwarded)
}

func TestAward_DiscoveryWithoutSessionSkipsSeenSet(t *testing.T) {
	personRepo := new(MockPersonRepository)
	c := new(MockCache)
	svc := NewPointsService(personRepo, c, testDiscoveryTTL)

	personRepo.On("IncrementPoints", mock.Anything, "person-1", 5).Return(5, nil)
	personRepo.On("GetRank", mock.Anything, "site-1", "person-1").Return(1, nil)

	resp, err := svc.Award(context.Background(), "site-1", "person-1", &dto.AwardPointsRequest{
		Action: "menu_or_button",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, resp.PointsAwarded)
	c.AssertNotCalled(t, "SAdd", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScoreboard(t *testing.T) {
	personRepo := new(MockPersonRepository)
	c := new(MockCache)
	svc := NewPointsService(personRepo, c, testDiscoveryTTL)

	personRepo.On("ListRankedBySite", mock.Anything, "site-1", 10).Return([]domain.RankedPerson{
		{PersonID: "a", Name: "Ana", ParticipationPoints: 120, Rank: 1},
		{PersonID: "b", Name: "Ben", ParticipationPoints: 120, Rank: 2},
	}, nil)

	resp, err := svc.Scoreboard(context.Background(), "site-1", 10)

	assert.NoError(t, err)
	assert.Len(t, resp.Entries, 2)
	assert.Equal(t, "a", resp.Entries[0].PersonID)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, 2, resp.Entries[1].Rank)
}
