package service

import (
	"context"
	"time"

	"iamove/internal/cache"
	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/logger"

	"go.uber.org/zap"
)

// PointsService is the participation-points ledger.
type PointsService interface {
	// Award credits one action from the point catalog and returns the
	// updated ledger. Unknown actions are rejected; nothing is persisted.
	Award(ctx context.Context, siteID, personID string, req *dto.AwardPointsRequest) (*dto.AwardPointsResponse, error)
	// AwardAction is the internal entry point used by other services.
	AwardAction(ctx context.Context, siteID, personID string, key domain.ActionKey) (int, error)
	Scoreboard(ctx context.Context, siteID string, limit int) (*dto.ScoreboardResponse, error)
}

type pointsService struct {
	personRepo   domain.PersonRepository
	cache        domain.Cache
	discoveryTTL time.Duration
}

// NewPointsService creates a new instance of pointsService
func NewPointsService(personRepo domain.PersonRepository, c domain.Cache, discoveryTTL time.Duration) PointsService {
	return &pointsService{
		personRepo:   personRepo,
		cache:        c,
		discoveryTTL: discoveryTTL,
	}
}

// Award implements PointsService
func (s *pointsService) Award(ctx context.Context, siteID, personID string, req *dto.AwardPointsRequest) (*dto.AwardPointsResponse, error) {
	key := domain.ActionKey(req.Action)
	action, ok := domain.LookupAction(key)
	if !ok {
		return nil, domain.NewUnknownActionError(req.Action)
	}

	// Menu and button awards only pay the full amount on first discovery
	// within a browsing session; repeats downgrade to a plain click.
	if key == domain.ActionMenuOrButton && req.Affordance != "" && req.SessionID != "" {
		if !s.firstDiscovery(ctx, personID, req.SessionID, req.Affordance) {
			action, _ = domain.LookupAction(domain.ActionClick)
		}
	}

	newTotal, err := s.personRepo.IncrementPoints(ctx, personID, action.Points)
	if err != nil {
		return nil, domain.NewInternalError("Failed to award points", err)
	}

	rank, err := s.personRepo.GetRank(ctx, siteID, personID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to compute rank", err)
	}

	return &dto.AwardPointsResponse{
		Action:        string(action.Key),
		PointsAwarded: action.Points,
		NewTotal:      newTotal,
		Rank:          rank,
	}, nil
}

// AwardAction implements PointsService
func (s *pointsService) AwardAction(ctx context.Context, siteID, personID string, key domain.ActionKey) (int, error) {
	action, ok := domain.LookupAction(key)
	if !ok {
		return 0, domain.NewUnknownActionError(string(key))
	}
	newTotal, err := s.personRepo.IncrementPoints(ctx, personID, action.Points)
	if err != nil {
		return 0, domain.NewInternalError("Failed to award points", err)
	}
	return newTotal, nil
}

// Scoreboard implements PointsService
func (s *pointsService) Scoreboard(ctx context.Context, siteID string, limit int) (*dto.ScoreboardResponse, error) {
	ranked, err := s.personRepo.ListRankedBySite(ctx, siteID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load scoreboard", err)
	}
	entries := make([]dto.ScoreboardEntry, len(ranked))
	for i, r := range ranked {
		entries[i] = dto.ScoreboardEntry{
			PersonID: r.PersonID,
			Name:     r.Name,
			Points:   r.ParticipationPoints,
			Rank:     r.Rank,
		}
	}
	return &dto.ScoreboardResponse{Entries: entries}, nil
}

// firstDiscovery records the affordance in the session's seen-set. A cache
// failure counts as already seen so an outage cannot be farmed for points.
func (s *pointsService) firstDiscovery(ctx context.Context, personID, sessionID, affordance string) bool {
	added, err := s.cache.SAdd(ctx, cache.DiscoverySeenKey(personID, sessionID), affordance, s.discoveryTTL)
	if err != nil {
		logger.Get().Warn("Discovery seen-set unavailable, downgrading award",
			zap.String("person_id", personID),
			zap.Error(err))
		return false
	}
	return added
}
