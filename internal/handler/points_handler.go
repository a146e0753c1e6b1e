package handler

import (
	"strconv"

	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/service"
	"iamove/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const defaultScoreboardLimit = 20

// PointsHandler handles participation points HTTP requests
type PointsHandler struct {
	service   service.PointsService
	validator *validation.Validator
}

// NewPointsHandler creates a new PointsHandler instance
func NewPointsHandler(service service.PointsService, validator *validation.Validator) *PointsHandler {
	return &PointsHandler{
		service:   service,
		validator: validator,
	}
}

// AwardPoints handles POST /api/points/award
func (h *PointsHandler) AwardPoints(c *fiber.Ctx) error {
	siteID, personID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.AwardPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateAwardPointsRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Award(c.Context(), siteID, personID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetScoreboard handles GET /api/points/scoreboard
func (h *PointsHandler) GetScoreboard(c *fiber.Ctx) error {
	siteID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	limit := defaultScoreboardLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return domain.NewInvalidInputError("limit must be between 1 and 100")
		}
		limit = parsed
	}

	resp, err := h.service.Scoreboard(c.Context(), siteID, limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetPointCatalog handles GET /api/points/catalog
func (h *PointsHandler) GetPointCatalog(c *fiber.Ctx) error {
	actions := make([]domain.PointAction, 0, len(domain.PointCatalog))
	for _, key := range []domain.ActionKey{
		domain.ActionClick,
		domain.ActionMenuOrButton,
		domain.ActionKnowledgeView,
		domain.ActionUseCaseView,
		domain.ActionForumPost,
		domain.ActionTechTipView,
		domain.ActionBacklogVote,
		domain.ActionSelfAssessment,
		domain.ActionQuizComplete,
	} {
		actions = append(actions, domain.PointCatalog[key])
	}
	return c.JSON(fiber.Map{"actions": actions})
}
