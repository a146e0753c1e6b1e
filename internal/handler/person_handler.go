package handler

import (
	"iamove/internal/domain"
	"iamove/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// PersonHandler handles person profile HTTP requests
type PersonHandler struct {
	personRepo domain.PersonRepository
}

// NewPersonHandler creates a new PersonHandler instance
func NewPersonHandler(personRepo domain.PersonRepository) *PersonHandler {
	return &PersonHandler{personRepo: personRepo}
}

// GetMyProfile handles GET /api/persons/me
func (h *PersonHandler) GetMyProfile(c *fiber.Ctx) error {
	siteID, personID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	person, err := h.personRepo.GetPersonByID(c.Context(), personID)
	if err != nil {
		return domain.NewInternalError("Failed to load person", err)
	}
	if person == nil || person.SiteID != siteID {
		return domain.NewNotFoundError("Person not found")
	}

	rank, err := h.personRepo.GetRank(c.Context(), siteID, personID)
	if err != nil {
		return domain.NewInternalError("Failed to compute rank", err)
	}

	return c.JSON(dto.PersonProfileResponse{
		ID:                  person.ID,
		Name:                person.Name,
		Email:               person.Email,
		CurrentLevel:        person.CurrentLevel,
		ParticipationPoints: person.ParticipationPoints,
		Rank:                rank,
		NeedsSelfAssessment: person.NeedsSelfAssessment(),
	})
}

// GetLevelCatalog handles GET /api/levels
func (h *PersonHandler) GetLevelCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"levels": domain.LevelCatalog})
}
