package handler

import (
	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/service"
	"iamove/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AssessmentHandler handles self-assessment HTTP requests
type AssessmentHandler struct {
	service   service.AssessmentService
	validator *validation.Validator
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService, validator *validation.Validator) *AssessmentHandler {
	return &AssessmentHandler{
		service:   service,
		validator: validator,
	}
}

// GetGateStatus handles GET /api/assessment
func (h *AssessmentHandler) GetGateStatus(c *fiber.Ctx) error {
	_, personID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GateStatus(c.Context(), personID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitSelfAssessment handles POST /api/assessment
func (h *AssessmentHandler) SubmitSelfAssessment(c *fiber.Ctx) error {
	siteID, personID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.SelfAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSelfAssessmentRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SetSelfAssessedLevel(c.Context(), siteID, personID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
