package handler

import (
	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/service"
	"iamove/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles question bank and backfill administration
type AdminHandler struct {
	questions service.QuestionAdminService
	backfill  service.BackfillService
	validator *validation.Validator
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(questions service.QuestionAdminService, backfill service.BackfillService, validator *validation.Validator) *AdminHandler {
	return &AdminHandler{
		questions: questions,
		backfill:  backfill,
		validator: validator,
	}
}

// ListQuestions handles GET /api/admin/questions
func (h *AdminHandler) ListQuestions(c *fiber.Ctx) error {
	siteID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}
	resp, err := h.questions.ListQuestions(c.Context(), siteID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"questions": resp})
}

// CreateQuestion handles POST /api/admin/questions
func (h *AdminHandler) CreateQuestion(c *fiber.Ctx) error {
	siteID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateQuestionPayload(req.Prompt, req.Answers, req.Level); len(errs) > 0 {
		return errs
	}

	resp, err := h.questions.CreateQuestion(c.Context(), siteID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateQuestion handles PUT /api/admin/questions/:id
func (h *AdminHandler) UpdateQuestion(c *fiber.Ctx) error {
	siteID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	questionID := c.Params("id")
	if errs := h.validator.ValidateQuestionID(questionID); len(errs) > 0 {
		return errs
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateQuestionPayload(req.Prompt, req.Answers, req.Level); len(errs) > 0 {
		return errs
	}

	resp, err := h.questions.UpdateQuestion(c.Context(), siteID, questionID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion handles DELETE /api/admin/questions/:id
func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	siteID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	questionID := c.Params("id")
	if errs := h.validator.ValidateQuestionID(questionID); len(errs) > 0 {
		return errs
	}

	if err := h.questions.DeleteQuestion(c.Context(), siteID, questionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetBackfillStatus handles GET /api/admin/translations/status
func (h *AdminHandler) GetBackfillStatus(c *fiber.Ctx) error {
	siteID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}
	resp, err := h.backfill.CheckStatus(c.Context(), siteID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RunBackfillBatch handles POST /api/admin/translations/backfill
func (h *AdminHandler) RunBackfillBatch(c *fiber.Ctx) error {
	siteID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}
	resp, err := h.backfill.RunBatch(c.Context(), siteID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
