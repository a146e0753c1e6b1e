package handler

import (
	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/middleware"
	"iamove/internal/service"
	"iamove/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz session HTTP requests
type QuizHandler struct {
	service   service.QuizSessionService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizSessionService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// StartQuiz handles POST /api/quiz/start
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	siteID, personID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateStartQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Start(c.Context(), siteID, personID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SubmitAnswer handles POST /api/quiz/answer
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	siteID, personID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSubmitAnswerRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(c.Context(), siteID, personID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSession handles GET /api/quiz/session/:id
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	_, personID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return domain.NewSessionNotFoundError(sessionID)
	}

	resp, err := h.service.GetSession(c.Context(), personID, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// callerIdentity reads the authenticated site and person from the request
// context set by the auth middleware.
func callerIdentity(c *fiber.Ctx) (siteID, personID string, err error) {
	siteID, _ = c.Locals(middleware.SiteIDKey).(string)
	personID, _ = c.Locals(middleware.PersonIDKey).(string)
	if siteID == "" || personID == "" {
		return "", "", domain.NewError(domain.CodeUnauthorized, "Missing authentication context", nil)
	}
	return siteID, personID, nil
}
