package validation

import (
	"regexp"
	"strings"

	"iamove/internal/domain"
	"iamove/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStartQuizRequest validates the quiz start request
func (v *Validator) ValidateStartQuizRequest(req *dto.StartQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if !domain.IsValidLevel(req.TargetLevel) {
		errors = append(errors, domain.NewOutOfRangeError("target_level", req.TargetLevel, domain.MinLevel, domain.MaxLevel))
	}
	if req.Language != "" && !domain.IsSupportedLanguage(req.Language) {
		errors = append(errors, domain.NewInvalidFormatError("language", req.Language))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates the answer submission request
func (v *Validator) ValidateSubmitAnswerRequest(req *dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.SessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(req.SessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", req.SessionID))
	}

	if len(req.SelectedIndexes) == 0 {
		errors = append(errors, domain.NewMissingFieldError("selected_indexes"))
	}
	for _, idx := range req.SelectedIndexes {
		if idx < 0 || idx >= domain.MaxAnswerOptions {
			errors = append(errors, domain.NewOutOfRangeError("selected_indexes", idx, 0, domain.MaxAnswerOptions-1))
			break
		}
	}

	return errors
}

// ValidateAwardPointsRequest validates the points award request
func (v *Validator) ValidateAwardPointsRequest(req *dto.AwardPointsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Action) == "" {
		errors = append(errors, domain.NewMissingFieldError("action"))
	}
	if req.SessionID != "" && len(req.SessionID) > 128 {
		errors = append(errors, domain.NewOutOfRangeError("session_id", len(req.SessionID), 1, 128))
	}
	if req.Affordance != "" && len(req.Affordance) > 256 {
		errors = append(errors, domain.NewOutOfRangeError("affordance", len(req.Affordance), 1, 256))
	}

	return errors
}

// ValidateSelfAssessmentRequest validates the self-assessment request
func (v *Validator) ValidateSelfAssessmentRequest(req *dto.SelfAssessmentRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if !domain.IsValidSelfAssessment(req.Level) {
		errors = append(errors, domain.NewOutOfRangeError("level", req.Level, 0, domain.MaxLevel))
	}

	return errors
}

// ValidateQuestionPayload validates the shared fields of question create and
// update requests. Option contents are checked by the domain model.
func (v *Validator) ValidateQuestionPayload(prompt string, answers []dto.AnswerOptionInput, level int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(prompt) == "" {
		errors = append(errors, domain.NewMissingFieldError("prompt"))
	}
	if len(answers) < domain.MinAnswerOptions || len(answers) > domain.MaxAnswerOptions {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(answers), domain.MinAnswerOptions, domain.MaxAnswerOptions))
	}
	if !domain.IsValidLevel(level) {
		errors = append(errors, domain.NewOutOfRangeError("level", level, domain.MinLevel, domain.MaxLevel))
	}

	return errors
}

// ValidateSessionID validates a session identifier path parameter
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidateQuestionID validates a question identifier path parameter
func (v *Validator) ValidateQuestionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
