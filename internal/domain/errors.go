package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz errors
	CodeQuestionNotFound     ErrorCode = "QUESTION_NOT_FOUND"
	CodeNoQuestionsAvailable ErrorCode = "NO_QUESTIONS_AVAILABLE"
	CodeSessionNotFound      ErrorCode = "SESSION_NOT_FOUND"
	CodeSessionFinished      ErrorCode = "SESSION_FINISHED"
	CodeInvalidAnswer        ErrorCode = "INVALID_ANSWER"

	// Progression errors
	CodeLevelSkip    ErrorCode = "LEVEL_SKIP"
	CodeInvalidLevel ErrorCode = "INVALID_LEVEL"

	// Points errors
	CodeUnknownAction ErrorCode = "UNKNOWN_ACTION"

	// External service errors
	CodeTranslationError ErrorCode = "TRANSLATION_SERVICE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("Question not found with ID: %s", questionID), nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Quiz session not found: %s", sessionID), nil)
}

func NewSessionFinishedError(sessionID string) *DomainError {
	return NewError(CodeSessionFinished, fmt.Sprintf("Quiz session already finished: %s", sessionID), nil)
}

func NewNoQuestionsAvailableError(level int) *DomainError {
	return NewError(CodeNoQuestionsAvailable, fmt.Sprintf("No active questions available for level %d", level), nil)
}

func NewLevelSkipError(targetLevel, currentLevel int) *DomainError {
	return NewError(CodeLevelSkip,
		fmt.Sprintf("Target level %d skips ahead of current level %d", targetLevel, currentLevel), nil)
}

func NewInvalidLevelError(level int) *DomainError {
	return NewError(CodeInvalidLevel, fmt.Sprintf("Level %d is outside the valid range", level), nil)
}

func NewUnknownActionError(action string) *DomainError {
	return NewError(CodeUnknownAction, fmt.Sprintf("Unknown participation action: %s", action), nil)
}

func NewTranslationError(cause error) *DomainError {
	return NewError(CodeTranslationError, "Translation service call failed", cause)
}

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field validation failures for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %v", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("value %d must be between %d and %d", value, min, max)}
}
