package dto

import "time"

// AnswerOptionInput is one authored answer option.
type AnswerOptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// CreateQuestionRequest is the admin request body for authoring a question.
type CreateQuestionRequest struct {
	Prompt   string              `json:"prompt"`
	Answers  []AnswerOptionInput `json:"answers"`
	Level    int                 `json:"level"`
	Category string              `json:"category,omitempty"`
}

// UpdateQuestionRequest is the admin request body for editing a question.
type UpdateQuestionRequest struct {
	Prompt   string              `json:"prompt"`
	Answers  []AnswerOptionInput `json:"answers"`
	Level    int                 `json:"level"`
	Category string              `json:"category,omitempty"`
	Active   bool                `json:"active"`
}

// QuestionAdminResponse is the admin view of a question, flags included.
type QuestionAdminResponse struct {
	ID        string              `json:"id"`
	Prompt    string              `json:"prompt"`
	Answers   []AnswerOptionInput `json:"answers"`
	Level     int                 `json:"level"`
	Category  string              `json:"category,omitempty"`
	Active    bool                `json:"active"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// BackfillStatusResponse reports translation completeness for a site.
type BackfillStatusResponse struct {
	IsComplete   bool `json:"is_complete"`
	MissingCount int  `json:"missing_count"`
}

// BackfillRunResponse reports one backfill batch.
type BackfillRunResponse struct {
	TranslationsCreated int  `json:"translations_created"`
	HasMore             bool `json:"has_more"`
}
