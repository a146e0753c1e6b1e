package domain

import (
	"time"
)

const (
	MinAnswerOptions = 2
	MaxAnswerOptions = 4
)

// AnswerOption is one selectable answer of a question. The schema is fixed:
// loose JSON payloads are converted into this record at the storage boundary
// and never trusted beyond it.
type AnswerOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Question is a quiz question authored in the site's base language.
type Question struct {
	ID        string
	SiteID    string
	Prompt    string
	Answers   []AnswerOption
	Level     int
	Category  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(siteID, prompt string, answers []AnswerOption, level int, category string) *Question {
	now := time.Now()
	return &Question{
		SiteID:    siteID,
		Prompt:    prompt,
		Answers:   answers,
		Level:     level,
		Category:  category,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if q.SiteID == "" {
		errs = append(errs, NewMissingFieldError("site_id"))
	}
	if q.Prompt == "" {
		errs = append(errs, NewMissingFieldError("prompt"))
	}
	if len(q.Answers) < MinAnswerOptions || len(q.Answers) > MaxAnswerOptions {
		errs = append(errs, NewOutOfRangeError("answers", len(q.Answers), MinAnswerOptions, MaxAnswerOptions))
	}
	hasCorrect := false
	for i, a := range q.Answers {
		if a.Text == "" {
			errs = append(errs, ValidationError{Field: "answers", Message: "option text must not be empty"})
			_ = i
		}
		if a.IsCorrect {
			hasCorrect = true
		}
	}
	if len(q.Answers) > 0 && !hasCorrect {
		errs = append(errs, ValidationError{Field: "answers", Message: "at least one option must be marked correct"})
	}
	if !IsValidLevel(q.Level) {
		errs = append(errs, NewOutOfRangeError("level", q.Level, MinLevel, MaxLevel))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CorrectIndexes returns the indexes of the options flagged correct.
// Correctness always comes from the base question, never a translation.
func (q *Question) CorrectIndexes() []int {
	var idx []int
	for i, a := range q.Answers {
		if a.IsCorrect {
			idx = append(idx, i)
		}
	}
	return idx
}

// Translation carries a question's prompt and answer texts in one target
// language. At most one row exists per (question, language) pair, and the
// base language never has one. Correctness flags are copied from the source
// question for display convenience only.
type Translation struct {
	QuestionID   string
	LanguageCode string
	Prompt       string
	Answers      []AnswerOption
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate validates the translation
func (t *Translation) Validate() error {
	var errs ValidationErrors
	if t.QuestionID == "" {
		errs = append(errs, NewMissingFieldError("question_id"))
	}
	if !IsSupportedLanguage(t.LanguageCode) {
		errs = append(errs, NewInvalidFormatError("language_code", t.LanguageCode))
	}
	if t.Prompt == "" {
		errs = append(errs, NewMissingFieldError("prompt"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Site is the tenant a question bank and its persons belong to.
type Site struct {
	ID           string
	Name         string
	BaseLanguage string
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
