package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AnswerRecord mirrors domain.AnswerOption for storage. Answer arrays are
// kept as JSON in a CLOB column; Scan validates the fixed schema so loose
// payloads never cross the storage boundary.
type AnswerRecord struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// AnswerList is a custom type for handling answer arrays in sqlx.
type AnswerList []AnswerRecord

// Value implements the driver.Valuer interface
func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (a *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("AnswerList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*a = AnswerList{}
		return nil
	}

	var parsed AnswerList
	if err := json.Unmarshal(bytesToParse, &parsed); err != nil {
		return fmt.Errorf("AnswerList Scan: %w", err)
	}
	for i, rec := range parsed {
		if rec.Text == "" {
			return fmt.Errorf("AnswerList Scan: option %d has empty text", i)
		}
	}
	*a = parsed
	return nil
}

// IntSlice stores selected answer indexes as a JSON array.
type IntSlice []int

// Value implements the driver.Valuer interface
func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *IntSlice) Scan(value interface{}) error {
	if value == nil {
		*s = IntSlice{}
		return nil
	}
	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("IntSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = IntSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Question represents a quiz question row.
type Question struct {
	ID        string       `db:"ID"` // ULID
	SiteID    string       `db:"SITE_ID"`
	Prompt    string       `db:"PROMPT"`
	Answers   AnswerList   `db:"ANSWERS"`
	LevelNo   int          `db:"LEVEL_NO"`
	Category  sql.NullString `db:"CATEGORY"`
	IsActive  int          `db:"IS_ACTIVE"` // Oracle has no BOOLEAN column type
	CreatedAt time.Time    `db:"CREATED_AT"`
	UpdatedAt time.Time    `db:"UPDATED_AT"`
	DeletedAt sql.NullTime `db:"DELETED_AT"`
}

// Translation represents one (question, language) translation row.
// A unique constraint covers (QUESTION_ID, LANGUAGE_CODE).
type Translation struct {
	ID           string       `db:"ID"` // ULID
	QuestionID   string       `db:"QUESTION_ID"`
	LanguageCode string       `db:"LANGUAGE_CODE"`
	Prompt       string       `db:"PROMPT"`
	Answers      AnswerList   `db:"ANSWERS"`
	CreatedAt    time.Time    `db:"CREATED_AT"`
	UpdatedAt    time.Time    `db:"UPDATED_AT"`
}

// Person represents an enrolled employee row.
type Person struct {
	ID                  string         `db:"ID"` // ULID
	SiteID              string         `db:"SITE_ID"`
	Email               string         `db:"EMAIL"`
	Name                sql.NullString `db:"NAME"`
	CurrentLevel        int            `db:"CURRENT_LEVEL"`
	ParticipationPoints int            `db:"PARTICIPATION_POINTS"`
	Language            sql.NullString `db:"LANGUAGE_CODE"`
	CreatedAt           time.Time      `db:"CREATED_AT"`
	UpdatedAt           time.Time      `db:"UPDATED_AT"`
	DeletedAt           sql.NullTime   `db:"DELETED_AT"`
}

// Site represents one tenant micro-site row.
type Site struct {
	ID           string       `db:"ID"`
	Name         string       `db:"NAME"`
	BaseLanguage string       `db:"BASE_LANGUAGE"`
	IsPublished  int          `db:"IS_PUBLISHED"`
	CreatedAt    time.Time    `db:"CREATED_AT"`
	UpdatedAt    time.Time    `db:"UPDATED_AT"`
	DeletedAt    sql.NullTime `db:"DELETED_AT"`
}

// AnswerEvent represents one per-answer telemetry row (analytics only).
type AnswerEvent struct {
	ID              string    `db:"ID"`
	PersonID        string    `db:"PERSON_ID"`
	QuestionID      string    `db:"QUESTION_ID"`
	SessionID       string    `db:"SESSION_ID"`
	SelectedIndexes IntSlice  `db:"SELECTED_INDEXES"`
	IsCorrect       int       `db:"IS_CORRECT"`
	AttemptedAt     time.Time `db:"ATTEMPTED_AT"`
	CreatedAt       time.Time `db:"CREATED_AT"`
}
