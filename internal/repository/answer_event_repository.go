package repository

import (
	"context"
	"fmt"
	"time"

	"iamove/internal/domain"
	"iamove/internal/repository/models"
	"iamove/internal/util"

	"github.com/jmoiron/sqlx"
)

// AnswerEventDatabaseAdapter implements domain.AnswerEventRepository using sqlx.
type AnswerEventDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAnswerEventDatabaseAdapter creates a new instance of AnswerEventDatabaseAdapter
func NewAnswerEventDatabaseAdapter(db *sqlx.DB) domain.AnswerEventRepository {
	return &AnswerEventDatabaseAdapter{db: db}
}

// SaveAnswerEvent persists one analytics row. Callers treat failures as
// best-effort telemetry loss, not quiz errors.
func (a *AnswerEventDatabaseAdapter) SaveAnswerEvent(ctx context.Context, event *domain.AnswerEvent) error {
	if event.ID == "" {
		event.ID = util.NewULID()
	}

	m := &models.AnswerEvent{
		ID:              event.ID,
		PersonID:        event.PersonID,
		QuestionID:      event.QuestionID,
		SessionID:       event.SessionID,
		SelectedIndexes: models.IntSlice(event.SelectedIndexes),
		IsCorrect:       util.BoolToInt(event.IsCorrect),
		AttemptedAt:     event.AttemptedAt,
		CreatedAt:       time.Now(),
	}

	query := `INSERT INTO quiz_answer_events (id, person_id, question_id, session_id, selected_indexes, is_correct, attempted_at, created_at)
	          VALUES (:id, :person_id, :question_id, :session_id, :selected_indexes, :is_correct, :attempted_at, :created_at)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to save answer event: %w", err)
	}
	return nil
}
