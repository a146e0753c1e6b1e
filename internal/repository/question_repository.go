package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"iamove/internal/domain"
	"iamove/internal/repository/models"
	"iamove/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `
	id "ID",
	site_id "SITE_ID",
	prompt "PROMPT",
	answers "ANSWERS",
	level_no "LEVEL_NO",
	category "CATEGORY",
	is_active "IS_ACTIVE",
	created_at "CREATED_AT",
	updated_at "UPDATED_AT",
	deleted_at "DELETED_AT"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	answers := make([]domain.AnswerOption, len(m.Answers))
	for i, a := range m.Answers {
		answers[i] = domain.AnswerOption{Text: a.Text, IsCorrect: a.IsCorrect}
	}
	return &domain.Question{
		ID:        m.ID,
		SiteID:    m.SiteID,
		Prompt:    m.Prompt,
		Answers:   answers,
		Level:     m.LevelNo,
		Category:  m.Category.String,
		Active:    m.IsActive == 1,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	answers := make(models.AnswerList, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = models.AnswerRecord{Text: a.Text, IsCorrect: a.IsCorrect}
	}
	return &models.Question{
		ID:        q.ID,
		SiteID:    q.SiteID,
		Prompt:    q.Prompt,
		Answers:   answers,
		LevelNo:   q.Level,
		Category:  util.StringToNullString(q.Category),
		IsActive:  util.BoolToInt(q.Active),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var m models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE id = :id AND deleted_at IS NULL`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetQuestionByID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &m, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return toDomainQuestion(&m), nil
}

// GetRandomActiveQuestions picks up to count active questions of one level,
// uniformly at random without replacement.
func (a *QuestionDatabaseAdapter) GetRandomActiveQuestions(ctx context.Context, siteID string, level, count int) ([]*domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE site_id = :site_id
	  AND level_no = :level_no
	  AND is_active = 1
	  AND deleted_at IS NULL
	ORDER BY DBMS_RANDOM.VALUE
	FETCH FIRST :row_count ROWS ONLY`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetRandomActiveQuestions: %w", err)
	}
	defer stmt.Close()

	args := map[string]interface{}{
		"site_id":   siteID,
		"level_no":  level,
		"row_count": count,
	}
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to get random questions for level %d: %w", level, err)
	}

	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

// ListActiveQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListActiveQuestions(ctx context.Context, siteID string) ([]*domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE site_id = :site_id AND is_active = 1 AND deleted_at IS NULL
	ORDER BY created_at, id`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for ListActiveQuestions: %w", err)
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &rows, map[string]interface{}{"site_id": siteID}); err != nil {
		return nil, fmt.Errorf("failed to list active questions for site %s: %w", siteID, err)
	}

	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question.ID == "" {
		question.ID = util.NewULID()
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now

	m := fromDomainQuestion(question)
	query := `INSERT INTO questions (id, site_id, prompt, answers, level_no, category, is_active, created_at, updated_at)
	          VALUES (:id, :site_id, :prompt, :answers, :level_no, :category, :is_active, :created_at, :updated_at)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

// UpdateQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	question.UpdatedAt = time.Now()
	m := fromDomainQuestion(question)
	query := `UPDATE questions SET
	            prompt = :prompt,
	            answers = :answers,
	            level_no = :level_no,
	            category = :category,
	            is_active = :is_active,
	            updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetQuestionActive implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SetQuestionActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE questions SET is_active = :is_active, updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`
	args := map[string]interface{}{
		"id":         id,
		"is_active":  util.BoolToInt(active),
		"updated_at": time.Now(),
	}
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("failed to set question active flag: %w", err)
	}
	return nil
}

// DeleteQuestion soft-deletes the question. Cascading its translations is
// the caller's responsibility inside the same transaction.
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id string) error {
	query := `UPDATE questions SET deleted_at = :deleted_at
	          WHERE id = :id AND deleted_at IS NULL`
	args := map[string]interface{}{
		"id":         id,
		"deleted_at": time.Now(),
	}
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
