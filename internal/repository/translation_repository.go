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

// TranslationDatabaseAdapter implements domain.TranslationRepository using sqlx.
type TranslationDatabaseAdapter struct {
	db *sqlx.DB
}

// NewTranslationDatabaseAdapter creates a new instance of TranslationDatabaseAdapter
func NewTranslationDatabaseAdapter(db *sqlx.DB) domain.TranslationRepository {
	return &TranslationDatabaseAdapter{db: db}
}

func toDomainTranslation(m *models.Translation) *domain.Translation {
	if m == nil {
		return nil
	}
	answers := make([]domain.AnswerOption, len(m.Answers))
	for i, a := range m.Answers {
		answers[i] = domain.AnswerOption{Text: a.Text, IsCorrect: a.IsCorrect}
	}
	return &domain.Translation{
		QuestionID:   m.QuestionID,
		LanguageCode: m.LanguageCode,
		Prompt:       m.Prompt,
		Answers:      answers,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Upsert writes a translation keyed by the unique (question_id, language_code)
// pair. MERGE makes redundant or concurrent backfill invocations converge on a
// single row instead of raising a duplicate-key error.
func (a *TranslationDatabaseAdapter) Upsert(ctx context.Context, translation *domain.Translation) error {
	answers := make(models.AnswerList, len(translation.Answers))
	for i, opt := range translation.Answers {
		answers[i] = models.AnswerRecord{Text: opt.Text, IsCorrect: opt.IsCorrect}
	}

	now := time.Now()
	m := &models.Translation{
		ID:           util.NewULID(),
		QuestionID:   translation.QuestionID,
		LanguageCode: translation.LanguageCode,
		Prompt:       translation.Prompt,
		Answers:      answers,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `MERGE INTO translations t
	USING (SELECT :question_id AS question_id, :language_code AS language_code FROM dual) src
	ON (t.question_id = src.question_id AND t.language_code = src.language_code)
	WHEN MATCHED THEN
	  UPDATE SET t.prompt = :prompt, t.answers = :answers, t.updated_at = :updated_at
	WHEN NOT MATCHED THEN
	  INSERT (id, question_id, language_code, prompt, answers, created_at, updated_at)
	  VALUES (:id, :question_id, :language_code, :prompt, :answers, :created_at, :updated_at)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to upsert translation (%s, %s): %w",
			translation.QuestionID, translation.LanguageCode, err)
	}
	return nil
}

// GetByQuestionAndLanguage implements domain.TranslationRepository
func (a *TranslationDatabaseAdapter) GetByQuestionAndLanguage(ctx context.Context, questionID, languageCode string) (*domain.Translation, error) {
	var m models.Translation
	query := `SELECT
		id "ID",
		question_id "QUESTION_ID",
		language_code "LANGUAGE_CODE",
		prompt "PROMPT",
		answers "ANSWERS",
		created_at "CREATED_AT",
		updated_at "UPDATED_AT"
	FROM translations
	WHERE question_id = :question_id AND language_code = :language_code`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetByQuestionAndLanguage: %w", err)
	}
	defer stmt.Close()

	args := map[string]interface{}{"question_id": questionID, "language_code": languageCode}
	if err := stmt.GetContext(ctx, &m, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get translation (%s, %s): %w", questionID, languageCode, err)
	}
	return toDomainTranslation(&m), nil
}

// ListByQuestionIDs returns translations grouped by question ID then language.
func (a *TranslationDatabaseAdapter) ListByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]map[string]*domain.Translation, error) {
	result := make(map[string]map[string]*domain.Translation)
	if len(questionIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT
		id "ID",
		question_id "QUESTION_ID",
		language_code "LANGUAGE_CODE",
		prompt "PROMPT",
		answers "ANSWERS",
		created_at "CREATED_AT",
		updated_at "UPDATED_AT"
	FROM translations
	WHERE question_id IN (?)`, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to expand IN clause for ListByQuestionIDs: %w", err)
	}
	query = a.db.Rebind(query)

	var rows []models.Translation
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list translations by question IDs: %w", err)
	}

	for i := range rows {
		tr := toDomainTranslation(&rows[i])
		if result[tr.QuestionID] == nil {
			result[tr.QuestionID] = make(map[string]*domain.Translation)
		}
		result[tr.QuestionID][tr.LanguageCode] = tr
	}
	return result, nil
}

// ListKeysBySite returns every existing (question, language) pair for a site.
func (a *TranslationDatabaseAdapter) ListKeysBySite(ctx context.Context, siteID string) ([]domain.TranslationKey, error) {
	query := `SELECT
		t.question_id "QUESTION_ID",
		t.language_code "LANGUAGE_CODE"
	FROM translations t
	JOIN questions q ON q.id = t.question_id
	WHERE q.site_id = :site_id AND q.deleted_at IS NULL`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for ListKeysBySite: %w", err)
	}
	defer stmt.Close()

	var rows []struct {
		QuestionID   string `db:"QUESTION_ID"`
		LanguageCode string `db:"LANGUAGE_CODE"`
	}
	if err := stmt.SelectContext(ctx, &rows, map[string]interface{}{"site_id": siteID}); err != nil {
		return nil, fmt.Errorf("failed to list translation keys for site %s: %w", siteID, err)
	}

	keys := make([]domain.TranslationKey, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, domain.TranslationKey{QuestionID: r.QuestionID, LanguageCode: r.LanguageCode})
	}
	return keys, nil
}

// DeleteByQuestionID removes all translations of one question. Used when the
// question is deleted or structurally edited, forcing backfill to regenerate.
func (a *TranslationDatabaseAdapter) DeleteByQuestionID(ctx context.Context, questionID string) error {
	query := `DELETE FROM translations WHERE question_id = :question_id`
	args := map[string]interface{}{"question_id": questionID}
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("failed to delete translations for question %s: %w", questionID, err)
	}
	return nil
}
