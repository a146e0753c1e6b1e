package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache abstracts the key/value store used for quiz sessions and the
// session-scoped discovery set.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	// SAdd adds a member to a set and reports whether it was newly added.
	SAdd(ctx context.Context, key, member string, expiration time.Duration) (bool, error)
	Ping(ctx context.Context) error
}

// Translator is the opaque external translation service. Callers must fall
// back to the source text when a call fails.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// TranslationKey identifies one (question, language) translation pair.
type TranslationKey struct {
	QuestionID   string
	LanguageCode string
}

// QuestionRepository persists the question bank.
type QuestionRepository interface {
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	GetRandomActiveQuestions(ctx context.Context, siteID string, level, count int) ([]*Question, error)
	ListActiveQuestions(ctx context.Context, siteID string) ([]*Question, error)
	SaveQuestion(ctx context.Context, question *Question) error
	UpdateQuestion(ctx context.Context, question *Question) error
	SetQuestionActive(ctx context.Context, id string, active bool) error
	DeleteQuestion(ctx context.Context, id string) error
}

// TranslationRepository persists per-language translation rows. Upsert is
// keyed by the unique (question_id, language_code) pair: concurrent writers
// for the same pair must end with exactly one row.
type TranslationRepository interface {
	Upsert(ctx context.Context, translation *Translation) error
	GetByQuestionAndLanguage(ctx context.Context, questionID, languageCode string) (*Translation, error)
	ListByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]map[string]*Translation, error)
	ListKeysBySite(ctx context.Context, siteID string) ([]TranslationKey, error)
	DeleteByQuestionID(ctx context.Context, questionID string) error
}

// PersonRepository persists persons and their participation ledger.
type PersonRepository interface {
	GetPersonByID(ctx context.Context, id string) (*Person, error)
	UpdateCurrentLevel(ctx context.Context, personID string, level int) error
	// IncrementPoints adds delta atomically at the storage layer and
	// returns the new total.
	IncrementPoints(ctx context.Context, personID string, delta int) (int, error)
	// GetRank returns the person's 1-based rank within their site,
	// ordered by points descending, person ID ascending.
	GetRank(ctx context.Context, siteID, personID string) (int, error)
	ListRankedBySite(ctx context.Context, siteID string, limit int) ([]RankedPerson, error)
}

// SiteRepository reads tenant settings.
type SiteRepository interface {
	GetSiteByID(ctx context.Context, id string) (*Site, error)
}

// AnswerEventRepository persists per-answer telemetry.
type AnswerEventRepository interface {
	SaveAnswerEvent(ctx context.Context, event *AnswerEvent) error
}

// TransactionManager runs a function within one storage transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
