package service

import (
	"context"
	"sync/atomic"

	"iamove/internal/domain"
	"iamove/internal/dto"
	"iamove/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// translateWorkers bounds concurrent calls to the translation provider.
const translateWorkers = 4

// BackfillService fills missing question translations for a site. Runs are
// idempotent: the (question, language) upsert makes re-processing a pair a
// no-op overwrite, never a duplicate row.
type BackfillService interface {
	CheckStatus(ctx context.Context, siteID string) (*dto.BackfillStatusResponse, error)
	// RunBatch processes up to the configured batch size of missing pairs
	// and reports whether more remain.
	RunBatch(ctx context.Context, siteID string) (*dto.BackfillRunResponse, error)
}

type backfillService struct {
	questionRepo    domain.QuestionRepository
	translationRepo domain.TranslationRepository
	siteRepo        domain.SiteRepository
	translator      domain.Translator
	batchSize       int
}

// NewBackfillService creates a new instance of backfillService
func NewBackfillService(
	questionRepo domain.QuestionRepository,
	translationRepo domain.TranslationRepository,
	siteRepo domain.SiteRepository,
	translator domain.Translator,
	batchSize int,
) BackfillService {
	return &backfillService{
		questionRepo:    questionRepo,
		translationRepo: translationRepo,
		siteRepo:        siteRepo,
		translator:      translator,
		batchSize:       batchSize,
	}
}

// missingPair is one translation row that does not exist yet.
type missingPair struct {
	question *domain.Question
	language string
}

// CheckStatus implements BackfillService
func (s *backfillService) CheckStatus(ctx context.Context, siteID string) (*dto.BackfillStatusResponse, error) {
	pairs, err := s.missingPairs(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return &dto.BackfillStatusResponse{
		IsComplete:   len(pairs) == 0,
		MissingCount: len(pairs),
	}, nil
}

// RunBatch implements BackfillService
func (s *backfillService) RunBatch(ctx context.Context, siteID string) (*dto.BackfillRunResponse, error) {
	pairs, err := s.missingPairs(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return &dto.BackfillRunResponse{}, nil
	}

	batch := pairs
	if len(batch) > s.batchSize {
		batch = batch[:s.batchSize]
	}

	var created int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(translateWorkers)
	for _, pair := range batch {
		g.Go(func() error {
			translation := s.translatePair(gctx, pair)
			if err := s.translationRepo.Upsert(gctx, translation); err != nil {
				return domain.NewInternalError("Failed to save translation", err)
			}
			atomic.AddInt64(&created, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.BackfillRunResponse{
		TranslationsCreated: int(created),
		HasMore:             len(pairs) > len(batch),
	}, nil
}

// missingPairs computes (active question, supported language) pairs with no
// translation row, excluding the site's base language. Order is stable so
// successive batches make forward progress.
func (s *backfillService) missingPairs(ctx context.Context, siteID string) ([]missingPair, error) {
	site, err := s.siteRepo.GetSiteByID(ctx, siteID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load site", err)
	}
	if site == nil {
		return nil, domain.NewNotFoundError("Site not found")
	}

	questions, err := s.questionRepo.ListActiveQuestions(ctx, siteID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	keys, err := s.translationRepo.ListKeysBySite(ctx, siteID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list translations", err)
	}
	existing := make(map[domain.TranslationKey]struct{}, len(keys))
	for _, k := range keys {
		existing[k] = struct{}{}
	}

	var pairs []missingPair
	for _, q := range questions {
		for _, lang := range domain.SupportedLanguages {
			if lang == site.BaseLanguage {
				continue
			}
			key := domain.TranslationKey{QuestionID: q.ID, LanguageCode: lang}
			if _, ok := existing[key]; !ok {
				pairs = append(pairs, missingPair{question: q, language: lang})
			}
		}
	}
	return pairs, nil
}

// translatePair builds the translation row for one pair. Provider failures
// fall back to the source text so a pair is never retried forever; the row
// can be corrected by a later structural edit.
func (s *backfillService) translatePair(ctx context.Context, pair missingPair) *domain.Translation {
	q := pair.question

	answers := make([]domain.AnswerOption, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = domain.AnswerOption{
			Text:      s.translateText(ctx, a.Text, pair.language, q.ID),
			IsCorrect: a.IsCorrect,
		}
	}

	return &domain.Translation{
		QuestionID:   q.ID,
		LanguageCode: pair.language,
		Prompt:       s.translateText(ctx, q.Prompt, pair.language, q.ID),
		Answers:      answers,
	}
}

func (s *backfillService) translateText(ctx context.Context, text, language, questionID string) string {
	translated, err := s.translator.Translate(ctx, text, language)
	if err != nil {
		logger.Get().Warn("Translation failed, keeping source text",
			zap.String("question_id", questionID),
			zap.String("language", language),
			zap.Error(err))
		return text
	}
	if translated == "" {
		return text
	}
	return translated
}
