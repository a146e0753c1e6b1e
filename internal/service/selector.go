package service

import (
	"context"

	"iamove/internal/domain"
	"iamove/internal/logger"

	"go.uber.org/zap"
)

// SelectorService builds the question set for one quiz attempt.
type SelectorService interface {
	// SelectQuestions returns up to count active questions of the given
	// level, in a fixed random order without replacement, with display text
	// resolved for the requested language. A short or empty result is not
	// an error; the caller decides what a too-small bank means.
	SelectQuestions(ctx context.Context, siteID string, level int, language string, count int) ([]domain.SessionQuestion, error)
}

type selectorService struct {
	questionRepo    domain.QuestionRepository
	translationRepo domain.TranslationRepository
	siteRepo        domain.SiteRepository
}

// NewSelectorService creates a new instance of selectorService
func NewSelectorService(
	questionRepo domain.QuestionRepository,
	translationRepo domain.TranslationRepository,
	siteRepo domain.SiteRepository,
) SelectorService {
	return &selectorService{
		questionRepo:    questionRepo,
		translationRepo: translationRepo,
		siteRepo:        siteRepo,
	}
}

// SelectQuestions implements SelectorService
func (s *selectorService) SelectQuestions(ctx context.Context, siteID string, level int, language string, count int) ([]domain.SessionQuestion, error) {
	if !domain.IsValidLevel(level) {
		return nil, domain.NewInvalidLevelError(level)
	}

	site, err := s.siteRepo.GetSiteByID(ctx, siteID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load site", err)
	}
	if site == nil {
		return nil, domain.NewNotFoundError("Site not found")
	}

	questions, err := s.questionRepo.GetRandomActiveQuestions(ctx, siteID, level, count)
	if err != nil {
		return nil, domain.NewInternalError("Failed to select questions", err)
	}
	if len(questions) == 0 {
		return nil, nil
	}

	// The base language is authoritative; a translation overlay only applies
	// for another supported language.
	translations := map[string]map[string]*domain.Translation{}
	useOverlay := language != site.BaseLanguage && domain.IsSupportedLanguage(language)
	if useOverlay {
		ids := make([]string, len(questions))
		for i, q := range questions {
			ids[i] = q.ID
		}
		translations, err = s.translationRepo.ListByQuestionIDs(ctx, ids)
		if err != nil {
			// Missing translations degrade to base-language display.
			logger.Get().Warn("Falling back to base language for quiz selection",
				zap.String("site_id", siteID),
				zap.String("language", language),
				zap.Error(err))
			translations = map[string]map[string]*domain.Translation{}
		}
	}

	selected := make([]domain.SessionQuestion, 0, len(questions))
	for _, q := range questions {
		selected = append(selected, resolveSessionQuestion(q, translations[q.ID], language))
	}
	return selected, nil
}

// resolveSessionQuestion overlays translated display text onto a question.
// Correctness flags always come from the base question: translation rows copy
// them for convenience but are never trusted as the source of truth.
func resolveSessionQuestion(q *domain.Question, byLanguage map[string]*domain.Translation, language string) domain.SessionQuestion {
	answers := make([]domain.AnswerOption, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = domain.AnswerOption{Text: a.Text, IsCorrect: a.IsCorrect}
	}
	prompt := q.Prompt

	if tr := byLanguage[language]; tr != nil {
		if tr.Prompt != "" {
			prompt = tr.Prompt
		}
		// A translation with a diverging option count is stale; keep base text.
		if len(tr.Answers) == len(answers) {
			for i := range answers {
				if tr.Answers[i].Text != "" {
					answers[i].Text = tr.Answers[i].Text
				}
			}
		}
	}

	return domain.SessionQuestion{
		QuestionID: q.ID,
		Prompt:     prompt,
		Answers:    answers,
	}
}
