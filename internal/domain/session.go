package domain

import (
	"sort"
	"time"
)

// SessionState is the lifecycle state of one quiz attempt.
type SessionState string

const (
	SessionInProgress  SessionState = "IN_PROGRESS"
	SessionPassedEarly SessionState = "PASSED_EARLY"
	SessionFailedEarly SessionState = "FAILED_EARLY"
	SessionCompleted   SessionState = "COMPLETED"
	SessionNoQuestions SessionState = "NO_QUESTIONS"
)

const (
	// SessionQuestionCount is the pool size one attempt draws from.
	SessionQuestionCount = 20
	// PassingScore validates the level: 15 correct out of the 20-question pool.
	PassingScore = 15
	// MaxErrors is the tolerated error count; a sixth error makes the
	// passing score mathematically unreachable.
	MaxErrors = 5
)

// SessionQuestion is one question as presented inside a session: display text
// possibly translated, correctness flags always from the base question.
type SessionQuestion struct {
	QuestionID string         `json:"question_id"`
	Prompt     string         `json:"prompt"`
	Answers    []AnswerOption `json:"answers"`
}

// CorrectIndexes returns the indexes of the options flagged correct.
func (q *SessionQuestion) CorrectIndexes() []int {
	var idx []int
	for i, a := range q.Answers {
		if a.IsCorrect {
			idx = append(idx, i)
		}
	}
	return idx
}

// QuizSession drives one quiz attempt end-to-end. The question order is fixed
// at start; answers advance Index and update the running counters until a
// terminal rule fires.
type QuizSession struct {
	ID             string            `json:"id"`
	SiteID         string            `json:"site_id"`
	PersonID       string            `json:"person_id"`
	TargetLevel    int               `json:"target_level"`
	Language       string            `json:"language"`
	Questions      []SessionQuestion `json:"questions"`
	Index          int               `json:"index"`
	Score          int               `json:"score"`
	Errors         int               `json:"errors"`
	State          SessionState      `json:"state"`
	CompletionSent bool              `json:"completion_sent"`
	StartedAt      time.Time         `json:"started_at"`
}

// NewQuizSession starts a session over the given question set. An empty set
// is a first-class terminal state, not an error.
func NewQuizSession(id, siteID, personID string, targetLevel int, language string, questions []SessionQuestion) *QuizSession {
	state := SessionInProgress
	if len(questions) == 0 {
		state = SessionNoQuestions
	}
	return &QuizSession{
		ID:          id,
		SiteID:      siteID,
		PersonID:    personID,
		TargetLevel: targetLevel,
		Language:    language,
		Questions:   questions,
		State:       state,
		StartedAt:   time.Now(),
	}
}

// Terminal reports whether no further questions may be presented.
func (s *QuizSession) Terminal() bool {
	return s.State != SessionInProgress
}

// Passed reports whether the finished session validates the target level.
func (s *QuizSession) Passed() bool {
	switch s.State {
	case SessionPassedEarly:
		return true
	case SessionCompleted:
		return s.Score >= PassingScore
	default:
		return false
	}
}

// CurrentQuestion returns the question awaiting an answer.
func (s *QuizSession) CurrentQuestion() (*SessionQuestion, error) {
	if s.Terminal() {
		return nil, NewSessionFinishedError(s.ID)
	}
	return &s.Questions[s.Index], nil
}

// ApplyAnswer validates the selected indexes against the current question,
// updates the counters and applies the termination rules in order:
// early pass, then early fail, then exhaustion. It returns whether the
// answer was correct.
func (s *QuizSession) ApplyAnswer(selected []int) (bool, error) {
	if s.Terminal() {
		return false, NewSessionFinishedError(s.ID)
	}

	question := &s.Questions[s.Index]
	for _, i := range selected {
		if i < 0 || i >= len(question.Answers) {
			return false, NewError(CodeInvalidAnswer, "Selected answer index out of range", nil)
		}
	}

	correct := exactSetMatch(selected, question.CorrectIndexes())
	if correct {
		s.Score++
	} else {
		s.Errors++
	}
	s.Index++

	switch {
	case s.Score >= PassingScore:
		s.State = SessionPassedEarly
	case s.Errors > MaxErrors:
		s.State = SessionFailedEarly
	case s.Index >= len(s.Questions):
		s.State = SessionCompleted
	}

	return correct, nil
}

// exactSetMatch reports whether the two index lists denote the same set.
// A superset or subset of the correct options is not a correct answer.
func exactSetMatch(selected, correct []int) bool {
	sel := dedupSorted(selected)
	cor := dedupSorted(correct)
	if len(sel) != len(cor) {
		return false
	}
	for i := range sel {
		if sel[i] != cor[i] {
			return false
		}
	}
	return true
}

func dedupSorted(in []int) []int {
	out := make([]int, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// AnswerEvent is the per-answer telemetry row. Persisting it is best-effort
// and must never block quiz progression.
type AnswerEvent struct {
	ID              string
	PersonID        string
	QuestionID      string
	SessionID       string
	SelectedIndexes []int
	IsCorrect       bool
	AttemptedAt     time.Time
}
