package dto

// AnswerOptionView is one selectable option as shown to the person taking the
// quiz. Correctness flags never leave the server.
type AnswerOptionView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// QuestionView is one question as presented inside a session.
type QuestionView struct {
	QuestionID string             `json:"question_id"`
	Prompt     string             `json:"prompt"`
	Answers    []AnswerOptionView `json:"answers"`
}

// StartQuizRequest is the request body for starting a quiz session.
type StartQuizRequest struct {
	TargetLevel int    `json:"target_level"`
	Language    string `json:"language"`
}

// StartQuizResponse describes the freshly started session.
type StartQuizResponse struct {
	SessionID      string        `json:"session_id"`
	State          string        `json:"state"`
	TotalQuestions int           `json:"total_questions"`
	Question       *QuestionView `json:"question,omitempty"`
}

// SubmitAnswerRequest is the request body for answering the current question.
type SubmitAnswerRequest struct {
	SessionID       string `json:"session_id"`
	SelectedIndexes []int  `json:"selected_indexes"`
}

// SubmitAnswerResponse carries the per-answer result and, when the session
// continues, the next question.
type SubmitAnswerResponse struct {
	Correct      bool          `json:"correct"`
	Score        int           `json:"score"`
	Errors       int           `json:"errors"`
	State        string        `json:"state"`
	Passed       *bool         `json:"passed,omitempty"` // set on terminal states only
	NextQuestion *QuestionView `json:"next_question,omitempty"`
	NewLevel     *int          `json:"new_level,omitempty"` // set when the pass raised the level
}

// SessionResponse is a read-only snapshot of a session.
type SessionResponse struct {
	SessionID      string        `json:"session_id"`
	TargetLevel    int           `json:"target_level"`
	Language       string        `json:"language"`
	State          string        `json:"state"`
	Score          int           `json:"score"`
	Errors         int           `json:"errors"`
	Answered       int           `json:"answered"`
	TotalQuestions int           `json:"total_questions"`
	Question       *QuestionView `json:"question,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
