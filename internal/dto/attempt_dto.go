package dto

import "time"

// AttemptSubmitDTO is the request body for submitting a quiz attempt.
// Answers is positional: element i answers question i. A null element means
// the question was left unanswered. Arrays shorter than the question count
// are treated as unanswered from that point on.
type AttemptSubmitDTO struct {
	QuizID  uint   `json:"quiz_id" binding:"required"`
	Answers []*int `json:"answers"`
}

// AttemptResultDTO reports the outcome of a scored attempt.
type AttemptResultDTO struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// AttemptHistoryEntryDTO is one row of a user's attempt history.
type AttemptHistoryEntryDTO struct {
	QuizTitle   string    `json:"quiz_title"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`
}
