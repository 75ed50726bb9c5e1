package dto

import "time"

// QuestionCreateDTO is used within QuizCreateDTO / QuizUpdateDTO.
type QuestionCreateDTO struct {
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectIndex int      `json:"correct_index" binding:"min=0"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Tags         []string `json:"tags"`
}

// QuizCreateDTO is for admins to create a quiz with all of its questions.
type QuizCreateDTO struct {
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description" binding:"required"`
	TimeLimitMinutes *int                `json:"time_limit_minutes" binding:"omitempty,gt=0"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuizUpdateDTO replaces a quiz's metadata and question set.
type QuizUpdateDTO = QuizCreateDTO

// QuestionResponseDTO is the admin-facing question view, answer key included.
type QuestionResponseDTO struct {
	ID           uint     `json:"id"`
	QuizID       uint     `json:"quiz_id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Difficulty   string   `json:"difficulty"`
	Tags         []string `json:"tags,omitempty"`
	Position     int      `json:"position"`
}

// QuizResponseDTO is the admin-facing quiz view, answer keys included.
type QuizResponseDTO struct {
	ID               uint                  `json:"id"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	TimeLimitMinutes *int                  `json:"time_limit_minutes,omitempty"`
	Questions        []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

// QuizSummaryDTO is used for listing quizzes to users.
type QuizSummaryDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	TimeLimitMinutes *int      `json:"time_limit_minutes,omitempty"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// TakingQuestionDTO is the learner-facing question view. It deliberately has
// no field that could carry the answer key.
type TakingQuestionDTO struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// TakingQuizDTO is the learner-facing quiz view handed to the taking flow.
type TakingQuizDTO struct {
	ID               uint                `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	TimeLimitMinutes *int                `json:"time_limit_minutes,omitempty"`
	Questions        []TakingQuestionDTO `json:"questions"`
}
