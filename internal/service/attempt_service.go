package service

import (
	"errors"
	"fmt"

	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/ndthang/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AttemptService interface {
	// Submit scores the answers against the quiz's answer key and records an
	// immutable attempt for the user.
	Submit(userID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error)
	History(userID uint) ([]dto.AttemptHistoryEntryDTO, error)
}

type attemptService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
}

func NewAttemptService(quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository) AttemptService {
	return &attemptService{quizRepo: quizRepo, attemptRepo: attemptRepo}
}

func (s *attemptService) Submit(userID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", req.QuizID, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("Submit: failed to fetch quiz")
		return nil, fmt.Errorf("error fetching quiz %d: %w", req.QuizID, err)
	}

	score := ScoreAnswers(quiz.Questions, req.Answers)

	attempt := model.Attempt{
		UserID:  userID,
		QuizID:  quiz.ID,
		Answers: normalizeAnswers(len(quiz.Questions), req.Answers),
		Score:   score,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Uint("userID", userID).Msg("Submit: failed to persist attempt")
		return nil, fmt.Errorf("error recording attempt: %w", err)
	}

	log.Info().Uint("userID", userID).Uint("quizID", quiz.ID).
		Int("score", score).Int("total", len(quiz.Questions)).
		Msg("Attempt submitted")

	return &dto.AttemptResultDTO{Score: score, Total: len(quiz.Questions)}, nil
}

func (s *attemptService) History(userID uint) ([]dto.AttemptHistoryEntryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("History: failed to fetch attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	history := make([]dto.AttemptHistoryEntryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		// Attempts outlive their quiz: a soft-deleted quiz leaves the title
		// blank and the total at zero, the stored score stands.
		history = append(history, dto.AttemptHistoryEntryDTO{
			QuizTitle:   attempt.Quiz.Title,
			Score:       attempt.Score,
			Total:       len(attempt.Quiz.Questions),
			SubmittedAt: attempt.SubmittedAt,
		})
	}
	return history, nil
}

// ScoreAnswers counts the positions where the submitted answer equals the
// question's answer key. A nil element is unanswered and never matches.
// Answers past the question count are ignored; questions past the answer
// count are unanswered. The result is always in [0, len(questions)].
func ScoreAnswers(questions []model.Question, answers []*int) int {
	score := 0
	for i, question := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if question.IsCorrect(*answers[i]) {
			score++
		}
	}
	return score
}

// normalizeAnswers fixes the stored answers array to exactly one slot per
// question, with UnansweredIndex standing in for nil or missing entries.
func normalizeAnswers(questionCount int, answers []*int) model.IntArray {
	normalized := make(model.IntArray, questionCount)
	for i := 0; i < questionCount; i++ {
		if i < len(answers) && answers[i] != nil {
			normalized[i] = *answers[i]
		} else {
			normalized[i] = model.UnansweredIndex
		}
	}
	return normalized
}
