package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/ndthang/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	// Admin surface: answer keys included in responses.
	Create(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	Update(quizID uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error)
	Delete(quizID uint) error
	GetByID(quizID uint) (*dto.QuizResponseDTO, error)

	// User surface: no answer keys leave this boundary.
	ListSummaries() ([]dto.QuizSummaryDTO, error)
	GetForTaking(quizID uint) (*dto.TakingQuizDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) Create(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		Title:            req.Title,
		Description:      req.Description,
		TimeLimitMinutes: req.TimeLimitMinutes,
		Questions:        questions,
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Msg("Create quiz: database error")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	return s.GetByID(quiz.ID)
}

func (s *quizService) Update(quizID uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}

	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.TimeLimitMinutes = req.TimeLimitMinutes
	if err := s.quizRepo.ReplaceQuestions(quiz, questions); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Update quiz: database error")
		return nil, fmt.Errorf("database error updating quiz: %w", err)
	}

	return s.GetByID(quizID)
}

func (s *quizService) Delete(quizID uint) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("quiz %d: %w", quizID, apperr.ErrNotFound)
		}
		return fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	if err := s.quizRepo.Delete(quizID); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Delete quiz: database error")
		return fmt.Errorf("database error deleting quiz: %w", err)
	}
	return nil
}

func (s *quizService) GetByID(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetByID: failed to fetch quiz")
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("GetByID: failed to copy quiz to DTO")
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) ListSummaries() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("ListSummaries: failed to fetch quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, dto.QuizSummaryDTO{
			ID:               q.Quiz.ID,
			Title:            q.Quiz.Title,
			Description:      q.Quiz.Description,
			TimeLimitMinutes: q.Quiz.TimeLimitMinutes,
			QuestionCount:    q.QuestionCount,
			CreatedAt:        q.Quiz.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *quizService) GetForTaking(quizID uint) (*dto.TakingQuizDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetForTaking: failed to fetch quiz")
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	return SanitizeForTaking(quiz), nil
}

// SanitizeForTaking produces the learner-facing view of a quiz. The result is
// built field by field so nothing key-shaped can ride along: only question
// text and options survive.
func SanitizeForTaking(quiz *model.Quiz) *dto.TakingQuizDTO {
	taking := dto.TakingQuizDTO{
		ID:               quiz.ID,
		Title:            quiz.Title,
		Description:      quiz.Description,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
		Questions:        make([]dto.TakingQuestionDTO, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		taking.Questions = append(taking.Questions, dto.TakingQuestionDTO{
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return &taking
}

// buildQuestions validates the submitted questions and converts them to
// models, assigning positions from slice order.
func buildQuestions(reqs []dto.QuestionCreateDTO) ([]model.Question, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: a quiz must have at least one question", apperr.ErrValidation)
	}

	questions := make([]model.Question, 0, len(reqs))
	for i, qDto := range reqs {
		if len(qDto.Options) < 2 {
			return nil, fmt.Errorf("%w: question %d must have at least 2 options", apperr.ErrValidation, i+1)
		}
		if qDto.CorrectIndex < 0 || qDto.CorrectIndex >= len(qDto.Options) {
			return nil, fmt.Errorf("%w: question %d correct_index %d is out of range for %d options",
				apperr.ErrValidation, i+1, qDto.CorrectIndex, len(qDto.Options))
		}
		difficulty := qDto.Difficulty
		if difficulty == "" {
			difficulty = model.DifficultyMedium
		}
		questions = append(questions, model.Question{
			Text:         qDto.Text,
			Options:      qDto.Options,
			CorrectIndex: qDto.CorrectIndex,
			Difficulty:   difficulty,
			Tags:         qDto.Tags,
			Position:     i + 1,
		})
	}
	return questions, nil
}
