package service

import (
	"encoding/json"
	"testing"

	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/ndthang/quizhub/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validQuizCreateDTO() dto.QuizCreateDTO {
	return dto.QuizCreateDTO{
		Title:       "Capitals",
		Description: "European capitals",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Capital of France?", Options: []string{"Paris", "Lyon"}, CorrectIndex: 0},
			{Text: "Capital of Spain?", Options: []string{"Seville", "Madrid", "Bilbao"}, CorrectIndex: 1, Difficulty: "hard", Tags: []string{"geo"}},
		},
	}
}

func TestCreateQuizValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.QuizCreateDTO)
	}{
		{"no questions", func(q *dto.QuizCreateDTO) { q.Questions = nil }},
		{"too few options", func(q *dto.QuizCreateDTO) { q.Questions[0].Options = []string{"Paris"} }},
		{"correct index out of range", func(q *dto.QuizCreateDTO) { q.Questions[1].CorrectIndex = 3 }},
		{"negative correct index", func(q *dto.QuizCreateDTO) { q.Questions[0].CorrectIndex = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quizRepo := new(MockQuizRepository)
			svc := NewQuizService(quizRepo)

			req := validQuizCreateDTO()
			tt.mutate(&req)

			resp, err := svc.Create(req)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Nil(t, resp)
			quizRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateQuizBuildsQuestions(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	svc := NewQuizService(quizRepo)

	var created *model.Quiz
	quizRepo.On("Create", mock.AnythingOfType("*model.Quiz")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*model.Quiz)
		created.ID = 11
	}).Return(nil)
	quizRepo.On("FindByIDWithQuestions", uint(11)).Return(&model.Quiz{ID: 11, Title: "Capitals"}, nil)

	_, err := svc.Create(validQuizCreateDTO())

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Len(t, created.Questions, 2)
	assert.Equal(t, 1, created.Questions[0].Position)
	assert.Equal(t, 2, created.Questions[1].Position)
	// Difficulty defaults to medium when omitted.
	assert.Equal(t, model.DifficultyMedium, created.Questions[0].Difficulty)
	assert.Equal(t, model.DifficultyHard, created.Questions[1].Difficulty)
	assert.Equal(t, 0, created.Questions[0].CorrectIndex)
	assert.Equal(t, 1, created.Questions[1].CorrectIndex)
}

func TestSanitizeForTakingStripsAnswerKey(t *testing.T) {
	quiz := &model.Quiz{
		ID:          3,
		Title:       "Capitals",
		Description: "European capitals",
		Questions: []model.Question{
			{Text: "Capital of France?", Options: model.StringArray{"Paris", "Lyon"}, CorrectIndex: 0, Difficulty: "easy", Tags: model.StringArray{"geo"}},
			{Text: "Capital of Spain?", Options: model.StringArray{"Seville", "Madrid"}, CorrectIndex: 1},
		},
	}

	taking := SanitizeForTaking(quiz)

	require.Len(t, taking.Questions, 2)
	assert.Equal(t, "Capital of France?", taking.Questions[0].Text)
	assert.Equal(t, []string{"Paris", "Lyon"}, taking.Questions[0].Options)

	// The serialized form must carry no trace of the key or grading metadata.
	payload, err := json.Marshal(taking)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "correct")
	assert.NotContains(t, string(payload), "difficulty")
	assert.NotContains(t, string(payload), "tags")
}

func TestUpdateQuizNotFound(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	svc := NewQuizService(quizRepo)

	quizRepo.On("FindByID", uint(8)).Return(nil, gormNotFound())

	resp, err := svc.Update(8, validQuizCreateDTO())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, resp)
	quizRepo.AssertNotCalled(t, "ReplaceQuestions", mock.Anything, mock.Anything)
}

func TestDeleteQuizNotFound(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	svc := NewQuizService(quizRepo)

	quizRepo.On("FindByID", uint(8)).Return(nil, gormNotFound())

	err := svc.Delete(8)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	quizRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestListSummaries(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	svc := NewQuizService(quizRepo)

	quizRepo.On("FindAllWithQuestionCount").Return([]repository.QuizWithQuestionCount{
		{Quiz: model.Quiz{ID: 1, Title: "Capitals", Description: "geo"}, QuestionCount: 3},
		{Quiz: model.Quiz{ID: 2, Title: "Rivers", Description: "geo"}, QuestionCount: 5},
	}, nil)

	summaries, err := svc.ListSummaries()

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, uint(1), summaries[0].ID)
	assert.Equal(t, 3, summaries[0].QuestionCount)
	assert.Equal(t, "Rivers", summaries[1].Title)
	assert.Equal(t, 5, summaries[1].QuestionCount)
}

func gormNotFound() error {
	return gorm.ErrRecordNotFound
}
