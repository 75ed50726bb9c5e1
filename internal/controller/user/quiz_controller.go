package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// ListQuizzes godoc
// @Summary List available quizzes
// @Description Returns quiz summaries (no questions).
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	summaries, err := c.quizService.ListSummaries()
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// StartQuiz godoc
// @Summary Get a quiz for taking
// @Description Returns the quiz with its questions sanitized for the taking
// flow: question text and options only, never the answer key.
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.TakingQuizDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id}/start [get]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	quiz, err := c.quizService.GetForTaking(uint(quizID))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("StartQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}
