package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/middleware"
	"github.com/ndthang/quizhub/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// SubmitAttempt godoc
// @Summary Submit answers for a quiz
// @Description Scores the positional answer array against the quiz and
// records an immutable attempt for the logged-in user. Null elements are
// unanswered. Repeat attempts are allowed.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param submission body dto.AttemptSubmitDTO true "Quiz ID and answers"
// @Success 201 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed payload"
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.attemptService.Submit(principal.ID, req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", req.QuizID).Uint("userID", principal.ID).Msg("SubmitAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt"})
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetHistory godoc
// @Summary Attempt history
// @Description Lists the logged-in user's attempts, newest first.
// @Tags Attempts
// @Produce json
// @Success 200 {array} dto.AttemptHistoryEntryDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/history [get]
func (c *AttemptController) GetHistory(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	history, err := c.attemptService.History(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve history"})
		return
	}
	ctx.JSON(http.StatusOK, history)
}
