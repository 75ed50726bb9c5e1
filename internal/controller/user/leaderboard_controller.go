package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/middleware"
	"github.com/ndthang/quizhub/internal/service"
	"github.com/rs/zerolog/log"
)

type LeaderboardController struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardController(leaderboardService service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary Leaderboard standings
// @Description Top 10 users by total score across all attempts. The caller is
// appended as an extra row with their true rank when outside the top 10.
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	entries, err := c.leaderboardService.Build(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("GetLeaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
