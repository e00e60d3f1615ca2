package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/services"
	"github.com/skillsync/skillsync/internal/middleware"
)

// LeaderboardController handles the points leaderboard
type LeaderboardController struct {
	leaderboardService services.LeaderboardService
}

// NewLeaderboardController creates a new LeaderboardController
func NewLeaderboardController(leaderboardService services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: leaderboardService}
}

// GetLeaderboard returns the full ordered board
// @Summary Get the leaderboard
// @Description Scores every contributing user and returns them ranked
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LeaderboardResponse} "Ranked board"
// @Router /leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	board, err := c.leaderboardService.GetLeaderboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: board})
}

// GetMyRank returns the caller's own rank
// @Summary Get own rank
// @Description Returns the caller's rank and score, or an unranked marker for users with no contributions
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MyRankResponse} "Own rank"
// @Router /leaderboard/me [get]
func (c *LeaderboardController) GetMyRank(ctx *gin.Context) {
	username, ok := middleware.GetUsername(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	rank, err := c.leaderboardService.GetMyRank(ctx, username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rank})
}
