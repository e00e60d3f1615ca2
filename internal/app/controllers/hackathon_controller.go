package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/services"
	"github.com/skillsync/skillsync/internal/middleware"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
)

// HackathonController handles hackathon events
type HackathonController struct {
	hackathonService services.HackathonService
}

// NewHackathonController creates a new HackathonController
func NewHackathonController(hackathonService services.HackathonService) *HackathonController {
	return &HackathonController{hackathonService: hackathonService}
}

// CreateHackathon creates a hackathon
// @Summary Create a hackathon
// @Tags hackathons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHackathonRequest true "Hackathon information"
// @Success 201 {object} dto.APIResponse{data=dto.HackathonResponse} "Hackathon created"
// @Failure 400 {object} dto.APIResponse "Invalid hackathon data"
// @Router /hackathons [post]
func (c *HackathonController) CreateHackathon(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	var req dto.CreateHackathonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hackathon data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	hackathon, err := c.hackathonService.CreateHackathon(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: hackathon})
}

// GetHackathons lists hackathons
// @Summary List hackathons
// @Tags hackathons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.HackathonListResponse} "Hackathon page"
// @Router /hackathons [get]
func (c *HackathonController) GetHackathons(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	page, size := helpers.ParsePaginationParams(ctx)

	hackathons, err := c.hackathonService.GetHackathons(ctx, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: hackathons})
}

// JoinHackathon registers the caller for a hackathon
// @Summary Join a hackathon
// @Tags hackathons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hackathon ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Joined"
// @Failure 404 {object} dto.APIResponse "Hackathon not found"
// @Failure 409 {object} dto.APIResponse "Already joined"
// @Router /hackathons/{id}/join [post]
func (c *HackathonController) JoinHackathon(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	hackathonID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hackathon ID").
			WithDetails("Hackathon ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.hackathonService.JoinHackathon(ctx, hackathonID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Joined hackathon"}})
}
