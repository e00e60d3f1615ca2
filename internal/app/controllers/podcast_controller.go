package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/services"
	"github.com/skillsync/skillsync/internal/middleware"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
)

// PodcastController handles podcast sharing
type PodcastController struct {
	podcastService services.PodcastService
}

// NewPodcastController creates a new PodcastController
func NewPodcastController(podcastService services.PodcastService) *PodcastController {
	return &PodcastController{podcastService: podcastService}
}

// UploadPodcast uploads an audio episode
// @Summary Upload a podcast
// @Tags podcasts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Episode title"
// @Param language formData string true "Language tag, e.g. en"
// @Param file formData file true "Audio file"
// @Success 201 {object} dto.APIResponse{data=dto.PodcastResponse} "Podcast uploaded"
// @Failure 400 {object} dto.APIResponse "Missing fields or invalid language"
// @Router /podcasts [post]
func (c *PodcastController) UploadPodcast(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	var req dto.CreatePodcastRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid podcast data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Audio file is required").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	podcast, err := c.podcastService.UploadPodcast(ctx, userID, req.Title, req.Language, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: podcast})
}

// GetPodcasts lists podcasts, optionally filtered by language
// @Summary List podcasts
// @Tags podcasts
// @Produce json
// @Security BearerAuth
// @Param language query string false "Language filter, e.g. en"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PodcastListResponse} "Podcast page"
// @Router /podcasts [get]
func (c *PodcastController) GetPodcasts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var language *string
	if lang := ctx.Query("language"); lang != "" {
		language = &lang
	}

	podcasts, err := c.podcastService.GetPodcasts(ctx, language, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: podcasts})
}
