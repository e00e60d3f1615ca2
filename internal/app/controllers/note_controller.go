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

// NoteController handles note sharing and rating
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// UploadNote uploads study notes
// @Summary Upload notes
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Note title"
// @Param file formData file true "Note file"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse} "Note uploaded"
// @Failure 400 {object} dto.APIResponse "Missing title or file"
// @Router /notes [post]
func (c *NoteController) UploadNote(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid note data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Note file is required").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	note, err := c.noteService.UploadNote(ctx, userID, req.Title, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: note})
}

// GetNotes lists notes with rating aggregates
// @Summary List notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.NoteListResponse} "Note page"
// @Router /notes [get]
func (c *NoteController) GetNotes(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	notes, err := c.noteService.GetNotes(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: notes})
}

// RateNote rates a note from 1 to 5
// @Summary Rate a note
// @Description Records the caller's rating; rating again replaces the previous value
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.RateNoteRequest true "Rating value"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Rating recorded"
// @Failure 400 {object} dto.APIResponse "Rating out of range"
// @Failure 404 {object} dto.APIResponse "Note not found"
// @Router /notes/{id}/rate [post]
func (c *NoteController) RateNote(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	noteID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid note ID").
			WithDetails("Note ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var req dto.RateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rating data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.noteService.RateNote(ctx, noteID, userID, req.Rating); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Rating recorded"}})
}

// GetAverageRating returns a note's rating aggregate
// @Summary Get a note's average rating
// @Description Returns the average rounded to one decimal, or null when unrated
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse "Rating aggregate"
// @Failure 404 {object} dto.APIResponse "Note not found"
// @Router /notes/{id}/rating [get]
func (c *NoteController) GetAverageRating(ctx *gin.Context) {
	noteID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid note ID").
			WithDetails("Note ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	avg, count, err := c.noteService.GetAverageRating(ctx, noteID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{
		"averageRating": avg,
		"ratingCount":   count,
	}})
}
