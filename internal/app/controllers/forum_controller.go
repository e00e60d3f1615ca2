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

// ForumController handles the Q&A forum
type ForumController struct {
	forumService services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// AskQuestion posts a new question
// @Summary Ask a question
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AskQuestionRequest true "Question text"
// @Success 201 {object} dto.APIResponse{data=dto.QuestionResponse} "Question posted"
// @Failure 400 {object} dto.APIResponse "Empty question"
// @Router /forum/questions [post]
func (c *ForumController) AskQuestion(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	var req dto.AskQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	question, err := c.forumService.AskQuestion(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: question})
}

// GetQuestions lists forum questions
// @Summary List questions
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionListResponse} "Question page"
// @Router /forum/questions [get]
func (c *ForumController) GetQuestions(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	questions, err := c.forumService.GetQuestions(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: questions})
}

// AnswerQuestion answers a question
// @Summary Answer a question
// @Description Stores a non-empty answer on a question; answering again replaces it
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.AnswerQuestionRequest true "Answer text"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionResponse} "Question answered"
// @Failure 400 {object} dto.APIResponse "Empty answer"
// @Failure 404 {object} dto.APIResponse "Question not found"
// @Router /forum/questions/{id}/answer [put]
func (c *ForumController) AnswerQuestion(ctx *gin.Context) {
	questionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question ID").
			WithDetails("Question ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var req dto.AnswerQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid answer data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	question, err := c.forumService.AnswerQuestion(ctx, questionID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: question})
}
