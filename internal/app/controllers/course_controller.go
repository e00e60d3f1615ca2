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

// CourseController handles course sharing and enrollment
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse shares a new course
// @Summary Share a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created"
// @Failure 400 {object} dto.APIResponse "Invalid course data"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	course, err := c.courseService.CreateCourse(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: course})
}

// GetCourses lists shared courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Course page"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	page, size := helpers.ParsePaginationParams(ctx)

	courses, err := c.courseService.GetCourses(ctx, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}

// Enroll enrolls the caller in a course
// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Enrolled"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 409 {object} dto.APIResponse "Already enrolled"
// @Router /courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").
			WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.courseService.Enroll(ctx, userID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Enrolled"}})
}

// GetMyCourses lists the caller's enrolled courses
// @Summary List own enrollments
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Enrolled courses"
// @Router /courses/my [get]
func (c *CourseController) GetMyCourses(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	courses, err := c.courseService.GetMyCourses(ctx, userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}
