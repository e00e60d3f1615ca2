package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsync/skillsync/internal/app/controllers"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	postController *controllers.PostController,
	courseController *controllers.CourseController,
	forumController *controllers.ForumController,
	noteController *controllers.NoteController,
	podcastController *controllers.PodcastController,
	projectController *controllers.ProjectController,
	hackathonController *controllers.HackathonController,
	leaderboardController *controllers.LeaderboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// User profile routes
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
			users.PUT("/me/avatar", userController.UpdateAvatar)
			users.GET("/:username", userController.GetProfileByUsername)
		}

		// Post feed routes
		posts := authenticated.Group("/posts")
		{
			posts.GET("", postController.GetFeed)
			posts.POST("", postController.CreatePost)
		}

		// Course routes
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetCourses)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/my", courseController.GetMyCourses)
			courses.POST("/:id/enroll", courseController.Enroll)
		}

		// Forum routes
		forum := authenticated.Group("/forum")
		{
			forum.GET("/questions", forumController.GetQuestions)
			forum.POST("/questions", forumController.AskQuestion)
			forum.PUT("/questions/:id/answer", forumController.AnswerQuestion)
		}

		// Note routes with per-user ratings
		notes := authenticated.Group("/notes")
		{
			notes.GET("", noteController.GetNotes)
			notes.POST("", noteController.UploadNote)
			notes.POST("/:id/rate", noteController.RateNote)
			notes.GET("/:id/rating", noteController.GetAverageRating)
		}

		// Podcast routes
		podcasts := authenticated.Group("/podcasts")
		{
			podcasts.GET("", podcastController.GetPodcasts)
			podcasts.POST("", podcastController.UploadPodcast)
		}

		// Project routes with membership
		projects := authenticated.Group("/projects")
		{
			projects.GET("", projectController.GetProjects)
			projects.POST("", projectController.CreateProject)
			projects.POST("/:id/join", projectController.JoinProject)
			projects.GET("/:id/members", projectController.GetMembers)
		}

		// Hackathon routes
		hackathons := authenticated.Group("/hackathons")
		{
			hackathons.GET("", hackathonController.GetHackathons)
			hackathons.POST("", hackathonController.CreateHackathon)
			hackathons.POST("/:id/join", hackathonController.JoinHackathon)
		}

		// Leaderboard routes
		leaderboard := authenticated.Group("/leaderboard")
		{
			leaderboard.GET("", leaderboardController.GetLeaderboard)
			leaderboard.GET("/me", leaderboardController.GetMyRank)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
