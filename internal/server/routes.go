// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/Varun532-pixel/naukri-clone/internal/auth"
	"github.com/Varun532-pixel/naukri-clone/internal/controller/job"
	"github.com/Varun532-pixel/naukri-clone/internal/controller/user"
	"github.com/Varun532-pixel/naukri-clone/internal/middleware"
	"github.com/Varun532-pixel/naukri-clone/internal/model"

	// Init swagger doc
	_ "github.com/Varun532-pixel/naukri-clone/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	jobController := job.NewJobController(s.DB)
	userController := user.NewUserController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("register", lAuth.RegisterHandler)
			authRoute.POST("login", lAuth.LoginHandler)
		}

		// Public job browsing; a valid token personalizes the applied flag
		jobRoute := v1.Group("/jobs")
		{
			jobRoute.Use(middleware.OptionalAuth(s.DB))
			jobRoute.GET("", jobController.GetJobs)
			jobRoute.GET("/:id", jobController.GetJobByID)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB))

			needAuth.POST("/jobs/:id/apply", jobController.ApplyHandler)

			userRoute := needAuth.Group("/users")
			{
				userRoute.GET("applications", userController.GetApplications)
				userRoute.PATCH("profile", middleware.CheckRole(model.RoleJobseeker), middleware.SizeLimit(1<<20), userController.EditProfile)

				userRoute.Use(middleware.CheckRole(model.RoleEmployer))
				userRoute.GET("posted-jobs", userController.GetPostedJobs)
				userRoute.PATCH("company", middleware.SizeLimit(1<<20), userController.EditCompanyProfile)
			}

			// Job management endpoints (employer only)
			needEmployer := needAuth.Group("")
			{
				needEmployer.Use(middleware.CheckRole(model.RoleEmployer))
				needEmployer.POST("/jobs", jobController.CreateJobHandler)
				needEmployer.PATCH("/jobs/:id", jobController.EditJob)
				needEmployer.DELETE("/jobs/:id", jobController.DeleteJob)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
