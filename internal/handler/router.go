package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Abh2004/Variphi-assignment/internal/middleware"
	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/service"
	"github.com/Abh2004/Variphi-assignment/pkg/config"
	"github.com/Abh2004/Variphi-assignment/pkg/logger"
	corsmiddleware "github.com/Abh2004/Variphi-assignment/pkg/middleware/cors"
	reqidmiddleware "github.com/Abh2004/Variphi-assignment/pkg/middleware/requestid"
)

// RouterDeps carries everything route assembly needs.
type RouterDeps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Auth    *service.AuthService
	Metrics *service.MetricsService

	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	SubjectHandler    *SubjectHandler
	AssignmentHandler *AssignmentHandler
	CommentHandler    *CommentHandler
}

// NewRouter assembles the gin engine: global middleware, public endpoints and
// the JWT-protected route groups.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Assignment Management API"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.Static("/uploads", deps.Config.Uploads.Dir)

	r.POST("/register", deps.AuthHandler.Register)
	r.POST("/token", deps.AuthHandler.Token)
	r.POST("/logout", deps.AuthHandler.Logout)

	authed := r.Group("", middleware.JWT(deps.Auth))

	users := authed.Group("/users")
	{
		users.GET("/me", deps.UserHandler.Me)
		users.GET("/tutors/list", middleware.RequireRoles(), deps.UserHandler.ListTutors)
		users.GET("", middleware.RequireRoles(), deps.UserHandler.List)
		users.GET("/:id", deps.UserHandler.Get)
	}

	subjects := authed.Group("/subjects")
	{
		subjects.GET("", deps.SubjectHandler.List)
		subjects.GET("/:id", deps.SubjectHandler.Get)
		subjects.POST("", middleware.RequireRoles(), deps.SubjectHandler.Create)
		subjects.PUT("/:id", middleware.RequireRoles(), deps.SubjectHandler.Update)
		subjects.DELETE("/:id", middleware.RequireRoles(), deps.SubjectHandler.Delete)
	}

	assignments := authed.Group("/assignments")
	{
		assignments.POST("", middleware.RequireRoles(models.RoleStudent), deps.AssignmentHandler.Create)
		assignments.GET("", deps.AssignmentHandler.List)
		assignments.GET("/:id", deps.AssignmentHandler.Get)
		assignments.PUT("/:id/assign", middleware.RequireRoles(), deps.AssignmentHandler.Assign)
		assignments.PUT("/:id/status", middleware.RequireRoles(models.RoleTutor), deps.AssignmentHandler.UpdateStatus)
		assignments.PUT("/:id/solution", middleware.RequireRoles(models.RoleTutor), deps.AssignmentHandler.UploadSolution)
	}

	comments := authed.Group("/comments")
	{
		comments.POST("", deps.CommentHandler.Create)
		comments.GET("/assignment/:assignment_id", deps.CommentHandler.ListByAssignment)
		comments.DELETE("/:id", deps.CommentHandler.Delete)
	}

	return r
}
