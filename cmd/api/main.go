package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/Abh2004/Variphi-assignment/api/swagger"
	"github.com/Abh2004/Variphi-assignment/internal/handler"
	"github.com/Abh2004/Variphi-assignment/internal/repository"
	"github.com/Abh2004/Variphi-assignment/internal/service"
	"github.com/Abh2004/Variphi-assignment/pkg/config"
	"github.com/Abh2004/Variphi-assignment/pkg/database"
	"github.com/Abh2004/Variphi-assignment/pkg/logger"
	"github.com/Abh2004/Variphi-assignment/pkg/storage"
)

// @title Assignment Management API
// @version 1.0.0
// @description Role-based assignment workflow for students, tutors and admins
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	store, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	userService := service.NewUserService(userRepo, logr)
	subjectService := service.NewSubjectService(subjectRepo, validate, logr)
	assignmentService := service.NewAssignmentService(
		assignmentRepo,
		subjectRepo,
		userRepo,
		store,
		validate,
		logr,
		cfg.Assignments.StrictTransitions,
	)
	commentService := service.NewCommentService(commentRepo, assignmentRepo, validate, logr)
	metricsService := service.NewMetricsService()

	r := handler.NewRouter(handler.RouterDeps{
		Config:  cfg,
		Logger:  logr,
		Auth:    authService,
		Metrics: metricsService,

		AuthHandler:       handler.NewAuthHandler(authService, cfg.JWT),
		UserHandler:       handler.NewUserHandler(userService),
		SubjectHandler:    handler.NewSubjectHandler(subjectService),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService),
		CommentHandler:    handler.NewCommentHandler(commentService),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
