package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onlearn/internal/config"
	"onlearn/internal/handler"
	"onlearn/internal/logger"
	"onlearn/internal/repository"
	"onlearn/internal/seed"
	"onlearn/internal/service"
	"onlearn/internal/utils"
	"onlearn/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	cfg := config.Load()
	log := logger.New(cfg.AppName, cfg.Env)
	if envErr != nil {
		log.Debug("No .env file found, relying on environment variables")
	}
	for _, p := range cfg.Problems {
		log.WithError(p).Warn("Invalid environment value")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set in production")
	}

	gin.SetMode(cfg.GinMode)
	validation.Init()

	// --- Database Connection ---
	ctx := context.Background()
	dbPool, err := config.ConnectDB(ctx, cfg.DB, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool, log); err != nil {
		log.WithError(err).Fatal("Failed to auto-migrate database")
	}

	if cfg.SeedOnStartup {
		if err := seed.Run(ctx, dbPool, log); err != nil {
			log.WithError(err).Fatal("Failed to seed database")
		}
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.SessionSecret, utils.SessionTTL)
	cookie := utils.NewSessionCookie(cfg.Production)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	courseRepo := repository.NewCourseRepository(dbPool)
	enrollmentRepo := repository.NewEnrollmentRepository(dbPool)
	commentRepo := repository.NewCommentRepository(dbPool)

	// --- Setup Gin Router ---
	router := handler.NewRouter(handler.RouterOptions{
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins(),
		HTTPLog:     cfg.HTTPLogEnabled,
		Cookie:      cookie,
		Auth:        service.NewAuthService(userRepo, jwtUtil),
		Courses:     service.NewCourseService(courseRepo),
		Enrollments: service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo),
		Comments:    service.NewCommentService(commentRepo, courseRepo),
		Ping:        dbPool.Ping,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).WithField("production", cfg.Production).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exiting")
}
