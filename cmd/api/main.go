package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewscheduler/config"
	_ "interviewscheduler/docs"
	deliveryhttp "interviewscheduler/internal/delivery/http"
	"interviewscheduler/internal/delivery/http/controllers"
	"interviewscheduler/internal/delivery/http/middleware"
	"interviewscheduler/internal/repository/postgres"
	"interviewscheduler/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Interview Scheduler API
// @version 1.0
// @description Schedules interviews between employers and candidates, enforcing business hours, duration limits and candidate availability.
// @BasePath /api/v1
func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config error", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl, cfg.DBMaxOpenConns)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("schema setup failed", "err", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	employerRepo := postgres.NewEmployerRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	interviewRepo := postgres.NewInterviewRepository(db)

	validator := services.NewInterviewValidator(employerRepo, candidateRepo, interviewRepo)
	employerSvc := services.NewEmployerService(employerRepo, cfg.ContextTimeout)
	candidateSvc := services.NewCandidateService(candidateRepo, cfg.ContextTimeout)
	interviewSvc := services.NewInterviewService(interviewRepo, validator, logger, cfg.ContextTimeout)
	healthSvc := services.NewHealthService(db, employerRepo, candidateRepo, interviewRepo, cfg.ContextTimeout)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Employers:  controllers.NewEmployerController(logger, employerSvc),
		Candidates: controllers.NewCandidateController(logger, candidateSvc),
		Interviews: controllers.NewInterviewController(logger, interviewSvc),
		Health:     controllers.NewHealthController(logger, healthSvc),
	})
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("stopped")
}
