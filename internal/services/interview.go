package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"interviewscheduler/internal/domain"
)

type interviewService struct {
	repo           domain.InterviewRepository
	validator      *InterviewValidator
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewInterviewService creates an InterviewService. Every write passes through validator.
func NewInterviewService(repo domain.InterviewRepository, validator *InterviewValidator, logger *slog.Logger, timeout time.Duration) domain.InterviewService {
	return &interviewService{
		repo:           repo,
		validator:      validator,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Create schedules a new interview. New interviews always start as scheduled.
func (s *interviewService) Create(ctx context.Context, iv *domain.Interview) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	iv.ID = uuid.NewString()
	iv.Status = domain.InterviewStatusScheduled
	iv.StartsAt = iv.StartsAt.UTC()
	iv.CreatedAt = s.validator.now().UTC()

	if err := s.validator.Validate(ctx, iv, false); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, iv); err != nil {
		return translateWriteError(err)
	}
	s.logger.InfoContext(ctx, "interview created",
		"id", iv.ID, "candidate_id", iv.CandidateID, "employer_id", iv.EmployerID, "starts_at", iv.StartsAt)
	return nil
}

func (s *interviewService) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *interviewService) List(ctx context.Context) ([]*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *interviewService) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByEmployer(ctx, employerID)
}

func (s *interviewService) ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *interviewService) ListByStatus(ctx context.Context, status domain.InterviewStatus) ([]*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByStatus(ctx, status)
}

func (s *interviewService) ListByType(ctx context.Context, t domain.InterviewType) ([]*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListByType(ctx, t)
}

func (s *interviewService) Agenda(ctx context.Context, day time.Time) ([]*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return s.repo.ListBetween(ctx, start, start.Add(24*time.Hour))
}

// Update replaces an existing interview. CreatedAt always keeps its stored value
// and an empty Status keeps the stored status.
func (s *interviewService) Update(ctx context.Context, iv *domain.Interview) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, iv.ID)
	if err != nil {
		return err
	}
	iv.CreatedAt = current.CreatedAt
	if iv.Status == "" {
		iv.Status = current.Status
	}
	iv.StartsAt = iv.StartsAt.UTC()

	if err := s.validator.Validate(ctx, iv, true); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, iv); err != nil {
		return translateWriteError(err)
	}
	s.logger.InfoContext(ctx, "interview updated", "id", iv.ID, "status", iv.Status)
	return nil
}

func (s *interviewService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "interview deleted", "id", id)
	return nil
}

// Dashboard is recomputed from the full collection on every call.
func (s *interviewService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return BuildDashboard(all, s.validator.now()), nil
}

// translateWriteError turns constraint violations that slipped past validation
// into the validation failures the caller would have seen without the race.
func translateWriteError(err error) error {
	switch {
	case errors.Is(err, domain.ErrScheduleConflict):
		return domain.NewValidationError(domain.KindScheduleConflict, "candidate already has an interview scheduled at this time")
	case errors.Is(err, domain.ErrInvalidInput):
		return domain.NewValidationError(domain.KindReferenceNotFound, "employer or candidate not found")
	}
	return err
}
