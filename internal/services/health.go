package services

import (
	"context"
	"fmt"
	"time"

	"interviewscheduler/internal/domain"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type counter interface {
	Count(ctx context.Context) (int, error)
}

type healthService struct {
	db             pinger
	employers      counter
	candidates     counter
	interviews     counter
	now            func() time.Time
	contextTimeout time.Duration
}

// NewHealthService creates a HealthService. db is usually a *sql.DB.
func NewHealthService(db pinger, employers domain.EmployerRepository, candidates domain.CandidateRepository, interviews domain.InterviewRepository, timeout time.Duration) domain.HealthService {
	return &healthService{
		db:             db,
		employers:      employers,
		candidates:     candidates,
		interviews:     interviews,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

// Check pings the database and counts rows per table. A failed ping is
// reported in the result and also returned as an error.
func (s *healthService) Check(ctx context.Context) (*domain.HealthReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	report := &domain.HealthReport{Database: "postgres", Timestamp: s.now().UTC()}
	if err := s.db.PingContext(ctx); err != nil {
		return report, fmt.Errorf("ping database: %w", err)
	}
	report.Connected = true

	var err error
	if report.Employers, err = s.employers.Count(ctx); err != nil {
		return report, fmt.Errorf("count employers: %w", err)
	}
	if report.Candidates, err = s.candidates.Count(ctx); err != nil {
		return report, fmt.Errorf("count candidates: %w", err)
	}
	if report.Interviews, err = s.interviews.Count(ctx); err != nil {
		return report, fmt.Errorf("count interviews: %w", err)
	}
	return report, nil
}
