package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"interviewscheduler/internal/domain"
)

// contactService holds the rules shared by employers and candidates.
// fields exposes the id and contact data of a T.
type contactService[T any] struct {
	repo           domain.ContactRepository[T]
	fields         func(*T) (*string, *domain.Contact)
	contextTimeout time.Duration
}

// NewEmployerService creates an EmployerService backed by repo.
func NewEmployerService(repo domain.EmployerRepository, timeout time.Duration) domain.EmployerService {
	return &contactService[domain.Employer]{
		repo:           repo,
		fields:         func(e *domain.Employer) (*string, *domain.Contact) { return &e.ID, &e.Contact },
		contextTimeout: timeout,
	}
}

// NewCandidateService creates a CandidateService backed by repo.
func NewCandidateService(repo domain.CandidateRepository, timeout time.Duration) domain.CandidateService {
	return &contactService[domain.Candidate]{
		repo:           repo,
		fields:         func(c *domain.Candidate) (*string, *domain.Contact) { return &c.ID, &c.Contact },
		contextTimeout: timeout,
	}
}

func (s *contactService[T]) Create(ctx context.Context, v *T) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id, c := s.fields(v)
	c.Normalize()
	if err := s.ensureEmailFree(ctx, c.Email, ""); err != nil {
		return err
	}
	*id = uuid.NewString()
	return s.repo.Create(ctx, v)
}

func (s *contactService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *contactService[T]) List(ctx context.Context, params domain.PaginationParams) ([]*T, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx, params)
}

func (s *contactService[T]) Update(ctx context.Context, v *T) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id, c := s.fields(v)
	ok, err := s.repo.Exists(ctx, *id)
	if err != nil {
		return fmt.Errorf("check existence: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	c.Normalize()
	if err := s.ensureEmailFree(ctx, c.Email, *id); err != nil {
		return err
	}
	return s.repo.Update(ctx, v)
}

// Delete refuses to remove a contact that still has interviews.
func (s *contactService[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check existence: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	has, err := s.repo.HasInterviews(ctx, id)
	if err != nil {
		return fmt.Errorf("check interviews: %w", err)
	}
	if has {
		return domain.ErrHasInterviews
	}
	return s.repo.Delete(ctx, id)
}

// ensureEmailFree returns ErrDuplicateEmail when email belongs to a row other than selfID.
func (s *contactService[T]) ensureEmailFree(ctx context.Context, email *string, selfID string) error {
	if email == nil {
		return nil
	}
	existing, err := s.repo.GetByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup email: %w", err)
	}
	if id, _ := s.fields(existing); *id != selfID {
		return domain.ErrDuplicateEmail
	}
	return nil
}
