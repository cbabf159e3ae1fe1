package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"interviewscheduler/internal/domain"
)

const (
	minDurationMinutes = 15
	maxDurationMinutes = 480
	pastTolerance      = 5 * time.Minute
	businessHourStart  = 7
	businessHourEnd    = 22
)

type existenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type conflictChecker interface {
	HasConflict(ctx context.Context, candidateID string, start time.Time, durationMinutes int, excludeID string) (bool, error)
}

// InterviewValidator applies the scheduling rules to an interview before it is
// persisted. It only reads from its collaborators.
type InterviewValidator struct {
	employers  existenceChecker
	candidates existenceChecker
	interviews conflictChecker
	now        func() time.Time
}

// NewInterviewValidator returns a validator using the wall clock.
func NewInterviewValidator(employers domain.EmployerRepository, candidates domain.CandidateRepository, interviews domain.InterviewRepository) *InterviewValidator {
	return &InterviewValidator{
		employers:  employers,
		candidates: candidates,
		interviews: interviews,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for the past-schedule check.
func (v *InterviewValidator) WithClock(now func() time.Time) *InterviewValidator {
	v.now = now
	return v
}

// Validate returns nil when iv passes every rule, a *domain.ValidationError
// for the first rule it breaks, or any other error when a lookup fails.
// On update the interview's own id is ignored by the conflict check.
func (v *InterviewValidator) Validate(ctx context.Context, iv *domain.Interview, isUpdate bool) error {
	if !iv.Type.IsValid() {
		return domain.NewValidationError(domain.KindInvalidEnumValue, fmt.Sprintf("invalid interview type %q", string(iv.Type)))
	}
	if !iv.Status.IsValid() {
		return domain.NewValidationError(domain.KindInvalidEnumValue, fmt.Sprintf("invalid interview status %q", string(iv.Status)))
	}

	ok, err := v.employers.Exists(ctx, iv.EmployerID)
	if err != nil {
		return fmt.Errorf("check employer: %w", err)
	}
	if !ok {
		return domain.NewValidationError(domain.KindReferenceNotFound, "employer not found")
	}
	ok, err = v.candidates.Exists(ctx, iv.CandidateID)
	if err != nil {
		return fmt.Errorf("check candidate: %w", err)
	}
	if !ok {
		return domain.NewValidationError(domain.KindReferenceNotFound, "candidate not found")
	}

	if iv.StartsAt.Before(v.now().Add(-pastTolerance)) {
		return domain.NewValidationError(domain.KindPastSchedule, "interviews cannot be scheduled in the past")
	}

	if iv.DurationMinutes < minDurationMinutes {
		return domain.NewValidationError(domain.KindDurationOutOfRange, fmt.Sprintf("minimum duration is %d minutes", minDurationMinutes))
	}
	if iv.DurationMinutes > maxDurationMinutes {
		return domain.NewValidationError(domain.KindDurationOutOfRange, fmt.Sprintf("maximum duration is %d minutes (8 hours)", maxDurationMinutes))
	}

	if err := checkTypeFields(iv); err != nil {
		return err
	}

	excludeID := ""
	if isUpdate {
		excludeID = iv.ID
	}
	conflict, err := v.interviews.HasConflict(ctx, iv.CandidateID, iv.StartsAt, iv.DurationMinutes, excludeID)
	if err != nil {
		return fmt.Errorf("check schedule conflict: %w", err)
	}
	if conflict {
		return domain.NewValidationError(domain.KindScheduleConflict, "candidate already has an interview scheduled at this time")
	}

	// Business hours are evaluated in UTC.
	if h := iv.StartsAt.UTC().Hour(); h < businessHourStart || h >= businessHourEnd {
		return domain.NewValidationError(domain.KindOutsideBusinessHours,
			fmt.Sprintf("interviews must start between %02d:00 and %02d:00", businessHourStart, businessHourEnd))
	}
	return nil
}

func checkTypeFields(iv *domain.Interview) error {
	switch iv.Type {
	case domain.InterviewTypeOnline:
		if isBlank(iv.MeetingLink) {
			return domain.NewValidationError(domain.KindMissingRequiredField, "meeting link is required for online interviews")
		}
		if !isHTTPURL(strings.TrimSpace(*iv.MeetingLink)) {
			return domain.NewValidationError(domain.KindInvalidLink, "meeting link must be an absolute http or https URL")
		}
	case domain.InterviewTypeInPerson:
		if isBlank(iv.Location) {
			return domain.NewValidationError(domain.KindMissingRequiredField, "location is required for in-person interviews")
		}
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
