package domain

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// InterviewType is how an interview takes place. Stored as its lowercase name.
type InterviewType string

const (
	InterviewTypeOnline   InterviewType = "online"
	InterviewTypeInPerson InterviewType = "in-person"
	InterviewTypePhone    InterviewType = "phone"
)

// The order matches the legacy integer codes 0, 1, 2.
var interviewTypeNames = []string{
	string(InterviewTypeOnline),
	string(InterviewTypeInPerson),
	string(InterviewTypePhone),
}

// InterviewTypes returns every defined type in declaration order.
func InterviewTypes() []InterviewType {
	return []InterviewType{InterviewTypeOnline, InterviewTypeInPerson, InterviewTypePhone}
}

// ParseInterviewType converts a raw string to an InterviewType, returning an
// error for unknown values.
func ParseInterviewType(s string) (InterviewType, error) {
	t := InterviewType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown interview type %q", s)
	}
	return t, nil
}

// IsValid reports whether t is one of the defined types.
func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewTypeOnline, InterviewTypeInPerson, InterviewTypePhone:
		return true
	}
	return false
}

func (t *InterviewType) UnmarshalJSON(b []byte) error {
	s, err := decodeEnum(b, interviewTypeNames)
	if err != nil {
		return fmt.Errorf("interview type: %w", err)
	}
	*t = InterviewType(s)
	return nil
}

// Value implements driver.Valuer. Invalid types never reach storage.
func (t InterviewType) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown interview type %q", string(t))
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *InterviewType) Scan(src any) error {
	s, err := scanEnum(src, "interview type", interviewTypeNames)
	if err != nil {
		return err
	}
	*t = InterviewType(s)
	return nil
}

// InterviewStatus is the lifecycle state of an interview. Stored as its lowercase name.
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCanceled  InterviewStatus = "canceled"
	InterviewStatusCompleted InterviewStatus = "completed"
)

var interviewStatusNames = []string{
	string(InterviewStatusScheduled),
	string(InterviewStatusCanceled),
	string(InterviewStatusCompleted),
}

// InterviewStatuses returns every defined status in declaration order.
func InterviewStatuses() []InterviewStatus {
	return []InterviewStatus{InterviewStatusScheduled, InterviewStatusCanceled, InterviewStatusCompleted}
}

// ParseInterviewStatus converts a raw string to an InterviewStatus, returning
// an error for unknown values.
func ParseInterviewStatus(s string) (InterviewStatus, error) {
	st := InterviewStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("unknown interview status %q", s)
	}
	return st, nil
}

// IsValid reports whether s is one of the defined statuses.
func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCanceled, InterviewStatusCompleted:
		return true
	}
	return false
}

func (s *InterviewStatus) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, interviewStatusNames)
	if err != nil {
		return fmt.Errorf("interview status: %w", err)
	}
	*s = InterviewStatus(v)
	return nil
}

// Value implements driver.Valuer. Invalid statuses never reach storage.
func (s InterviewStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown interview status %q", string(s))
	}
	return string(s), nil
}

// Scan implements sql.Scanner.
func (s *InterviewStatus) Scan(src any) error {
	v, err := scanEnum(src, "interview status", interviewStatusNames)
	if err != nil {
		return err
	}
	*s = InterviewStatus(v)
	return nil
}

// Interview is a meeting between one employer and one candidate.
// swagger:model Interview
type Interview struct {
	ID              string          `json:"id"`
	EmployerID      string          `json:"employer_id"`
	CandidateID     string          `json:"candidate_id"`
	StartsAt        time.Time       `json:"starts_at"`
	DurationMinutes int             `json:"duration_minutes"`
	Type            InterviewType   `json:"type"`
	Status          InterviewStatus `json:"status"`
	MeetingLink     *string         `json:"meeting_link"`
	Location        *string         `json:"location"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// EndsAt returns the exclusive end of the interview interval.
func (i *Interview) EndsAt() time.Time {
	return i.StartsAt.Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// Overlaps reports whether i and o occupy intersecting time intervals.
func (i *Interview) Overlaps(o *Interview) bool {
	return Overlaps(i.StartsAt, i.DurationMinutes, o.StartsAt, o.DurationMinutes)
}

// Overlaps reports whether [aStart, aStart+aMinutes) and [bStart, bStart+bMinutes)
// intersect. Intervals that only touch do not overlap.
func Overlaps(aStart time.Time, aMinutes int, bStart time.Time, bMinutes int) bool {
	aEnd := aStart.Add(time.Duration(aMinutes) * time.Minute)
	bEnd := bStart.Add(time.Duration(bMinutes) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// InterviewRepository defines the interface for interview storage.
type InterviewRepository interface {
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id string) (*Interview, error)
	// List returns every interview, most recent start first.
	List(ctx context.Context) ([]*Interview, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*Interview, error)
	ListByStatus(ctx context.Context, status InterviewStatus) ([]*Interview, error)
	ListByType(ctx context.Context, t InterviewType) ([]*Interview, error)
	// ListBetween returns interviews starting in [from, to), earliest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]*Interview, error)
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// HasConflict reports whether a scheduled interview for the candidate
	// overlaps [start, start+durationMinutes). An empty excludeID excludes nothing.
	HasConflict(ctx context.Context, candidateID string, start time.Time, durationMinutes int, excludeID string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// InterviewService defines the business logic for interviews.
type InterviewService interface {
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id string) (*Interview, error)
	List(ctx context.Context) ([]*Interview, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*Interview, error)
	ListByStatus(ctx context.Context, status InterviewStatus) ([]*Interview, error)
	ListByType(ctx context.Context, t InterviewType) ([]*Interview, error)
	// Agenda returns the interviews on the UTC calendar day containing day.
	Agenda(ctx context.Context, day time.Time) ([]*Interview, error)
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id string) error
	Dashboard(ctx context.Context) (*Dashboard, error)
}
