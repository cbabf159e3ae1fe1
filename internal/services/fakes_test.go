package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"interviewscheduler/internal/domain"
)

var errStorage = errors.New("storage unavailable")

// fakeContactRepo is an in-memory ContactRepository for tests.
type fakeContactRepo[T any] struct {
	byID       map[string]*T
	fields     func(*T) (*string, *domain.Contact)
	interviews map[string]bool // ids that have interviews
	err        error           // if set, Exists returns this error
}

func newFakeEmployerRepo() *fakeContactRepo[domain.Employer] {
	return &fakeContactRepo[domain.Employer]{
		byID:       make(map[string]*domain.Employer),
		fields:     func(e *domain.Employer) (*string, *domain.Contact) { return &e.ID, &e.Contact },
		interviews: make(map[string]bool),
	}
}

func newFakeCandidateRepo() *fakeContactRepo[domain.Candidate] {
	return &fakeContactRepo[domain.Candidate]{
		byID:       make(map[string]*domain.Candidate),
		fields:     func(c *domain.Candidate) (*string, *domain.Contact) { return &c.ID, &c.Contact },
		interviews: make(map[string]bool),
	}
}

func (f *fakeContactRepo[T]) add(v *T) {
	id, _ := f.fields(v)
	f.byID[*id] = v
}

func (f *fakeContactRepo[T]) Create(ctx context.Context, v *T) error {
	f.add(v)
	return nil
}

func (f *fakeContactRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if v, ok := f.byID[id]; ok {
		return v, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContactRepo[T]) GetByEmail(ctx context.Context, email string) (*T, error) {
	for _, v := range f.byID {
		if _, c := f.fields(v); c.Email != nil && *c.Email == email {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContactRepo[T]) List(ctx context.Context, params domain.PaginationParams) ([]*T, int, error) {
	out := make([]*T, 0, len(f.byID))
	for _, v := range f.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		_, a := f.fields(out[i])
		_, b := f.fields(out[j])
		return a.Name < b.Name
	})
	total := len(out)
	if limit := params.Limit(); limit > 0 {
		start := min(params.Offset(), total)
		out = out[start:min(start+limit, total)]
	}
	return out, total, nil
}

func (f *fakeContactRepo[T]) Update(ctx context.Context, v *T) error {
	id, _ := f.fields(v)
	if _, ok := f.byID[*id]; !ok {
		return domain.ErrNotFound
	}
	f.byID[*id] = v
	return nil
}

func (f *fakeContactRepo[T]) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeContactRepo[T]) Exists(ctx context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeContactRepo[T]) HasInterviews(ctx context.Context, id string) (bool, error) {
	return f.interviews[id], nil
}

func (f *fakeContactRepo[T]) Count(ctx context.Context) (int, error) {
	return len(f.byID), nil
}

// fakeInterviewRepo is an in-memory InterviewRepository for tests.
type fakeInterviewRepo struct {
	byID          map[string]*domain.Interview
	conflictCalls int
	conflictErr   error // if set, HasConflict returns this error
	writeErr      error // if set, Create and Update return this error
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{byID: make(map[string]*domain.Interview)}
}

func (f *fakeInterviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	cp := *iv
	f.byID[iv.ID] = &cp
	return nil
}

func (f *fakeInterviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	if iv, ok := f.byID[id]; ok {
		cp := *iv
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInterviewRepo) filter(keep func(*domain.Interview) bool, asc bool) []*domain.Interview {
	out := make([]*domain.Interview, 0)
	for _, iv := range f.byID {
		if keep(iv) {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].StartsAt.After(out[j].StartsAt)
	})
	return out
}

func (f *fakeInterviewRepo) List(ctx context.Context) ([]*domain.Interview, error) {
	return f.filter(func(*domain.Interview) bool { return true }, false), nil
}

func (f *fakeInterviewRepo) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Interview, error) {
	return f.filter(func(iv *domain.Interview) bool { return iv.EmployerID == employerID }, false), nil
}

func (f *fakeInterviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Interview, error) {
	return f.filter(func(iv *domain.Interview) bool { return iv.CandidateID == candidateID }, false), nil
}

func (f *fakeInterviewRepo) ListByStatus(ctx context.Context, status domain.InterviewStatus) ([]*domain.Interview, error) {
	return f.filter(func(iv *domain.Interview) bool { return iv.Status == status }, false), nil
}

func (f *fakeInterviewRepo) ListByType(ctx context.Context, t domain.InterviewType) ([]*domain.Interview, error) {
	return f.filter(func(iv *domain.Interview) bool { return iv.Type == t }, false), nil
}

func (f *fakeInterviewRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Interview, error) {
	return f.filter(func(iv *domain.Interview) bool {
		return !iv.StartsAt.Before(from) && iv.StartsAt.Before(to)
	}, true), nil
}

func (f *fakeInterviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if _, ok := f.byID[iv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *iv
	f.byID[iv.ID] = &cp
	return nil
}

func (f *fakeInterviewRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeInterviewRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeInterviewRepo) HasConflict(ctx context.Context, candidateID string, start time.Time, durationMinutes int, excludeID string) (bool, error) {
	f.conflictCalls++
	if f.conflictErr != nil {
		return false, f.conflictErr
	}
	for _, iv := range f.byID {
		if iv.CandidateID != candidateID || iv.Status != domain.InterviewStatusScheduled {
			continue
		}
		if excludeID != "" && iv.ID == excludeID {
			continue
		}
		if domain.Overlaps(start, durationMinutes, iv.StartsAt, iv.DurationMinutes) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInterviewRepo) Count(ctx context.Context) (int, error) {
	return len(f.byID), nil
}
