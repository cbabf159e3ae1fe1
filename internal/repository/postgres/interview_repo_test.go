package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"interviewscheduler/internal/domain"
)

var interviewRowColumns = []string{
	"id", "employer_id", "candidate_id", "starts_at", "duration_minutes",
	"type", "status", "meeting_link", "location", "notes", "created_at",
}

func sampleInterview() *domain.Interview {
	return &domain.Interview{
		ID:              "iv-1",
		EmployerID:      "emp-1",
		CandidateID:     "cand-1",
		StartsAt:        time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Type:            domain.InterviewTypeOnline,
		Status:          domain.InterviewStatusScheduled,
		MeetingLink:     strPtr("https://meet.example.com/abc"),
		CreatedAt:       time.Date(2030, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestInterviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		mock  func(mock sqlmock.Sqlmock)
		errIs error
	}{
		{
			name: "success stores ends_at",
			mock: func(mock sqlmock.Sqlmock) {
				iv := sampleInterview()
				mock.ExpectExec(`INSERT INTO interviews`).
					WithArgs(iv.ID, iv.EmployerID, iv.CandidateID, iv.StartsAt, iv.StartsAt.Add(time.Hour), 60,
						"online", "scheduled", "https://meet.example.com/abc", nil, nil, iv.CreatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "exclusion violation returns ErrScheduleConflict",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO interviews`).
					WillReturnError(&pq.Error{Code: "23P01"})
			},
			errIs: domain.ErrScheduleConflict,
		},
		{
			name: "foreign key violation returns ErrInvalidInput",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO interviews`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			errIs: domain.ErrInvalidInput,
		},
		{
			name: "other errors pass through",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO interviews`).
					WillReturnError(sql.ErrConnDone)
			},
			errIs: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewInterviewRepository(db).Create(ctx, sampleInterview())
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInterviewRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	sp := time.FixedZone("BRT", -3*60*60)

	t.Run("success normalizes times to UTC", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM interviews WHERE id = \$1`).
			WithArgs("iv-1").
			WillReturnRows(sqlmock.NewRows(interviewRowColumns).AddRow(
				"iv-1", "emp-1", "cand-1", time.Date(2030, 3, 4, 7, 0, 0, 0, sp), 45,
				"in-person", "completed", nil, "Av. Paulista, 1000", "bring ID",
				time.Date(2030, 3, 1, 5, 0, 0, 0, sp),
			))

		got, err := NewInterviewRepository(db).GetByID(ctx, "iv-1")
		require.NoError(t, err)
		require.Equal(t, time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC), got.StartsAt)
		require.Equal(t, time.UTC, got.StartsAt.Location())
		require.Equal(t, 45, got.DurationMinutes)
		require.Equal(t, domain.InterviewTypeInPerson, got.Type)
		require.Equal(t, domain.InterviewStatusCompleted, got.Status)
		require.Nil(t, got.MeetingLink)
		require.Equal(t, "Av. Paulista, 1000", *got.Location)
		require.Equal(t, "bring ID", *got.Notes)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM interviews WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := NewInterviewRepository(db).GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown stored type is rejected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM interviews WHERE id = \$1`).
			WithArgs("iv-1").
			WillReturnRows(sqlmock.NewRows(interviewRowColumns).AddRow(
				"iv-1", "emp-1", "cand-1", time.Now(), 60,
				"video", "scheduled", nil, nil, nil, time.Now(),
			))

		_, err = NewInterviewRepository(db).GetByID(ctx, "iv-1")
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInterviewRepository_Lists(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
	row := func(id string) []driver.Value {
		return []driver.Value{id, "emp-1", "cand-1", start, 30, "phone", "scheduled", nil, nil, nil, start}
	}

	tests := []struct {
		name    string
		pattern string
		args    []any
		call    func(domain.InterviewRepository) ([]*domain.Interview, error)
	}{
		{
			name:    "all, newest first",
			pattern: `FROM interviews ORDER BY starts_at DESC`,
			call:    func(r domain.InterviewRepository) ([]*domain.Interview, error) { return r.List(ctx) },
		},
		{
			name:    "by employer",
			pattern: `FROM interviews WHERE employer_id = \$1 ORDER BY starts_at DESC`,
			args:    []any{"emp-1"},
			call: func(r domain.InterviewRepository) ([]*domain.Interview, error) {
				return r.ListByEmployer(ctx, "emp-1")
			},
		},
		{
			name:    "by candidate",
			pattern: `FROM interviews WHERE candidate_id = \$1 ORDER BY starts_at DESC`,
			args:    []any{"cand-1"},
			call: func(r domain.InterviewRepository) ([]*domain.Interview, error) {
				return r.ListByCandidate(ctx, "cand-1")
			},
		},
		{
			name:    "by status",
			pattern: `FROM interviews WHERE status = \$1`,
			args:    []any{"canceled"},
			call: func(r domain.InterviewRepository) ([]*domain.Interview, error) {
				return r.ListByStatus(ctx, domain.InterviewStatusCanceled)
			},
		},
		{
			name:    "by type",
			pattern: `FROM interviews WHERE type = \$1`,
			args:    []any{"phone"},
			call: func(r domain.InterviewRepository) ([]*domain.Interview, error) {
				return r.ListByType(ctx, domain.InterviewTypePhone)
			},
		},
		{
			name:    "between, ascending",
			pattern: `FROM interviews WHERE starts_at >= \$1 AND starts_at < \$2 ORDER BY starts_at ASC`,
			args:    []any{start, start.AddDate(0, 0, 1)},
			call: func(r domain.InterviewRepository) ([]*domain.Interview, error) {
				return r.ListBetween(ctx, start, start.AddDate(0, 0, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			q := mock.ExpectQuery(tt.pattern)
			if len(tt.args) > 0 {
				q = q.WithArgs(argsOf(tt.args)...)
			}
			q.WillReturnRows(sqlmock.NewRows(interviewRowColumns).AddRow(row("a")...).AddRow(row("b")...))

			got, err := tt.call(NewInterviewRepository(db))
			require.NoError(t, err)
			require.Len(t, got, 2)
			require.Equal(t, "a", got[0].ID)
			require.Equal(t, "b", got[1].ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func argsOf(vs []any) []driver.Value {
	out := make([]driver.Value, 0, len(vs))
	for _, v := range vs {
		out = append(out, equalArg{v})
	}
	return out
}

// equalArg compares times with time.Equal so location differences do not matter.
type equalArg struct{ want any }

func (a equalArg) Match(v driver.Value) bool {
	if t, ok := a.want.(time.Time); ok {
		got, ok := v.(time.Time)
		return ok && got.Equal(t)
	}
	return v == a.want
}

func TestInterviewRepository_ListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM interviews`).WillReturnRows(sqlmock.NewRows(interviewRowColumns))

	got, err := NewInterviewRepository(db).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestInterviewRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		mock  func(mock sqlmock.Sqlmock)
		errIs error
	}{
		{
			name: "success leaves created_at alone",
			mock: func(mock sqlmock.Sqlmock) {
				iv := sampleInterview()
				mock.ExpectExec(`UPDATE interviews\s+SET employer_id = \$1`).
					WithArgs(iv.EmployerID, iv.CandidateID, iv.StartsAt, iv.StartsAt.Add(time.Hour), 60,
						"online", "scheduled", "https://meet.example.com/abc", nil, nil, iv.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE interviews`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			errIs: domain.ErrNotFound,
		},
		{
			name: "overlap rejected by constraint",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE interviews`).WillReturnError(&pq.Error{Code: "23P01"})
			},
			errIs: domain.ErrScheduleConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewInterviewRepository(db).Update(ctx, sampleInterview())
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInterviewRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM interviews WHERE id = \$1`).
		WithArgs("iv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM interviews WHERE id = \$1`).
		WithArgs("iv-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewInterviewRepository(db)
	require.NoError(t, repo.Delete(context.Background(), "iv-1"))
	require.ErrorIs(t, repo.Delete(context.Background(), "iv-1"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewRepository_HasConflict(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2030, 3, 4, 10, 30, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	tests := []struct {
		name      string
		excludeID string
		mock      func(mock sqlmock.Sqlmock)
		want      bool
	}{
		{
			name: "overlap found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`candidate_id = \$1\s+AND status = 'scheduled'\s+AND starts_at < \$2\s+AND ends_at > \$3\s+\)`).
					WithArgs("cand-1", end, start).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			want: true,
		},
		{
			name:      "excluding the interview being edited",
			excludeID: "iv-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`AND id <> \$4`).
					WithArgs("cand-1", end, start, "iv-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewInterviewRepository(db).HasConflict(ctx, "cand-1", start, 30, tt.excludeID)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInterviewRepository_ExistsAndCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM interviews WHERE id = \$1\)`).
		WithArgs("iv-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM interviews`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	repo := NewInterviewRepository(db)
	ok, err := repo.Exists(context.Background(), "iv-1")
	require.NoError(t, err)
	require.True(t, ok)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
