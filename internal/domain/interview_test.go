package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		aStart   time.Time
		aMinutes int
		bStart   time.Time
		bMinutes int
		want     bool
	}{
		{"identical", base, 60, base, 60, true},
		{"b starts inside a", base, 60, base.Add(30 * time.Minute), 30, true},
		{"b contains a", base.Add(10 * time.Minute), 10, base, 60, true},
		{"b touches a end", base, 60, base.Add(60 * time.Minute), 30, false},
		{"b ends at a start", base, 60, base.Add(-30 * time.Minute), 30, false},
		{"disjoint", base, 30, base.Add(2 * time.Hour), 30, false},
		{"one minute overlap", base, 60, base.Add(59 * time.Minute), 15, true},
		{"zero length inside", base, 60, base.Add(30 * time.Minute), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aMinutes, tt.bStart, tt.bMinutes)
			require.Equal(t, tt.want, got)
			// symmetric
			require.Equal(t, got, Overlaps(tt.bStart, tt.bMinutes, tt.aStart, tt.aMinutes))
		})
	}
}

func TestInterview_OverlapsAndEndsAt(t *testing.T) {
	a := &Interview{StartsAt: time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC), DurationMinutes: 60}
	b := &Interview{StartsAt: time.Date(2025, 11, 15, 11, 0, 0, 0, time.UTC), DurationMinutes: 30}

	assert.Equal(t, b.StartsAt, a.EndsAt())
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))

	b.StartsAt = b.StartsAt.Add(-time.Minute)
	assert.True(t, a.Overlaps(b))
}

func TestInterviewType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    InterviewType
		wantErr bool
	}{
		{"canonical name", `"online"`, InterviewTypeOnline, false},
		{"mixed case", `" In-Person "`, InterviewTypeInPerson, false},
		{"legacy code 2", `2`, InterviewTypePhone, false},
		{"legacy code 0", `0`, InterviewTypeOnline, false},
		{"legacy code as string", `"1"`, InterviewTypeInPerson, false},
		{"unknown code as string kept for validation", `" 9 "`, InterviewType("9"), false},
		{"unknown name kept for validation", `"video"`, InterviewType("video"), false},
		{"unknown code kept for validation", `7`, InterviewType("7"), false},
		{"null", `null`, InterviewType(""), false},
		{"bool rejected", `true`, InterviewType(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Type InterviewType `json:"type"`
			}
			err := json.Unmarshal([]byte(`{"type":`+tt.body+`}`), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Type)
		})
	}
}

func TestInterviewStatus_UnmarshalJSON(t *testing.T) {
	var got struct {
		Status InterviewStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":1}`), &got))
	require.Equal(t, InterviewStatusCanceled, got.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"2"}`), &got))
	require.Equal(t, InterviewStatusCompleted, got.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"COMPLETED"}`), &got))
	require.Equal(t, InterviewStatusCompleted, got.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"status":-1}`), &got))
	require.False(t, got.Status.IsValid())
}

func TestEnums_StorageBoundary(t *testing.T) {
	v, err := InterviewTypeInPerson.Value()
	require.NoError(t, err)
	require.Equal(t, "in-person", v)

	_, err = InterviewType("video").Value()
	require.Error(t, err)

	_, err = InterviewStatus("").Value()
	require.Error(t, err)

	var typ InterviewType
	require.NoError(t, typ.Scan([]byte("phone")))
	require.Equal(t, InterviewTypePhone, typ)
	require.Error(t, typ.Scan("presencial"))
	require.Error(t, typ.Scan(int64(1)))

	var st InterviewStatus
	require.NoError(t, st.Scan("canceled"))
	require.Equal(t, InterviewStatusCanceled, st)
	require.Error(t, st.Scan("agendada"))
}

func TestParseEnums(t *testing.T) {
	typ, err := ParseInterviewType(" Phone ")
	require.NoError(t, err)
	require.Equal(t, InterviewTypePhone, typ)
	_, err = ParseInterviewType("telefone")
	require.Error(t, err)

	st, err := ParseInterviewStatus("scheduled")
	require.NoError(t, err)
	require.Equal(t, InterviewStatusScheduled, st)
	_, err = ParseInterviewStatus("done")
	require.Error(t, err)

	require.Len(t, InterviewTypes(), 3)
	require.Len(t, InterviewStatuses(), 3)
}

func TestContact_Normalize(t *testing.T) {
	email := "  Ana@Example.COM "
	blank := "   "
	c := Contact{Name: "  Ana Souza ", Email: &email, Phone: &blank}
	c.Normalize()

	require.Equal(t, "Ana Souza", c.Name)
	require.NotNil(t, c.Email)
	require.Equal(t, "ana@example.com", *c.Email)
	require.Nil(t, c.Phone)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(KindScheduleConflict, "conflict")
	require.Equal(t, "conflict", err.Error())
	require.Equal(t, KindScheduleConflict, err.Kind)
}
