package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewscheduler/internal/domain"
)

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: interviewID, want: interviewID, wantOK: true},
		{in: "urn:uuid:" + interviewID, want: interviewID, wantOK: true},
		{in: "{" + interviewID + "}", want: interviewID, wantOK: true},
		{in: "9B2F6A1E-52C4-4D0E-8F39-0C1B2A3D4E5F", want: interviewID, wantOK: true},
		{in: "9b2f6a1e52c44d0e8f390c1b2a3d4e5f", want: interviewID, wantOK: true},
		{in: "not-a-uuid"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := canonicalID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathID_PassesCanonicalIDToService(t *testing.T) {
	fake := &fakeInterviewService{interview: &domain.Interview{ID: interviewID}}
	ctrl := NewInterviewController(testLogger, fake)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /interviews/{id}", ctrl.Get)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://test/interviews/urn:uuid:"+interviewID, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, interviewID, fake.lastID)
}
