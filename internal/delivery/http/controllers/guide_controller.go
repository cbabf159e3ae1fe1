package controllers

import (
	"net/http"
	"time"

	"interviewscheduler/internal/delivery/http/helpers"
	"interviewscheduler/internal/domain"
)

// Guide describes how to call the interview endpoints.
type Guide struct {
	Rules    []string           `json:"rules"`
	Types    []EnumCode         `json:"types"`
	Statuses []EnumCode         `json:"statuses"`
	Examples []InterviewRequest `json:"examples"`
	EditFlow []string           `json:"edit_flow"`
}

// EnumCode pairs an enum name with its legacy integer code.
type EnumCode struct {
	Code     int    `json:"code"`
	Name     string `json:"name"`
	Requires string `json:"requires,omitempty"`
}

// GuideSuccessResponse is the envelope for GET /guide.
type GuideSuccessResponse struct {
	Data  Guide             `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UsageGuide godoc
// @Summary How to use the API
// @Description Scheduling rules, enum values and example request bodies.
// @Tags guide
// @Produce json
// @Success 200 {object} controllers.GuideSuccessResponse
// @Router /guide [get]
func UsageGuide(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, usageGuide())
}

func usageGuide() Guide {
	requires := map[domain.InterviewType]string{
		domain.InterviewTypeOnline:   "meeting_link (http or https URL)",
		domain.InterviewTypeInPerson: "location",
	}
	g := Guide{
		Rules: []string{
			"employer_id and candidate_id must reference existing records",
			"starts_at cannot be in the past",
			"duration_minutes must be between 15 and 480",
			"interviews start between 07:00 and 22:00 UTC",
			"a candidate cannot have two overlapping scheduled interviews",
			"type and status take the name or its code, as a number or a numeric string",
		},
		EditFlow: []string{
			"GET /api/v1/interviews/edit/{id}",
			"change the fields you need",
			"PUT /api/v1/interviews/{id} with the edited body",
		},
	}
	for i, t := range domain.InterviewTypes() {
		g.Types = append(g.Types, EnumCode{Code: i, Name: string(t), Requires: requires[t]})
	}
	for i, s := range domain.InterviewStatuses() {
		g.Statuses = append(g.Statuses, EnumCode{Code: i, Name: string(s)})
	}

	duration := 60
	example := time.Date(2030, 11, 15, 10, 0, 0, 0, time.UTC)
	g.Examples = []InterviewRequest{
		{
			EmployerID:      "3fa85f64-5717-4562-b3fc-2c963f66afa6",
			CandidateID:     "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			StartsAt:        example,
			DurationMinutes: &duration,
			Type:            domain.InterviewTypeOnline,
			MeetingLink:     ptr("https://meet.google.com/abc-defg-hij"),
		},
		{
			EmployerID:      "3fa85f64-5717-4562-b3fc-2c963f66afa6",
			CandidateID:     "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			StartsAt:        example,
			DurationMinutes: &duration,
			Type:            domain.InterviewTypeInPerson,
			Location:        ptr("Av. Paulista, 1000 - São Paulo"),
		},
	}
	return g
}

func ptr(s string) *string { return &s }
