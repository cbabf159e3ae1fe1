package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"interviewscheduler/internal/delivery/http/helpers"
	"interviewscheduler/internal/domain"
)

const (
	maxLinkLength     = 500
	maxLocationLength = 500
	maxNotesLength    = 1000

	defaultDurationMinutes = 60
	dateLayout             = "2006-01-02"
	dateTimeLayout         = "2006-01-02 15:04"
	timeLayout             = "15:04"
)

// defaultSimpleTime is the start time used by POST /interviews/simple when none is given.
var defaultSimpleTime = 9 * time.Hour

// InterviewRequest is the request body for POST /interviews and PUT /interviews/{id}.
// Type and status accept names or the legacy codes 0, 1, 2. Status is ignored on
// create and kept unchanged on update when omitted. Duration defaults to 60 minutes.
type InterviewRequest struct {
	EmployerID      string                 `json:"employer_id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	CandidateID     string                 `json:"candidate_id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	StartsAt        time.Time              `json:"starts_at" example:"2030-11-15T10:00:00Z"`
	DurationMinutes *int                   `json:"duration_minutes" example:"60"`
	Type            domain.InterviewType   `json:"type" swaggertype:"string" enums:"online,in-person,phone"`
	Status          domain.InterviewStatus `json:"status,omitempty" swaggertype:"string" enums:"scheduled,canceled,completed"`
	MeetingLink     *string                `json:"meeting_link" example:"https://meet.google.com/abc-defg-hij"`
	Location        *string                `json:"location"`
	Notes           *string                `json:"notes"`
}

// Validate implements Validator. Business rules are checked by the service.
func (req InterviewRequest) Validate() []string {
	errs := validateParties(req.EmployerID, req.CandidateID)
	if req.StartsAt.IsZero() {
		errs = append(errs, "starts_at is required")
	}
	return append(errs, validateOptionalText(req.MeetingLink, req.Location, req.Notes)...)
}

func (req InterviewRequest) interview(id string) *domain.Interview {
	duration := defaultDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	employerID, _ := canonicalID(req.EmployerID)
	candidateID, _ := canonicalID(req.CandidateID)
	return &domain.Interview{
		ID:              id,
		EmployerID:      employerID,
		CandidateID:     candidateID,
		StartsAt:        req.StartsAt,
		DurationMinutes: duration,
		Type:            req.Type,
		Status:          req.Status,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
	}
}

// SimpleInterviewRequest is the request body for POST /interviews/simple.
// Date is "YYYY-MM-DD" or "YYYY-MM-DD HH:MM"; Time ("HH:MM") overrides the
// time of day, which otherwise defaults to 09:00 UTC.
type SimpleInterviewRequest struct {
	EmployerID      string               `json:"employer_id"`
	CandidateID     string               `json:"candidate_id"`
	Date            string               `json:"date" example:"2030-11-15"`
	Time            *string              `json:"time" example:"14:30"`
	DurationMinutes *int                 `json:"duration_minutes" example:"60"`
	Type            domain.InterviewType `json:"type" swaggertype:"string" enums:"online,in-person,phone"`
	MeetingLink     *string              `json:"meeting_link"`
	Location        *string              `json:"location"`
	Notes           *string              `json:"notes"`
}

// Validate implements Validator.
func (req SimpleInterviewRequest) Validate() []string {
	errs := validateParties(req.EmployerID, req.CandidateID)
	if _, err := req.startsAt(); err != nil {
		errs = append(errs, err.Error())
	}
	return append(errs, validateOptionalText(req.MeetingLink, req.Location, req.Notes)...)
}

func (req SimpleInterviewRequest) startsAt() (time.Time, error) {
	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	var start time.Time
	if t, err := time.ParseInLocation(dateTimeLayout, raw, time.UTC); err == nil {
		start = t
	} else if t, err := time.ParseInLocation(dateLayout, raw, time.UTC); err == nil {
		start = t.Add(defaultSimpleTime)
	} else {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD or YYYY-MM-DD HH:MM")
	}
	if req.Time != nil && strings.TrimSpace(*req.Time) != "" {
		tod, err := time.Parse(timeLayout, strings.TrimSpace(*req.Time))
		if err != nil {
			return time.Time{}, fmt.Errorf("time must be HH:MM")
		}
		y, m, d := start.Date()
		start = time.Date(y, m, d, tod.Hour(), tod.Minute(), 0, 0, time.UTC)
	}
	return start, nil
}

func validateParties(employerID, candidateID string) []string {
	var errs []string
	if _, ok := canonicalID(employerID); !ok {
		errs = append(errs, "employer_id must be a UUID")
	}
	if _, ok := canonicalID(candidateID); !ok {
		errs = append(errs, "candidate_id must be a UUID")
	}
	return errs
}

func validateOptionalText(link, location, notes *string) []string {
	var errs []string
	if link != nil && utf8.RuneCountInString(*link) > maxLinkLength {
		errs = append(errs, fmt.Sprintf("meeting_link must be at most %d characters", maxLinkLength))
	}
	if location != nil && utf8.RuneCountInString(*location) > maxLocationLength {
		errs = append(errs, fmt.Sprintf("location must be at most %d characters", maxLocationLength))
	}
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotesLength {
		errs = append(errs, fmt.Sprintf("notes must be at most %d characters", maxNotesLength))
	}
	return errs
}

// InterviewSuccessResponse is the success envelope for single-interview responses.
type InterviewSuccessResponse struct {
	Data  *domain.Interview `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// InterviewListSuccessResponse is the success envelope for interview lists.
type InterviewListSuccessResponse struct {
	Data  []*domain.Interview `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// EditInterviewSuccessResponse is the success envelope for GET /interviews/edit/{id}.
type EditInterviewSuccessResponse struct {
	Data  InterviewRequest  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DashboardSuccessResponse is the success envelope for GET /interviews/dashboard.
type DashboardSuccessResponse struct {
	Data  *domain.Dashboard `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type InterviewController struct {
	Logger  *slog.Logger
	Service domain.InterviewService
}

func NewInterviewController(logger *slog.Logger, svc domain.InterviewService) *InterviewController {
	return &InterviewController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List interviews
// @Description Returns every interview, most recent start first.
// @Tags interviews
// @Produce json
// @Success 200 {object} controllers.InterviewListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /interviews [get]
func (c *InterviewController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context())
	c.writeList(w, r, list, err)
}

// Get godoc
// @Summary Get an interview by ID
// @Tags interviews
// @Produce json
// @Param id path string true "Interview ID (UUID)"
// @Success 200 {object} controllers.InterviewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /interviews/{id} [get]
func (c *InterviewController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	iv, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "interview not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, iv)
}

// ListByEmployer godoc
// @Summary List an employer's interviews
// @Tags interviews
// @Produce json
// @Param id path string true "Employer ID (UUID)"
// @Success 200 {object} controllers.InterviewListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /interviews/employer/{id} [get]
func (c *InterviewController) ListByEmployer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := c.Service.ListByEmployer(r.Context(), id)
	c.writeList(w, r, list, err)
}

// ListByCandidate godoc
// @Summary List a candidate's interviews
// @Tags interviews
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Success 200 {object} controllers.InterviewListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /interviews/candidate/{id} [get]
func (c *InterviewController) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := c.Service.ListByCandidate(r.Context(), id)
	c.writeList(w, r, list, err)
}

// ListByStatus godoc
// @Summary List interviews in a status
// @Tags interviews
// @Produce json
// @Param status path string true "scheduled, canceled, completed (or 0, 1, 2)"
// @Success 200 {object} controllers.InterviewListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /interviews/status/{status} [get]
func (c *InterviewController) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := parseStatusParam(r.PathValue("status"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	list, err := c.Service.ListByStatus(r.Context(), status)
	c.writeList(w, r, list, err)
}

// ListByType godoc
// @Summary List interviews of a type
// @Tags interviews
// @Produce json
// @Param type path string true "online, in-person, phone (or 0, 1, 2)"
// @Success 200 {object} controllers.InterviewListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /interviews/type/{type} [get]
func (c *InterviewController) ListByType(w http.ResponseWriter, r *http.Request) {
	t, err := parseTypeParam(r.PathValue("type"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	list, err := c.Service.ListByType(r.Context(), t)
	c.writeList(w, r, list, err)
}

// Agenda godoc
// @Summary Interviews on a day
// @Description Returns interviews starting on the given UTC calendar day, earliest first.
// @Tags interviews
// @Produce json
// @Param date path string true "Day as YYYY-MM-DD"
// @Success 200 {object} controllers.InterviewListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /interviews/agenda/{date} [get]
func (c *InterviewController) Agenda(w http.ResponseWriter, r *http.Request) {
	day, err := time.ParseInLocation(dateLayout, r.PathValue("date"), time.UTC)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be YYYY-MM-DD")
		return
	}
	list, err := c.Service.Agenda(r.Context(), day)
	c.writeList(w, r, list, err)
}

// Dashboard godoc
// @Summary Interview statistics
// @Description Totals by status and type, average duration per type, and the next five scheduled interviews.
// @Tags interviews
// @Produce json
// @Success 200 {object} controllers.DashboardSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /interviews/dashboard [get]
func (c *InterviewController) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := c.Service.Dashboard(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, d)
}

// Create godoc
// @Summary Schedule an interview
// @Description Validates references, time window, duration, type-specific fields and candidate availability. New interviews are always scheduled.
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body InterviewRequest true "Interview data"
// @Success 201 {object} controllers.InterviewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed (see error.kind)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /interviews [post]
func (c *InterviewController) Create(w http.ResponseWriter, r *http.Request) {
	var req InterviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.create(w, r, req.interview(""))
}

// CreateSimple godoc
// @Summary Schedule an interview from a date
// @Description Like POST /interviews but takes a date and optional time of day (default 09:00 UTC).
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body SimpleInterviewRequest true "Interview data"
// @Success 201 {object} controllers.InterviewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed (see error.kind)"
// @Router /interviews/simple [post]
func (c *InterviewController) CreateSimple(w http.ResponseWriter, r *http.Request) {
	var req SimpleInterviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	start, _ := req.startsAt()
	full := InterviewRequest{
		EmployerID:      req.EmployerID,
		CandidateID:     req.CandidateID,
		StartsAt:        start,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
	}
	c.create(w, r, full.interview(""))
}

func (c *InterviewController) create(w http.ResponseWriter, r *http.Request, iv *domain.Interview) {
	if err := c.Service.Create(r.Context(), iv); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, iv)
}

// Edit godoc
// @Summary Current values of an interview in request form
// @Description Returns the interview shaped as the PUT /interviews/{id} body so it can be edited and sent back.
// @Tags interviews
// @Produce json
// @Param id path string true "Interview ID (UUID)"
// @Success 200 {object} controllers.EditInterviewSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /interviews/edit/{id} [get]
func (c *InterviewController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	iv, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "interview not found")
		return
	}
	duration := iv.DurationMinutes
	helpers.WriteJSONSuccess(w, http.StatusOK, InterviewRequest{
		EmployerID:      iv.EmployerID,
		CandidateID:     iv.CandidateID,
		StartsAt:        iv.StartsAt,
		DurationMinutes: &duration,
		Type:            iv.Type,
		Status:          iv.Status,
		MeetingLink:     iv.MeetingLink,
		Location:        iv.Location,
		Notes:           iv.Notes,
	})
}

// Update godoc
// @Summary Update an interview
// @Description Re-runs every scheduling rule; the interview does not conflict with itself.
// @Tags interviews
// @Accept json
// @Produce json
// @Param id path string true "Interview ID (UUID)"
// @Param interview body InterviewRequest true "Interview data"
// @Success 200 {object} controllers.InterviewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed (see error.kind)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /interviews/{id} [put]
func (c *InterviewController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req InterviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	iv := req.interview(id)
	if err := c.Service.Update(r.Context(), iv); err != nil {
		writeServiceError(c.Logger, w, r, err, "interview not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, iv)
}

// Delete godoc
// @Summary Delete an interview
// @Tags interviews
// @Param id path string true "Interview ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /interviews/{id} [delete]
func (c *InterviewController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err, "interview not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *InterviewController) writeList(w http.ResponseWriter, r *http.Request, list []*domain.Interview, err error) {
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	if list == nil {
		list = []*domain.Interview{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

func parseStatusParam(raw string) (domain.InterviewStatus, error) {
	if code, err := strconv.Atoi(raw); err == nil {
		if all := domain.InterviewStatuses(); code >= 0 && code < len(all) {
			return all[code], nil
		}
		return "", fmt.Errorf("unknown interview status %q", raw)
	}
	return domain.ParseInterviewStatus(raw)
}

func parseTypeParam(raw string) (domain.InterviewType, error) {
	if code, err := strconv.Atoi(raw); err == nil {
		if all := domain.InterviewTypes(); code >= 0 && code < len(all) {
			return all[code], nil
		}
		return "", fmt.Errorf("unknown interview type %q", raw)
	}
	return domain.ParseInterviewType(raw)
}
