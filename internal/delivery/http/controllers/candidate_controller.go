package controllers

import (
	"log/slog"
	"net/http"

	"interviewscheduler/internal/delivery/http/helpers"
	"interviewscheduler/internal/domain"
)

// ListCandidatesResponse is the data of GET /candidates.
type ListCandidatesResponse = helpers.Page[*domain.Candidate]

// ListCandidatesSuccessResponse is the success response envelope for GET /candidates (200).
type ListCandidatesSuccessResponse struct {
	Data  ListCandidatesResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// CandidateSuccessResponse is the success envelope for single-candidate responses.
type CandidateSuccessResponse struct {
	Data  *domain.Candidate `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CandidateController struct {
	Logger  *slog.Logger
	Service domain.CandidateService
}

func NewCandidateController(logger *slog.Logger, svc domain.CandidateService) *CandidateController {
	return &CandidateController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List candidates
// @Description Returns candidates ordered by name, paginated.
// @Tags candidates
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100, 0 for all)"
// @Success 200 {object} controllers.ListCandidatesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /candidates [get]
func (c *CandidateController) List(w http.ResponseWriter, r *http.Request) {
	params, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	list, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPage(list, params, total))
}

// Get godoc
// @Summary Get a candidate by ID
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Success 200 {object} controllers.CandidateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /candidates/{id} [get]
func (c *CandidateController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	e, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "candidate not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, e)
}

// Create godoc
// @Summary Create a candidate
// @Description The id is server-generated. Email must be unique among candidates.
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body ContactRequest true "Candidate data"
// @Success 201 {object} controllers.CandidateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /candidates [post]
func (c *CandidateController) Create(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	e := &domain.Candidate{Contact: req.contact()}
	if err := c.Service.Create(r.Context(), e); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, e)
}

// Update godoc
// @Summary Update a candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Param candidate body ContactRequest true "Candidate data"
// @Success 200 {object} controllers.CandidateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /candidates/{id} [put]
func (c *CandidateController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	e := &domain.Candidate{ID: id, Contact: req.contact()}
	if err := c.Service.Update(r.Context(), e); err != nil {
		writeServiceError(c.Logger, w, r, err, "candidate not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, e)
}

// Delete godoc
// @Summary Delete a candidate
// @Description Fails with 409 while interviews still reference the candidate.
// @Tags candidates
// @Param id path string true "Candidate ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /candidates/{id} [delete]
func (c *CandidateController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err, "candidate not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
