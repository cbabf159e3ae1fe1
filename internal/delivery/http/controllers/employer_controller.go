package controllers

import (
	"log/slog"
	"net/http"

	"interviewscheduler/internal/delivery/http/helpers"
	"interviewscheduler/internal/domain"
)

// ListEmployersResponse is the data of GET /employers.
type ListEmployersResponse = helpers.Page[*domain.Employer]

// ListEmployersSuccessResponse is the success response envelope for GET /employers (200).
type ListEmployersSuccessResponse struct {
	Data  ListEmployersResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// EmployerSuccessResponse is the success envelope for single-employer responses.
type EmployerSuccessResponse struct {
	Data  *domain.Employer  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EmployerController struct {
	Logger  *slog.Logger
	Service domain.EmployerService
}

func NewEmployerController(logger *slog.Logger, svc domain.EmployerService) *EmployerController {
	return &EmployerController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List employers
// @Description Returns employers ordered by name, paginated.
// @Tags employers
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100, 0 for all)"
// @Success 200 {object} controllers.ListEmployersSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /employers [get]
func (c *EmployerController) List(w http.ResponseWriter, r *http.Request) {
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
// @Summary Get an employer by ID
// @Tags employers
// @Produce json
// @Param id path string true "Employer ID (UUID)"
// @Success 200 {object} controllers.EmployerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /employers/{id} [get]
func (c *EmployerController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	e, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "employer not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, e)
}

// Create godoc
// @Summary Create an employer
// @Description The id is server-generated. Email must be unique among employers.
// @Tags employers
// @Accept json
// @Produce json
// @Param employer body ContactRequest true "Employer data"
// @Success 201 {object} controllers.EmployerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /employers [post]
func (c *EmployerController) Create(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	e := &domain.Employer{Contact: req.contact()}
	if err := c.Service.Create(r.Context(), e); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, e)
}

// Update godoc
// @Summary Update an employer
// @Tags employers
// @Accept json
// @Produce json
// @Param id path string true "Employer ID (UUID)"
// @Param employer body ContactRequest true "Employer data"
// @Success 200 {object} controllers.EmployerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /employers/{id} [put]
func (c *EmployerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	e := &domain.Employer{ID: id, Contact: req.contact()}
	if err := c.Service.Update(r.Context(), e); err != nil {
		writeServiceError(c.Logger, w, r, err, "employer not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, e)
}

// Delete godoc
// @Summary Delete an employer
// @Description Fails with 409 while interviews still reference the employer.
// @Tags employers
// @Param id path string true "Employer ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /employers/{id} [delete]
func (c *EmployerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err, "employer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
