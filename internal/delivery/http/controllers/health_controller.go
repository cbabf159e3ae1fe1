package controllers

import (
	"log/slog"
	"net/http"

	"interviewscheduler/internal/delivery/http/helpers"
	"interviewscheduler/internal/domain"
)

// HealthSuccessResponse is the envelope for GET /health.
type HealthSuccessResponse struct {
	Data  *domain.HealthReport `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type HealthController struct {
	Logger  *slog.Logger
	Service domain.HealthService
}

func NewHealthController(logger *slog.Logger, svc domain.HealthService) *HealthController {
	return &HealthController{
		Logger:  logger,
		Service: svc,
	}
}

// Check godoc
// @Summary Database connectivity check
// @Description Pings the database and returns row counts for employers, candidates and interviews.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthSuccessResponse
// @Failure 503 {object} controllers.HealthSuccessResponse "data.connected is false"
// @Router /health [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	report, err := c.Service.Check(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
		if report == nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, err.Error())
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusServiceUnavailable, report)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
