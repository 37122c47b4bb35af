package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dayboard/internal/service"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Completion rates and todo breakdowns for the caller
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatsReport
// @Failure 401 {object} errors.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	report, err := h.statsService.Compute(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, report)
}
