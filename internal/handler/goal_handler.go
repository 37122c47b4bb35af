package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dayboard/internal/service"
)

// GoalHandler handles daily goal endpoints.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents a new goal.
type CreateGoalRequest struct {
	Text string `json:"text"`
}

// UpdateGoalRequest represents a partial goal update.
type UpdateGoalRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// ListGoals godoc
// @Summary List goals, newest first
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Goal
// @Failure 401 {object} errors.ErrorResponse
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	goals, err := h.goalService.List(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, goals)
}

// CreateGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "Goal"
// @Success 201 {object} model.Goal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.goalService.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, goal)
}

// UpdateGoal godoc
// @Summary Partially update a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param request body UpdateGoalRequest true "Fields to change"
// @Success 200 {object} model.Goal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /goals/{id} [patch]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.goalService.Update(c.Request().Context(), userID, c.Param("id"), service.GoalPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.goalService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Goal deleted successfully"})
}
