package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dayboard/internal/service"
)

// HabitHandler handles habit endpoints.
type HabitHandler struct {
	habitService service.HabitService
}

// NewHabitHandler creates a new habit handler.
func NewHabitHandler(habitService service.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// CreateHabitRequest represents a new habit.
type CreateHabitRequest struct {
	Name string `json:"name" validate:"max=255"`
}

// UpdateHabitRequest represents a partial habit update. Streak is read-only.
type UpdateHabitRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Completed *bool   `json:"completed"`
}

// ListHabits godoc
// @Summary List habits
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Habit
// @Failure 401 {object} errors.ErrorResponse
// @Router /habits [get]
func (h *HabitHandler) ListHabits(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	habits, err := h.habitService.List(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, habits)
}

// CreateHabit godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHabitRequest true "Habit"
// @Success 201 {object} model.Habit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /habits [post]
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateHabitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	habit, err := h.habitService.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, habit)
}

// UpdateHabit godoc
// @Summary Partially update a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Param request body UpdateHabitRequest true "Fields to change"
// @Success 200 {object} model.Habit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /habits/{id} [patch]
func (h *HabitHandler) UpdateHabit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateHabitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	habit, err := h.habitService.Update(c.Request().Context(), userID, c.Param("id"), service.HabitPatch{
		Name:      req.Name,
		Completed: req.Completed,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, habit)
}

// DeleteHabit godoc
// @Summary Delete a habit
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /habits/{id} [delete]
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.habitService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Habit deleted successfully"})
}
