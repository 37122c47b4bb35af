package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dayboard/internal/service"
)

// TodoHandler handles todo endpoints.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents a new todo. Category defaults to Work and priority to Medium.
type CreateTodoRequest struct {
	Text     string   `json:"text"`
	DueDate  string   `json:"dueDate" validate:"max=32"`
	Category string   `json:"category"`
	Priority string   `json:"priority"`
	Tags     []string `json:"tags" validate:"max=50,dive,max=64"`
}

// UpdateTodoRequest represents a partial todo update.
type UpdateTodoRequest struct {
	Text      *string   `json:"text"`
	DueDate   *string   `json:"dueDate" validate:"omitempty,max=32"`
	Category  *string   `json:"category"`
	Priority  *string   `json:"priority"`
	Completed *bool     `json:"completed"`
	Tags      *[]string `json:"tags" validate:"omitempty,max=50,dive,max=64"`
}

// ListTodos godoc
// @Summary List todos, earliest due date first
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) ListTodos(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.List(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, todos)
}

// CreateTodo godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTodoRequest true "Todo"
// @Success 201 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.todoService.Create(c.Request().Context(), userID, service.NewTodo{
		Text:     req.Text,
		DueDate:  req.DueDate,
		Category: req.Category,
		Priority: req.Priority,
		Tags:     req.Tags,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, todo)
}

// UpdateTodo godoc
// @Summary Partially update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to change"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [patch]
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.todoService.Update(c.Request().Context(), userID, c.Param("id"), service.TodoPatch{
		Text:      req.Text,
		DueDate:   req.DueDate,
		Category:  req.Category,
		Priority:  req.Priority,
		Completed: req.Completed,
		Tags:      req.Tags,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, todo)
}

// DeleteTodo godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Todo deleted successfully"})
}
