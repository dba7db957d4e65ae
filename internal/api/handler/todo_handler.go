package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/metrics"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TodoHandler handles HTTP requests for todo operations. All routes sit
// behind the Auth middleware; ownership is enforced by the service.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create handles POST /api/todos.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo fields"
// @Success      201   {object}  domain.Todo
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var fe *FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe.Fields})
		}
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	todo, err := h.service.Create(c.Request().Context(), userID, ports.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		metrics.TodoOperationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, todo)
}

// List handles GET /api/todos with optional filter query parameters.
//
// @Summary      List todos matching optional filters
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        title        query     string  false  "Exact title match"
// @Param        description  query     string  false  "Case-insensitive substring match"
// @Param        category     query     string  false  "Exact category match"
// @Param        completed    query     bool    false  "Completed flag match"
// @Param        ownerId      query     string  false  "Exact owner match"
// @Success      200          {array}   domain.Todo
// @Failure      401          {object}  messageResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), todoFilterFromQuery(c.QueryParam))
	if err != nil {
		metrics.TodoOperationsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, todos)
}

// Get handles GET /api/todos/:id.
//
// @Summary      Get a todo by id
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  domain.Todo
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			metrics.TodoOperationsTotal.WithLabelValues("get", "not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Todo not found"})
		}
		metrics.TodoOperationsTotal.WithLabelValues("get", "error").Inc()
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("get", "ok").Inc()
	return c.JSON(http.StatusOK, todo)
}

// Update handles PUT /api/todos/:id. Only the creator may update; a
// missing id is reported as not-found before ownership is considered.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Todo id"
// @Param        body  body      map[string]any  true  "Fields to update (title, description, category, completed)"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	changes, err := parseTodoUpdate(body)
	if err != nil {
		var extra *extraFieldsError
		if errors.As(err, &extra) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": extra.Error()})
		}
		var fe *FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe.Fields})
		}
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, changes); err != nil {
		switch {
		case errors.Is(err, domain.ErrTodoNotFound):
			metrics.TodoOperationsTotal.WithLabelValues("update", "not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Todo not found"})
		case errors.Is(err, domain.ErrNotOwner):
			metrics.TodoOperationsTotal.WithLabelValues("update", "forbidden").Inc()
			return c.JSON(http.StatusForbidden, messageResponse{Message: "Unauthorized, only creator can update todo"})
		}
		metrics.TodoOperationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Todo updated successfully"})
}

// Delete handles DELETE /api/todos/:id. Only the creator may delete; a
// missing id is reported as not-found before ownership is considered.
//
// @Summary      Delete a todo
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  string  true  "Todo id"
// @Success      204
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrTodoNotFound):
			metrics.TodoOperationsTotal.WithLabelValues("delete", "not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Todo not found"})
		case errors.Is(err, domain.ErrNotOwner):
			metrics.TodoOperationsTotal.WithLabelValues("delete", "forbidden").Inc()
			return c.JSON(http.StatusForbidden, messageResponse{Message: "Unauthorized, only creator can delete todo"})
		}
		metrics.TodoOperationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}
