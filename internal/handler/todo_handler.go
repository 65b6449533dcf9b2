package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapi/internal/errors"
	"todoapi/internal/service"
)

// TodoHandler handles the protected todo endpoints. The owner id is read
// from the echo context, where the auth middleware put it; a request only
// reaches these handlers after its token verified.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents a create-todo request.
type CreateTodoRequest struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// ToggleTodoRequest identifies the todo to toggle or fetch.
type ToggleTodoRequest struct {
	ObjID string `json:"objId"`
}

// TodoListResponse wraps a user's projected todo list.
type TodoListResponse struct {
	Todos []service.TodoItem `json:"todos"`
}

// Create godoc
// @Summary Create a todo for the authenticated user
// @Tags todos
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateTodoRequest true "Todo data"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := h.todoService.Create(c.Request().Context(), ownerID, req.Title, req.Done); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Todo created successfully"})
}

// List godoc
// @Summary List the authenticated user's todos
// @Tags todos
// @Produce json
// @Security TokenAuth
// @Success 200 {object} TodoListResponse
// @Failure 401 {object} MessageResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.List(c.Request().Context(), ownerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TodoListResponse{Todos: todos})
}

// Toggle godoc
// @Summary Flip a todo's done flag
// @Tags todos
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ToggleTodoRequest true "Todo id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} MessageResponse
// @Router /toggle [post]
func (h *TodoHandler) Toggle(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	var req ToggleTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := h.todoService.Toggle(c.Request().Context(), ownerID, req.ObjID); err != nil {
		if err == errors.ErrTodoNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "TODO_NOT_FOUND",
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "something went wrong",
			Code:  "STORE_ERROR",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"Msg": "update Done.!"})
}

// GetSingle godoc
// @Summary Fetch a single todo by id
// @Description The todo id is read from the request body, as the API has
// @Description always done, even though this is a GET.
// @Tags todos
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ToggleTodoRequest true "Todo id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} MessageResponse
// @Router /singleTodo [get]
func (h *TodoHandler) GetSingle(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	var req ToggleTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"Msg": "Somethings Wrong..!"})
	}

	// Raw matched records, zero or one, unprojected.
	matched, err := h.todoService.Get(c.Request().Context(), ownerID, req.ObjID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"Msg": "Somethings Wrong..!"})
	}

	return c.JSON(http.StatusOK, echo.Map{"todo": matched})
}

// ownerIDFromContext reads the owner id the auth middleware attached. A
// missing value means the route was wired outside the secured group, which
// is a programming error, but it still fails closed.
func ownerIDFromContext(c echo.Context) (string, error) {
	ownerID, ok := c.Get("user_id").(string)
	if !ok || ownerID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	return ownerID, nil
}
