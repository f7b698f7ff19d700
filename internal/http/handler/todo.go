package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jaekwang-park/todo-assign-api/internal/middleware"
	"github.com/jaekwang-park/todo-assign-api/internal/service"
	"github.com/jaekwang-park/todo-assign-api/internal/validation"
)

const assigneeParam = "assigned_to_id"

type TodoHandler struct {
	svc       *service.TodoService
	validator *validation.Validator
	basePath  string
}

// NewTodoHandler serves the todo collection mounted at apiPrefix + "/todos".
func NewTodoHandler(svc *service.TodoService, apiPrefix string) *TodoHandler {
	return &TodoHandler{
		svc:       svc,
		validator: validation.New(),
		basePath:  strings.TrimSuffix(apiPrefix, "/") + "/todos",
	}
}

// ServeHTTP routes {basePath} and {basePath}/{id}[/done|/assign]
func (h *TodoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, h.basePath)
	path = strings.Trim(path, "/")

	parts := strings.SplitN(path, "/", 2)
	rawID := parts[0]
	subPath := ""
	if len(parts) > 1 {
		subPath = parts[1]
	}

	// {basePath}
	if rawID == "" {
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			h.handleCreate(w, r)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
		return
	}

	var handle func(http.ResponseWriter, *http.Request, int64)
	var allowed string
	switch subPath {
	case "":
		handle, allowed = h.handleDelete, http.MethodDelete
	case "done":
		handle, allowed = h.handleMarkDone, http.MethodPatch
	case "assign":
		handle, allowed = h.handleAssign, http.MethodPatch
	default:
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}

	if r.Method != allowed {
		methodNotAllowed(w, allowed)
		return
	}

	todoID, ok := parseTodoID(w, rawID)
	if !ok {
		return
	}
	handle(w, r, todoID)
}

func (h *TodoHandler) handleList(w http.ResponseWriter, r *http.Request) {
	values, present := r.URL.Query()[assigneeParam]
	raw := ""
	if len(values) > 0 {
		raw = values[len(values)-1]
	}

	filter, err := service.ParseAssigneeFilter(present, raw)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	todos, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

type createTodoRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	AssignedToID *int64 `json:"assigned_to_id"`
}

func (h *TodoHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	todo, err := h.svc.Create(r.Context(), service.CreateTodoInput{
		Title:        req.Title,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", h.basePath, todo.ID))
	WriteJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) handleMarkDone(w http.ResponseWriter, r *http.Request, todoID int64) {
	todo, err := h.svc.MarkDone(r.Context(), todoID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

type assignTodoRequest struct {
	AssignedToID *int64 `json:"assigned_to_id"`
}

func (h *TodoHandler) handleAssign(w http.ResponseWriter, r *http.Request, todoID int64) {
	var req assignTodoRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	todo, err := h.svc.Assign(r.Context(), todoID, service.AssignTodoInput{
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) handleDelete(w http.ResponseWriter, r *http.Request, todoID int64) {
	if err := h.svc.Delete(r.Context(), todoID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrTodoNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "todo item not found")
	case errors.Is(err, service.ErrPersonNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "person not found")
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"request_id", middleware.GetRequestID(r),
		)
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
