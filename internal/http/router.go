package http

import (
	"net/http"
	"strings"

	"github.com/jaekwang-park/todo-assign-api/internal/http/handler"
	"github.com/jaekwang-park/todo-assign-api/internal/service"
)

// NewRouter mounts the todo API under apiPrefix. db may be nil.
func NewRouter(apiPrefix string, todoSvc *service.TodoService, db handler.Pinger) http.Handler {
	mux := http.NewServeMux()

	// Health check stays outside the API prefix for load balancer probes
	health := handler.NewHealthHandler(db)
	mux.Handle("/health", health)

	todoHandler := handler.NewTodoHandler(todoSvc, apiPrefix)
	base := strings.TrimSuffix(apiPrefix, "/") + "/todos"
	mux.Handle(base, todoHandler)
	mux.Handle(base+"/", todoHandler)

	return mux
}
