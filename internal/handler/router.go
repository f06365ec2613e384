package handler

import (
	"log/slog"
	"net/http"

	"github.com/monitoring-tool-api/internal/config"
	"github.com/monitoring-tool-api/internal/middleware"
)

// Handlers - набор хендлеров, из которых собирается API
type Handlers struct {
	Employee *EmployeeHandler
	Activity *ActivityHandler
	Leave    *LeaveHandler
	Task     *TaskHandler
	Health   *HealthHandler
}

// Router настраивает маршруты API
type Router struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	handlers  Handlers
	rateLimit config.RateLimitConfig
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, rateLimit config.RateLimitConfig, logger *slog.Logger) *Router {
	return &Router{
		mux:       http.NewServeMux(),
		logger:    logger,
		handlers:  handlers,
		rateLimit: rateLimit,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	h := r.handlers

	// Сотрудники
	r.mux.HandleFunc("POST /employees", h.Employee.Create)
	r.mux.HandleFunc("GET /employees", h.Employee.List)

	// Вход / выход
	r.mux.HandleFunc("POST /login", h.Activity.Login)
	r.mux.HandleFunc("POST /logout/{activity_id}", h.Activity.Logout)

	// Отпуска
	r.mux.HandleFunc("POST /leave", h.Leave.Apply)
	r.mux.HandleFunc("GET /leaves/{emp_id}", h.Leave.ListByEmployee)
	r.mux.HandleFunc("PUT /leave/response/{leave_id}", h.Leave.Respond)

	// Задачи
	r.mux.HandleFunc("POST /admin/task", h.Task.Assign)
	r.mux.HandleFunc("POST /task/update/{task_id}", h.Task.Update)
	r.mux.HandleFunc("GET /admin/tasks/{emp_id}", h.Task.ListByEmployee)

	r.mux.HandleFunc("GET /{$}", h.Health.Root)
	r.mux.HandleFunc("GET /health", h.Health.Health)

	return middleware.Chain(r.withJSONFallback(),
		middleware.Recoverer(r.logger),
		middleware.RequestID,
		middleware.Logger(r.logger),
		middleware.RateLimit(r.rateLimit.RPS, r.rateLimit.Burst),
		middleware.ContentType,
	)
}

// withJSONFallback отдаёт ответы 404 и 405 от ServeMux в формате API.
// Заголовок Allow из ответа 405 сохраняется
func (r *Router) withJSONFallback() http.Handler {
	b := newBase(r.logger)
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h, pattern := r.mux.Handler(req)
		if pattern != "" {
			r.mux.ServeHTTP(w, req)
			return
		}

		capture := &statusCapture{header: w.Header(), status: http.StatusNotFound}
		h.ServeHTTP(capture, req)

		w.Header().Del("X-Content-Type-Options")
		w.Header().Set("Content-Type", "application/json")
		b.respondError(w, capture.status, http.StatusText(capture.status), nil)
	})
}

// statusCapture запоминает код ответа и отбрасывает тело
type statusCapture struct {
	header http.Header
	status int
}

func (c *statusCapture) Header() http.Header { return c.header }

func (c *statusCapture) Write(p []byte) (int, error) { return len(p), nil }

func (c *statusCapture) WriteHeader(status int) { c.status = status }
