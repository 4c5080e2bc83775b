// Package httpapi exposes the identity and task services as a JSON API.
// Routing is gorilla/mux; handlers translate service errors to status codes
// and know nothing about storage.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"todoapp/internal/logging"
	"todoapp/internal/server/models"
)

// UserService is the identity surface the API needs.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.UserSummary, error)
	Login(ctx context.Context, username, password string) (*models.UserSummary, error)
}

// TaskService is the task surface the API needs.
type TaskService interface {
	List(ctx context.Context, ownerID int64) ([]*models.Task, error)
	Create(ctx context.Context, draft *models.Task) (*models.Task, error)
	Update(ctx context.Context, id int64, draft *models.Task) error
	Delete(ctx context.Context, id int64) error
	CompleteAll(ctx context.Context, ownerID int64) (int64, error)
	UncompleteAll(ctx context.Context, ownerID int64) (int64, error)
	DeleteCompleted(ctx context.Context, ownerID int64) (int64, error)
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           UserService
	tasks           TaskService
	db              *sql.DB
}

// NewServer wires the HTTP layer. db is used only by the health endpoint.
func NewServer(address string, l logging.Logger, us UserService, ts TaskService, db *sql.DB, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "httpapi"),
		users:           us,
		tasks:           ts,
		db:              db,
	}
}

// Handler builds the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	api.HandleFunc("/todos", s.handleListTodos).Methods(http.MethodGet)
	api.HandleFunc("/todos", s.handleCreateTodo).Methods(http.MethodPost)
	api.HandleFunc("/todos/complete-all", s.handleCompleteAll).Methods(http.MethodPut)
	api.HandleFunc("/todos/uncomplete-all", s.handleUncompleteAll).Methods(http.MethodPut)
	api.HandleFunc("/todos/completed", s.handleDeleteCompleted).Methods(http.MethodDelete)
	api.HandleFunc("/todos/{id:[0-9]+}", s.handleUpdateTodo).Methods(http.MethodPut)
	api.HandleFunc("/todos/{id:[0-9]+}", s.handleDeleteTodo).Methods(http.MethodDelete)

	api.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return s.withMiddleware(r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
