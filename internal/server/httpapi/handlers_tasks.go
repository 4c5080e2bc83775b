package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"todoapp/internal/common"
	"todoapp/internal/server/models"
)

// ownerFromQuery reads the userId query parameter. An absent parameter is
// treated as owner 0, which matches no rows.
func ownerFromQuery(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func idFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// handleListTodos handles GET /api/todos?userId=N.
func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId must be an integer")
		return
	}

	tasks, err := s.tasks.List(r.Context(), ownerID)
	if err != nil {
		s.logger.Error(r.Context(), "list failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

// handleCreateTodo handles POST /api/todos.
func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var draft models.Task
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.tasks.Create(r.Context(), &draft)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidOwner) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error(r.Context(), "create failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// handleUpdateTodo handles PUT /api/todos/{id} with a full task body.
func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var draft models.Task
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.tasks.Update(r.Context(), id, &draft); err != nil {
		switch {
		case errors.Is(err, common.ErrorIDMismatch):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "task not found")
		default:
			s.logger.Error(r.Context(), "update failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteTodo handles DELETE /api/todos/{id}.
func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := s.tasks.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		s.logger.Error(r.Context(), "delete failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCompleteAll handles PUT /api/todos/complete-all?userId=N.
func (s *Server) handleCompleteAll(w http.ResponseWriter, r *http.Request) {
	s.handleBulk(w, r, s.tasks.CompleteAll, "updatedCount")
}

// handleUncompleteAll handles PUT /api/todos/uncomplete-all?userId=N.
func (s *Server) handleUncompleteAll(w http.ResponseWriter, r *http.Request) {
	s.handleBulk(w, r, s.tasks.UncompleteAll, "updatedCount")
}

// handleDeleteCompleted handles DELETE /api/todos/completed?userId=N.
func (s *Server) handleDeleteCompleted(w http.ResponseWriter, r *http.Request) {
	s.handleBulk(w, r, s.tasks.DeleteCompleted, "deletedCount")
}

func (s *Server) handleBulk(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, ownerID int64) (int64, error), countKey string) {
	ownerID, err := ownerFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId must be an integer")
		return
	}

	count, err := op(r.Context(), ownerID)
	if err != nil {
		s.logger.Error(r.Context(), "bulk operation failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{countKey: count})
}
