package api

import (
	"net/http"

	"github.com/studyhallapp/studyhall-server/internal/api/dto"
	"github.com/studyhallapp/studyhall-server/internal/http/response"
)

// CreateTodoRequest is the request body for creating a todo.
type CreateTodoRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Priority string `json:"priority" validate:"required,max=50"`
}

// UpdateTodoRequest is the request body for replacing a todo. Completed is
// loosely typed and counts as true only when it is exactly JSON true.
type UpdateTodoRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Priority  string `json:"priority" validate:"required,max=50"`
	Completed any    `json:"completed"`
}

// handleListTodos returns the caller's todos.
// GET /api/todos.
func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	todos, err := s.store.ListTodosByUser(ctx, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatTodos(todos), s.logger)
}

// handleCreateTodo creates a todo owned by the caller.
// POST /api/todos.
func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	var req CreateTodoRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	todo, err := s.store.CreateTodo(ctx, req.Title, req.Priority, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatTodo(todo), s.logger)
}

// handleUpdateTodo replaces a todo's fields. Completed defaults to false
// unless the body carries exactly true.
// PUT /api/todos/{id}.
func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var req UpdateTodoRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	completed := req.Completed == true

	if err := s.store.UpdateTodo(ctx, id, req.Title, completed, req.Priority); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	todo, err := s.store.GetTodo(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatTodo(todo), s.logger)
}

// handleDeleteTodo removes a todo.
// DELETE /api/todos/{id}.
func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	if err := s.store.DeleteTodo(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Deleted(w, s.logger)
}
