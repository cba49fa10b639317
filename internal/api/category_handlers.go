package api

import (
	"net/http"

	"github.com/studyhallapp/studyhall-server/internal/api/dto"
	"github.com/studyhallapp/studyhall-server/internal/http/response"
)

// CategoryRequest is the request body for creating or replacing a category.
type CategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"required,max=32"`
}

// handleListCategories returns the caller's categories.
// GET /api/categories.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	categories, err := s.store.ListCategoriesByUser(ctx, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatCategories(categories), s.logger)
}

// handleCreateCategory creates a category owned by the caller.
// POST /api/categories.
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	var req CategoryRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	category, err := s.store.CreateCategory(ctx, req.Name, req.Color, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatCategory(category), s.logger)
}

// handleUpdateCategory fully replaces a category's fields.
// PUT /api/categories/{id}.
func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var req CategoryRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.store.UpdateCategory(ctx, id, req.Name, req.Color); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatCategory(category), s.logger)
}

// handleDeleteCategory removes a category; rows referencing it keep their
// data with the reference nulled.
// DELETE /api/categories/{id}.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	if err := s.store.DeleteCategory(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Deleted(w, s.logger)
}
