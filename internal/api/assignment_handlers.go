package api

import (
	"net/http"

	"github.com/studyhallapp/studyhall-server/internal/api/dto"
	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/http/response"
)

// CreateAssignmentRequest is the request body for creating an assignment.
// Completed is loosely typed: true and "true" both count as completed.
type CreateAssignmentRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	DueDate     string     `json:"dueDate"`
	Completed   any        `json:"completed"`
	Status      string     `json:"status" validate:"max=50"`
	EventID     optionalID `json:"eventId"`
	CategoryID  optionalID `json:"categoryId"`
}

// UpdateAssignmentRequest is the request body for updating an assignment.
// Field presence decides between the narrow kanban path and a full update,
// so everything is a pointer (or loosely typed, for completed).
type UpdateAssignmentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   any     `json:"completed"`
	Status      *string `json:"status"`
}

// handleListAssignments returns the caller's assignments.
// GET /api/assignments.
func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	assignments, err := s.store.ListAssignmentsByUser(ctx, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatAssignments(assignments), s.logger)
}

// handleCreateAssignment creates an assignment owned by the caller.
// POST /api/assignments.
func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	var req CreateAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	a := &domain.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Completed:   looseBool(req.Completed),
		Status:      req.Status,
		EventID:     req.EventID.Value(),
		CategoryID:  req.CategoryID.Value(),
		UserID:      principal.UserID,
	}
	if a.Status == "" {
		a.Status = domain.AssignmentStatusTodo
	}
	if req.DueDate != "" {
		due, err := parseClientTime(req.DueDate)
		if err != nil {
			response.BadRequest(w, err.Error(), s.logger)
			return
		}
		a.DueDate = &due
	}

	created, err := s.store.CreateAssignment(ctx, a)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatAssignment(created), s.logger)
}

// handleUpdateAssignment updates an assignment.
//
// Two paths, distinguished by which keys the body carries:
//   - status-only: no title/description/dueDate present, so only the
//     status and completed columns change (kanban drag-and-drop);
//   - full: omitted fields keep their stored values, completed follows the
//     loose true/"true" convention, and status falls back from the explicit
//     value to the stored one to done/todo derived from completed.
//
// PUT /api/assignments/{id}.
func (s *Server) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var req UpdateAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}

	existing, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	completed := existing.Completed
	if req.Completed != nil {
		completed = looseBool(req.Completed)
	}

	statusOnly := req.Title == nil && req.Description == nil && req.DueDate == nil &&
		(req.Status != nil || req.Completed != nil)

	if statusOnly {
		status := existing.Status
		if req.Status != nil {
			status = *req.Status
		}
		if err := s.store.UpdateAssignmentStatus(ctx, id, status, completed); err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
	} else {
		updated := *existing
		updated.Completed = completed
		if req.Title != nil {
			updated.Title = *req.Title
		}
		if req.Description != nil {
			updated.Description = *req.Description
		}
		if req.DueDate != nil {
			if *req.DueDate == "" {
				updated.DueDate = nil
			} else {
				due, err := parseClientTime(*req.DueDate)
				if err != nil {
					response.BadRequest(w, err.Error(), s.logger)
					return
				}
				updated.DueDate = &due
			}
		}

		switch {
		case req.Status != nil && *req.Status != "":
			updated.Status = *req.Status
		case existing.Status != "":
			updated.Status = existing.Status
		case completed:
			updated.Status = domain.AssignmentStatusDone
		default:
			updated.Status = domain.AssignmentStatusTodo
		}

		if err := s.store.UpdateAssignment(ctx, id, &updated); err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
	}

	result, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatAssignment(result), s.logger)
}

// handleDeleteAssignment removes an assignment.
// DELETE /api/assignments/{id}.
func (s *Server) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	if err := s.store.DeleteAssignment(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Deleted(w, s.logger)
}
