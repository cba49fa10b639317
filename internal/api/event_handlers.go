package api

import (
	"net/http"

	"github.com/studyhallapp/studyhall-server/internal/api/dto"
	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/http/response"
)

// EventRequest is the request body for creating or replacing an event.
// Start and end are both required, but start <= end is deliberately not
// enforced anywhere in this layer.
type EventRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	StartTime   string     `json:"startTime" validate:"required"`
	EndTime     string     `json:"endTime" validate:"required"`
	CategoryID  optionalID `json:"categoryId"`
	Location    string     `json:"location" validate:"max=200"`
	Description string     `json:"description" validate:"max=2000"`
}

// toDomain parses the request's timestamps and builds the domain event.
func (req *EventRequest) toDomain(userID int64) (*domain.Event, error) {
	start, err := parseClientTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClientTime(req.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.Event{
		Title:       req.Title,
		StartTime:   start,
		EndTime:     end,
		CategoryID:  req.CategoryID.Value(),
		UserID:      userID,
		Location:    req.Location,
		Description: req.Description,
	}, nil
}

// handleListEvents returns the caller's events with linked assignment ids.
// GET /api/events (also mounted at /api/lessons).
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	events, err := s.store.ListEventsByUser(ctx, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatEvents(events), s.logger)
}

// handleCreateEvent creates an event owned by the caller.
// POST /api/events.
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	var req EventRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	ev, err := req.toDomain(principal.UserID)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	created, err := s.store.CreateEvent(ctx, ev)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatEvent(created), s.logger)
}

// handleUpdateEvent fully replaces an event's fields.
// PUT /api/events/{id}.
func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var req EventRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	ev, err := req.toDomain(principal.UserID)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	if err := s.store.UpdateEvent(ctx, id, ev); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	updated, err := s.store.GetEvent(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatEvent(updated), s.logger)
}

// handleDeleteEvent removes an event; linked assignments survive with their
// event reference nulled.
// DELETE /api/events/{id}.
func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	if err := s.store.DeleteEvent(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Deleted(w, s.logger)
}
