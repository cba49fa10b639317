package api

import (
	"net/http"

	"github.com/studyhallapp/studyhall-server/internal/api/dto"
	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/http/response"
)

// CreateTopicRequest is the request body for creating a flashcard topic.
type CreateTopicRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	CategoryID  optionalID `json:"categoryId"`
	Color       string     `json:"color" validate:"max=32"`
}

// UpdateTopicRequest is the request body for updating a flashcard topic.
// Omitted optional fields keep their stored values.
type UpdateTopicRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description *string     `json:"description"`
	CategoryID  *optionalID `json:"categoryId"`
	Color       *string     `json:"color"`
}

// CreateFlashcardRequest is the request body for creating a flashcard.
type CreateFlashcardRequest struct {
	Front      string     `json:"front" validate:"required,max=2000"`
	Back       string     `json:"back" validate:"required,max=2000"`
	TopicID    optionalID `json:"topicId"`
	CategoryID optionalID `json:"categoryId"`
	Favorite   bool       `json:"favorite"`
}

// UpdateFlashcardRequest is the request body for updating a flashcard.
// A body carrying favorite but neither front nor back flips only the
// favorite flag; otherwise front and back are required and replace the row.
type UpdateFlashcardRequest struct {
	Front    *string `json:"front"`
	Back     *string `json:"back"`
	Favorite *bool   `json:"favorite"`
}

// === Flashcard topics ===

// handleListTopics returns the caller's topics with card counts.
// GET /api/flashcard-topics.
func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	topics, err := s.store.ListTopicsByUser(ctx, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatTopics(topics), s.logger)
}

// handleCreateTopic creates a flashcard topic owned by the caller.
// POST /api/flashcard-topics.
func (s *Server) handleCreateTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	var req CreateTopicRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	topic, err := s.store.CreateTopic(ctx, &domain.FlashcardTopic{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID.Value(),
		Color:       req.Color,
		UserID:      principal.UserID,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatTopic(topic), s.logger)
}

// handleListTopicFlashcards returns the flashcards inside one topic.
// GET /api/flashcard-topics/{id}/flashcards.
func (s *Server) handleListTopicFlashcards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	if _, err := s.store.GetTopic(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	flashcards, err := s.store.ListFlashcardsByTopic(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatFlashcards(flashcards), s.logger)
}

// handleUpdateTopic updates a topic after verifying the caller owns it.
// Topics are the one entity with an explicit ownership check: a mismatch
// is a 403, not a 404.
// PUT /api/flashcard-topics/{id}.
func (s *Server) handleUpdateTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var req UpdateTopicRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	existing, err := s.store.GetTopic(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if existing.UserID != principal.UserID {
		response.Forbidden(w, "not your topic", s.logger)
		return
	}

	updated := *existing
	updated.Title = req.Title
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.CategoryID != nil {
		updated.CategoryID = req.CategoryID.Value()
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}

	if err := s.store.UpdateTopic(ctx, id, &updated); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	topic, err := s.store.GetTopic(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatTopic(topic), s.logger)
}

// handleDeleteTopic removes a topic and, via cascade, all its flashcards.
// Requires ownership like update.
// DELETE /api/flashcard-topics/{id}.
func (s *Server) handleDeleteTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	existing, err := s.store.GetTopic(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if existing.UserID != principal.UserID {
		response.Forbidden(w, "not your topic", s.logger)
		return
	}

	if err := s.store.DeleteTopic(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Deleted(w, s.logger)
}

// === Flashcards ===

// handleListFlashcards returns the caller's flashcards across all topics.
// GET /api/flashcards.
func (s *Server) handleListFlashcards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	flashcards, err := s.store.ListFlashcardsByUser(ctx, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatFlashcards(flashcards), s.logger)
}

// handleCreateFlashcard creates a flashcard owned by the caller.
// POST /api/flashcards.
func (s *Server) handleCreateFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	var req CreateFlashcardRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if req.TopicID.Value() == nil {
		response.BadRequest(w, "topicId is required", s.logger)
		return
	}

	flashcard, err := s.store.CreateFlashcard(ctx, &domain.Flashcard{
		Front:      req.Front,
		Back:       req.Back,
		TopicID:    *req.TopicID.Value(),
		CategoryID: req.CategoryID.Value(),
		Favorite:   req.Favorite,
		UserID:     principal.UserID,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatFlashcard(flashcard), s.logger)
}

// handleUpdateFlashcard updates a flashcard, taking the favorite-only
// shortcut when the body carries favorite but neither side of the card.
// PUT /api/flashcards/{id}.
func (s *Server) handleUpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var req UpdateFlashcardRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}

	existing, err := s.store.GetFlashcard(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if req.Favorite != nil && req.Front == nil && req.Back == nil {
		err = s.store.UpdateFlashcardFavorite(ctx, id, *req.Favorite)
	} else {
		if req.Front == nil || *req.Front == "" || req.Back == nil || *req.Back == "" {
			response.BadRequest(w, "front and back are required", s.logger)
			return
		}
		favorite := existing.Favorite
		if req.Favorite != nil {
			favorite = *req.Favorite
		}
		err = s.store.UpdateFlashcard(ctx, id, *req.Front, *req.Back, favorite)
	}
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	flashcard, err := s.store.GetFlashcard(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatFlashcard(flashcard), s.logger)
}

// handleDeleteFlashcard removes a flashcard.
// DELETE /api/flashcards/{id}.
func (s *Server) handleDeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	if err := s.store.DeleteFlashcard(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Deleted(w, s.logger)
}
