package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/chat"
	"github.com/sensetheworld/sensetheworld/internal/profile"
	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// ChatHandler handles assistant chat endpoints.
type ChatHandler struct {
	chatService    *chat.Service
	profileService *profile.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *chat.Service, profileService *profile.Service) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		profileService: profileService,
	}
}

// SendMessage handles POST /v1/chat. The stored traveler profile is
// included in the model context; an inline profile overrides it.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var travelerProfile *risk.TravelerProfile
	if req.Profile != nil {
		travelerProfile = req.Profile.ToDomain()
	} else {
		stored, err := h.profileService.Get(r.Context(), userID)
		if err != nil {
			response.InternalError(w, r, "internal server error")
			return
		}
		travelerProfile = &stored.Traveler
	}

	reply, err := h.chatService.Send(r.Context(), req.Message, travelerProfile)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			response.BadRequest(w, r, "validation failed", []models.FieldError{
				{Field: "message", Message: "must not be empty"},
			})
		case errors.Is(err, chat.ErrMessageTooLong):
			response.BadRequest(w, r, "validation failed", []models.FieldError{
				{Field: "message", Message: "exceeds maximum length"},
			})
		case errors.Is(err, chat.ErrModelUnavailable), errors.Is(err, chat.ErrEmptyModelResponse):
			response.ServiceUnavailable(w, r, "assistant is temporarily unavailable")
		default:
			response.InternalError(w, r, "internal server error")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, models.ChatResponse{
		Reply: reply.Text,
		Model: reply.Model,
	})
}
