package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/profile"
	"github.com/sensetheworld/sensetheworld/pkg/comfort"
)

// ComfortHandler handles comfort score endpoints.
type ComfortHandler struct {
	profileService *profile.Service
}

// NewComfortHandler creates a new ComfortHandler.
func NewComfortHandler(profileService *profile.Service) *ComfortHandler {
	return &ComfortHandler{profileService: profileService}
}

// ScoreComfort handles POST /v1/comfort:score.
//
// The profile resolution order matches risk assessment: inline profile,
// then the authenticated user's stored profile, then the default
// profile.
func (h *ComfortHandler) ScoreComfort(w http.ResponseWriter, r *http.Request) {
	var req models.ComfortScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if req.Activity == nil {
		response.BadRequest(w, r, "activity is required", []models.FieldError{
			{Field: "activity", Message: "required"},
		})
		return
	}

	travelerProfile := req.Profile.ToDomain()
	if travelerProfile == nil {
		if userID := GetUserID(r.Context()); userID != "" {
			stored, err := h.profileService.Get(r.Context(), userID)
			if err != nil {
				response.InternalError(w, r, "internal server error")
				return
			}
			travelerProfile = &stored.Traveler
		}
	}

	score := comfort.Score(models.ComfortProfile(travelerProfile), req.Activity.ToComfort())
	response.JSON(w, r, http.StatusOK, models.ComfortScore{Score: score})
}
