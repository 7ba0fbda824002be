package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/profile"
	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// ProfileHandler handles traveler profile endpoints.
type ProfileHandler struct {
	profileService *profile.Service
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /v1/me/profile - get the traveler profile.
// A user without a stored profile gets the default profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	p, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewProfile(p))
}

// UpsertProfile handles PUT /v1/me/profile - create or update the profile.
func (h *ProfileHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	var input models.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	traveler := risk.TravelerProfile{
		MobilityLevel: risk.MobilityLevel(input.MobilityLevel),
		Conditions:    input.Conditions,
		Triggers:      input.Triggers,
	}
	if input.MobilityLevel == "" {
		traveler.MobilityLevel = risk.MobilityNone
	}

	p, err := h.profileService.Upsert(r.Context(), userID, traveler)
	if err != nil {
		if errors.Is(err, profile.ErrInvalidMobilityLevel) {
			response.BadRequest(w, r, "validation failed", []models.FieldError{
				{Field: "mobilityLevel", Message: "must be one of: none, low, moderate, high"},
			})
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewProfile(p))
}

// DeleteProfile handles DELETE /v1/me/profile - reset to the default.
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	if err := h.profileService.Clear(r.Context(), userID); err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	response.NoContent(w, r)
}
