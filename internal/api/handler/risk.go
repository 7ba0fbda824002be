package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/catalog"
	"github.com/sensetheworld/sensetheworld/internal/profile"
	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// RiskHandler handles risk assessment endpoints.
type RiskHandler struct {
	catalogService *catalog.Service
	profileService *profile.Service
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(catalogService *catalog.Service, profileService *profile.Service) *RiskHandler {
	return &RiskHandler{
		catalogService: catalogService,
		profileService: profileService,
	}
}

// AssessRisk handles POST /v1/risk:assess.
//
// The activity and destination come either from the catalog (via
// activityId) or inline. The profile resolution order is: inline
// profile, then the authenticated user's stored profile, then the
// default profile.
func (h *RiskHandler) AssessRisk(w http.ResponseWriter, r *http.Request) {
	var req models.RiskAssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var (
		activity    risk.Activity
		destination risk.Destination
	)

	switch {
	case req.ActivityID != "":
		if req.Activity != nil || req.Destination != nil {
			response.BadRequest(w, r, "activityId and inline activity are mutually exclusive", nil)
			return
		}
		act, err := h.catalogService.GetActivity(req.ActivityID)
		if err != nil {
			if errors.Is(err, catalog.ErrActivityNotFound) {
				response.NotFound(w, r, "activity")
				return
			}
			response.InternalError(w, r, "internal server error")
			return
		}
		country, err := h.catalogService.GetCountry(act.CountryISO)
		if err != nil {
			response.InternalError(w, r, "internal server error")
			return
		}
		activity = act.RiskInput()
		destination = country.Destination()

	case req.Activity != nil:
		activity = req.Activity.ToDomain()
		if req.Destination != nil {
			destination = req.Destination.ToDomain()
		}

	default:
		response.BadRequest(w, r, "either activityId or activity is required", []models.FieldError{
			{Field: "activityId", Message: "required when no inline activity is given"},
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

	assessment := risk.Assess(activity, destination, travelerProfile)
	response.JSON(w, r, http.StatusOK, models.NewRiskAssessment(assessment))
}
