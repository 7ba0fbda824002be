package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/catalog"
)

// DestinationHandler handles destination catalog endpoints.
type DestinationHandler struct {
	catalogService *catalog.Service
}

// NewDestinationHandler creates a new DestinationHandler.
func NewDestinationHandler(catalogService *catalog.Service) *DestinationHandler {
	return &DestinationHandler{catalogService: catalogService}
}

// ListDestinations handles GET /v1/destinations.
func (h *DestinationHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	countries := h.catalogService.ListCountries()

	list := models.CountryList{Items: make([]models.Country, 0, len(countries))}
	for _, c := range countries {
		list.Items = append(list.Items, models.NewCountry(c))
	}
	response.JSON(w, r, http.StatusOK, list)
}

// GetDestination handles GET /v1/destinations/{countryIso}.
func (h *DestinationHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	iso := chi.URLParam(r, "countryIso")

	country, err := h.catalogService.GetCountry(iso)
	if err != nil {
		if errors.Is(err, catalog.ErrCountryNotFound) {
			response.NotFound(w, r, "country")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewCountry(country))
}

// ListDestinationActivities handles GET /v1/destinations/{countryIso}/activities.
func (h *DestinationHandler) ListDestinationActivities(w http.ResponseWriter, r *http.Request) {
	iso := chi.URLParam(r, "countryIso")

	activities, err := h.catalogService.ListActivities(iso)
	if err != nil {
		if errors.Is(err, catalog.ErrCountryNotFound) {
			response.NotFound(w, r, "country")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	list := models.ActivityList{Items: make([]models.Activity, 0, len(activities))}
	for _, a := range activities {
		list.Items = append(list.Items, models.NewActivity(a))
	}
	response.JSON(w, r, http.StatusOK, list)
}

// GetActivity handles GET /v1/activities/{activityId}.
func (h *DestinationHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "activityId")

	activity, err := h.catalogService.GetActivity(id)
	if err != nil {
		if errors.Is(err, catalog.ErrActivityNotFound) {
			response.NotFound(w, r, "activity")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewActivity(activity))
}
