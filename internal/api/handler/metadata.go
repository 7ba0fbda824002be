package handler

import (
	"net/http"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/profile"
	"github.com/sensetheworld/sensetheworld/internal/risk"
	"github.com/sensetheworld/sensetheworld/internal/voice"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct {
	interpreter *voice.Interpreter
}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler(interpreter *voice.Interpreter) *MetadataHandler {
	return &MetadataHandler{interpreter: interpreter}
}

// GetEnums handles GET /v1/metadata/enums - enum values used by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	mobility := make([]models.MobilityOption, 0, 4)
	for _, opt := range profile.MobilityOptions() {
		mobility = append(mobility, models.MobilityOption{
			Value: string(opt.Value),
			Label: opt.Label,
		})
	}

	enums := models.Enums{
		MobilityLevels: mobility,
		WaterSafety: []string{
			string(risk.WaterSafe),
			string(risk.WaterModerate),
			string(risk.WaterUnsafe),
		},
		Temperatures: []string{
			string(risk.TemperatureCool),
			string(risk.TemperatureModerate),
			string(risk.TemperatureHot),
		},
		NoiseLevels: []string{
			string(risk.NoiseQuiet),
			string(risk.NoiseModerate),
			string(risk.NoiseLoud),
		},
		RiskLevels: []string{
			string(risk.LevelLow),
			string(risk.LevelModerate),
			string(risk.LevelHigh),
		},
		Conditions: profile.CommonConditions(),
		Triggers:   profile.CommonTriggers(),
	}
	response.JSON(w, r, http.StatusOK, enums)
}

// ListPageDescriptions handles GET /v1/metadata/pages - the spoken page
// descriptions used by the voice interface.
func (h *MetadataHandler) ListPageDescriptions(w http.ResponseWriter, r *http.Request) {
	paths := []string{
		voice.PathHome,
		voice.PathProfile,
		voice.PathCommunity,
		voice.PathChat,
		voice.PathDestination,
	}

	list := models.PageDescriptionList{Items: make([]models.PageDescription, 0, len(paths))}
	for _, p := range paths {
		list.Items = append(list.Items, models.PageDescription{
			Path:        p,
			Description: h.interpreter.Describe(p),
		})
	}
	response.JSON(w, r, http.StatusOK, list)
}
