package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/voice"
)

// VoiceHandler handles voice command interpretation endpoints.
type VoiceHandler struct {
	interpreter *voice.Interpreter
}

// NewVoiceHandler creates a new VoiceHandler.
func NewVoiceHandler(interpreter *voice.Interpreter) *VoiceHandler {
	return &VoiceHandler{interpreter: interpreter}
}

// InterpretVoice handles POST /v1/voice:interpret.
// Unrecognized transcripts produce an empty command list, not an error.
func (h *VoiceHandler) InterpretVoice(w http.ResponseWriter, r *http.Request) {
	var req models.VoiceInterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if strings.TrimSpace(req.Transcript) == "" {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "transcript", Message: "must not be empty"},
		})
		return
	}

	cmds := h.interpreter.Interpret(req.Transcript, req.CurrentPath)
	response.JSON(w, r, http.StatusOK, models.NewVoiceInterpretResponse(cmds))
}
