package models

import "github.com/sensetheworld/sensetheworld/internal/voice"

// VoiceInterpretRequest is the request body for POST /v1/voice:interpret.
type VoiceInterpretRequest struct {
	// Transcript is the raw recognized speech.
	Transcript string `json:"transcript"`

	// CurrentPath is the page the user is on, used for page descriptions.
	CurrentPath string `json:"currentPath"`
}

// VoiceCommand is a single interpreted command in API shape. Fields are
// populated per action: navigate sets target, speak sets text, scroll
// sets direction and offset, setVoiceEnabled sets enabled.
type VoiceCommand struct {
	Action    string `json:"action"`
	Target    string `json:"target,omitempty"`
	Text      string `json:"text,omitempty"`
	Direction string `json:"direction,omitempty"`
	Offset    int    `json:"offset,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

// VoiceInterpretResponse is the response body for voice interpretation.
type VoiceInterpretResponse struct {
	Commands []VoiceCommand `json:"commands"`
}

// NewVoiceCommand converts a domain command to the API shape.
func NewVoiceCommand(c voice.Command) VoiceCommand {
	out := VoiceCommand{Action: string(c.Action)}
	switch c.Action {
	case voice.ActionNavigate:
		out.Target = c.Path
	case voice.ActionSpeak, voice.ActionShowHelp:
		out.Text = c.Text
	case voice.ActionScroll:
		out.Direction = string(c.Direction)
		out.Offset = voice.ScrollOffset
	case voice.ActionSetVoiceEnabled:
		enabled := c.Enabled
		out.Enabled = &enabled
	}
	return out
}

// NewVoiceInterpretResponse converts domain commands to the API shape.
// Commands is always non-nil so clients get an empty array for no-ops.
func NewVoiceInterpretResponse(cmds []voice.Command) VoiceInterpretResponse {
	out := VoiceInterpretResponse{Commands: make([]VoiceCommand, 0, len(cmds))}
	for _, c := range cmds {
		out.Commands = append(out.Commands, NewVoiceCommand(c))
	}
	return out
}
