package models

// ChatRequest is the request body for POST /v1/chat.
type ChatRequest struct {
	Message string `json:"message"`

	// Profile optionally overrides the stored traveler profile.
	Profile *TravelerProfileInput `json:"profile,omitempty"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model,omitempty"`
}
