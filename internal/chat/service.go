package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sensetheworld/sensetheworld/internal/risk"
)

const maxMessageLen = 4000

// systemPrompt frames every conversation. The traveler context is
// appended per request so replies account for mobility, conditions,
// and sensory triggers.
const systemPrompt = `You are SenseTheWorld+, an empathetic travel and wellness assistant.
Be concise, supportive, and always suggest safe, accessible travel ideas.`

// Service answers traveler questions, grounding replies in the
// traveler's stored profile.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// ServiceConfig holds configuration for the chat service.
type ServiceConfig struct {
	Provider Provider
	Logger   zerolog.Logger
}

// NewService creates a new chat service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger.With().Str("component", "chat_service").Logger(),
	}
}

// Send forwards a traveler message to the model together with the
// traveler's profile context and returns the reply. A nil profile is
// treated as the default profile.
func (s *Service) Send(ctx context.Context, message string, profile *risk.TravelerProfile) (*Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len(message) > maxMessageLen {
		return nil, ErrMessageTooLong
	}
	if profile == nil {
		p := risk.DefaultProfile()
		profile = &p
	}

	prompt := composePrompt(message, profile)

	text, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("model generation failed")
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyModelResponse
	}

	return &Reply{
		Text:  text,
		Model: s.provider.Model(),
	}, nil
}

func composePrompt(message string, profile *risk.TravelerProfile) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nUser message: ")
	b.WriteString(message)
	b.WriteString("\n\nUser profile:\n")
	fmt.Fprintf(&b, "- Mobility level: %s\n", profile.MobilityLevel)
	fmt.Fprintf(&b, "- Conditions: %s\n", joinOrNone(profile.Conditions))
	fmt.Fprintf(&b, "- Triggers: %s\n", joinOrNone(profile.Triggers))
	b.WriteString("\nRespond with supportive, concise travel guidance.")
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
