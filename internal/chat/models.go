// Package chat provides the travel assistant chat service backed by a
// generative language model.
package chat

import (
	"context"
	"errors"
)

// Chat errors.
var (
	ErrEmptyMessage       = errors.New("chat message is empty")
	ErrMessageTooLong     = errors.New("chat message too long")
	ErrModelUnavailable   = errors.New("language model unavailable")
	ErrEmptyModelResponse = errors.New("language model returned no text")
)

// Reply is the assistant's answer to a chat message.
type Reply struct {
	// Text is the assistant's reply, trimmed of surrounding whitespace.
	Text string

	// Model identifies the model that produced the reply.
	Model string
}

// Provider generates assistant replies from a composed prompt.
type Provider interface {
	// Generate produces a text completion for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Model returns the provider's model identifier.
	Model() string
}
