package profile

import (
	"context"
	"errors"
)

// ErrProfileNotFound is returned when no profile exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// Repository defines the interface for traveler profile storage.
type Repository interface {
	// Get retrieves the profile for a user.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Upsert creates or replaces the profile for a user.
	Upsert(ctx context.Context, p *Profile) error

	// Delete removes the profile for a user. Deleting a missing profile
	// is not an error.
	Delete(ctx context.Context, userID string) error
}
