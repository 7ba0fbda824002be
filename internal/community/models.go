// Package community provides the traveler community member directory.
package community

import (
	"context"
	"errors"
	"time"
)

// Directory errors.
var (
	ErrMemberNotFound = errors.New("community member not found")
	ErrMemberExists   = errors.New("user already has a community membership")
)

// Member is a public community directory entry. Members opt in
// explicitly; nothing is published from a traveler profile without an
// explicit create.
type Member struct {
	// ID is the unique member identifier (format: mem_XXXX).
	ID string

	// UserID is the owning user's identifier from the auth service.
	UserID string

	// DisplayName is the public name shown in the directory.
	DisplayName string

	// Bio is a short free-text introduction, possibly empty.
	Bio string

	// Interests are travel interest tags (e.g. "Accessible hiking").
	Interests []string

	// AccessibilityNotes is optional free text about the member's
	// accessibility context, shared to help others connect.
	AccessibilityNotes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository defines the interface for member storage.
type Repository interface {
	// List returns all members ordered by creation time, newest first.
	List(ctx context.Context) ([]*Member, error)

	// Get retrieves a member by ID.
	Get(ctx context.Context, id string) (*Member, error)

	// GetByUser retrieves the member entry owned by a user.
	GetByUser(ctx context.Context, userID string) (*Member, error)

	// Create stores a new member.
	Create(ctx context.Context, m *Member) error

	// Delete removes a member by ID.
	Delete(ctx context.Context, id string) error
}
