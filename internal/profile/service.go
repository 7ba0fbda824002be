package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// ErrInvalidMobilityLevel is returned when an update carries a mobility
// level outside the enumerated scale.
var ErrInvalidMobilityLevel = errors.New("invalid mobility level")

// Service provides traveler profile operations.
type Service struct {
	repo Repository
}

// NewService creates a new profile service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves the profile for a user. A user without a stored profile
// gets the all-empty default rather than an error, matching the risk
// engine's treatment of an absent profile.
func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return Default(userID), nil
		}
		return nil, err
	}
	return p, nil
}

// Upsert creates or updates the profile for a user from the given
// traveler attributes.
func (s *Service) Upsert(ctx context.Context, userID string, traveler risk.TravelerProfile) (*Profile, error) {
	if !ValidMobilityLevel(traveler.MobilityLevel) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMobilityLevel, traveler.MobilityLevel)
	}

	if traveler.Conditions == nil {
		traveler.Conditions = []string{}
	}
	if traveler.Triggers == nil {
		traveler.Triggers = []string{}
	}

	now := time.Now()
	p := &Profile{
		UserID:    userID,
		Traveler:  traveler,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if existing, err := s.repo.Get(ctx, userID); err == nil {
		p.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Clear removes the stored profile for a user.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}
