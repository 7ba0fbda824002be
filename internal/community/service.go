package community

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Validation errors.
var (
	ErrDisplayNameRequired = fmt.Errorf("display name is required")
	ErrDisplayNameTooLong  = fmt.Errorf("display name exceeds %d characters", maxDisplayNameLen)
	ErrBioTooLong          = fmt.Errorf("bio exceeds %d characters", maxBioLen)
	ErrTooManyInterests    = fmt.Errorf("at most %d interests allowed", maxInterests)
)

const (
	maxDisplayNameLen = 80
	maxBioLen         = 1000
	maxInterests      = 10
)

// Service provides community directory operations.
type Service struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// ServiceConfig holds configuration for the community service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewService creates a new community service.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger.With().Str("component", "community_service").Logger(),
		now:    cfg.Now,
	}
}

// JoinInput holds the fields required to create a directory entry.
type JoinInput struct {
	UserID             string
	DisplayName        string
	Bio                string
	Interests          []string
	AccessibilityNotes string
}

// List returns all community members, newest first.
func (s *Service) List(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

// Get retrieves a member by ID.
func (s *Service) Get(ctx context.Context, id string) (*Member, error) {
	return s.repo.Get(ctx, id)
}

// Join creates a directory entry for a user. A user can hold at most
// one entry at a time.
func (s *Service) Join(ctx context.Context, in JoinInput) (*Member, error) {
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, ErrDisplayNameRequired
	}
	if len(name) > maxDisplayNameLen {
		return nil, ErrDisplayNameTooLong
	}
	if len(in.Bio) > maxBioLen {
		return nil, ErrBioTooLong
	}
	if len(in.Interests) > maxInterests {
		return nil, ErrTooManyInterests
	}

	interests := make([]string, 0, len(in.Interests))
	for _, tag := range in.Interests {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			interests = append(interests, tag)
		}
	}

	now := s.now().UTC()
	m := &Member{
		ID:                 "mem_" + uuid.New().String(),
		UserID:             in.UserID,
		DisplayName:        name,
		Bio:                strings.TrimSpace(in.Bio),
		Interests:          interests,
		AccessibilityNotes: strings.TrimSpace(in.AccessibilityNotes),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("member_id", m.ID).
		Str("user_id", m.UserID).
		Msg("community member joined")
	return m, nil
}

// Leave removes the directory entry owned by a user.
func (s *Service) Leave(ctx context.Context, userID string) error {
	m, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, m.ID); err != nil {
		return err
	}

	s.logger.Info().
		Str("member_id", m.ID).
		Str("user_id", userID).
		Msg("community member left")
	return nil
}
