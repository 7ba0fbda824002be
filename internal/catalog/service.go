package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the catalog service.
type ServiceConfig struct {
	// Provider is the advisory provider. Optional: without one the
	// service serves the seed data unchanged.
	Provider AdvisoryProvider

	// Logger for service operations.
	Logger zerolog.Logger

	// AdvisoryTTL is how long fetched advisories stay fresh
	// (default: 6 hours).
	AdvisoryTTL time.Duration

	// StaleIfErrorTTL allows serving stale advisories on provider errors
	// (default: 48 hours).
	StaleIfErrorTTL time.Duration

	// Countries and Activities override the seed data, mainly for tests.
	Countries  []*Country
	Activities []*Activity
}

// Service provides read-only catalog lookups with advisory refresh.
type Service struct {
	provider        AdvisoryProvider
	logger          zerolog.Logger
	advisoryTTL     time.Duration
	staleIfErrorTTL time.Duration

	mu             sync.RWMutex
	countries      map[string]*Country
	activities     map[string]*Activity
	byCountry      map[string][]*Activity
	advisoriesAt   time.Time
	advisoryExpiry time.Time
}

// NewService creates a new catalog service seeded with reference data.
func NewService(cfg ServiceConfig) *Service {
	advisoryTTL := cfg.AdvisoryTTL
	if advisoryTTL == 0 {
		advisoryTTL = 6 * time.Hour
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 48 * time.Hour
	}

	countries := cfg.Countries
	if countries == nil {
		countries = SeedCountries()
	}

	activities := cfg.Activities
	if activities == nil {
		activities = SeedActivities()
	}

	s := &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		advisoryTTL:     advisoryTTL,
		staleIfErrorTTL: staleIfErrorTTL,
		countries:       make(map[string]*Country, len(countries)),
		activities:      make(map[string]*Activity, len(activities)),
		byCountry:       make(map[string][]*Activity),
	}

	for _, c := range countries {
		s.countries[c.ISO] = c
	}
	for _, a := range activities {
		s.activities[a.ID] = a
		s.byCountry[a.CountryISO] = append(s.byCountry[a.CountryISO], a)
	}

	return s
}

// ListCountries returns all countries ordered by name.
func (s *Service) ListCountries() []*Country {
	s.mu.RLock()
	defer s.mu.RUnlock()

	countries := make([]*Country, 0, len(s.countries))
	for _, c := range s.countries {
		countries = append(countries, c)
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries
}

// GetCountry returns a country by ISO code.
func (s *Service) GetCountry(iso string) (*Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.countries[iso]
	if !ok {
		return nil, ErrCountryNotFound
	}
	return c, nil
}

// ListActivities returns the activities available in a country, in seed
// order.
func (s *Service) ListActivities(iso string) ([]*Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.countries[iso]; !ok {
		return nil, ErrCountryNotFound
	}
	return s.byCountry[iso], nil
}

// GetActivity returns an activity by ID.
func (s *Service) GetActivity(id string) (*Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[id]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return a, nil
}

// RefreshAdvisories fetches fresh advisories from the provider and
// merges them over the catalog. Countries the provider does not mention
// keep their current advisory fields. Without a configured provider this
// is a no-op.
func (s *Service) RefreshAdvisories(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}

	advisories, err := s.provider.FetchAdvisories(ctx)
	if err != nil {
		s.logger.Error().Err(err).
			Str("provider", s.provider.Name()).
			Msg("failed to fetch advisories")

		s.mu.RLock()
		stale := !s.advisoriesAt.IsZero() &&
			time.Now().Before(s.advisoriesAt.Add(s.staleIfErrorTTL))
		s.mu.RUnlock()

		if stale {
			s.logger.Warn().
				Time("fetched_at", s.advisoriesAt).
				Msg("serving stale advisory data due to provider error")
			return nil
		}
		return ErrProviderUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Countries are replaced, never mutated in place: pointers handed
	// out by earlier lookups stay stable snapshots for their readers.
	applied := 0
	for _, adv := range advisories {
		c, ok := s.countries[adv.ISO]
		if !ok {
			continue
		}
		updated := *c
		updated.Outbreaks = adv.Outbreaks
		if adv.WaterSafety != "" {
			updated.WaterSafety = adv.WaterSafety
		}
		if adv.BaselineRisk != "" {
			updated.BaselineRisk = adv.BaselineRisk
		}
		s.countries[adv.ISO] = &updated
		applied++
	}

	now := time.Now()
	s.advisoriesAt = now
	s.advisoryExpiry = now.Add(s.advisoryTTL)

	s.logger.Info().
		Int("advisories", len(advisories)).
		Int("applied", applied).
		Time("expires_at", s.advisoryExpiry).
		Msg("advisories refreshed")

	return nil
}

// AdvisoriesFresh reports whether the last advisory refresh is still
// within its TTL.
func (s *Service) AdvisoriesFresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.advisoriesAt.IsZero() && time.Now().Before(s.advisoryExpiry)
}

// AdvisoriesFetchedAt returns when advisories were last refreshed, zero
// if never.
func (s *Service) AdvisoriesFetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.advisoriesAt
}
