// Package profile provides traveler profile storage and management.
//
// A traveler profile holds only self-declared accessibility preferences:
// a mobility level and free-form condition/trigger names chosen from a
// suggested list. No medical records, location history, or identity data
// are stored here; authentication identity lives with the hosted auth
// service.
package profile

import (
	"time"

	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// Profile is a stored traveler profile.
type Profile struct {
	// UserID is the owning user's identifier from the auth service.
	UserID string

	// Traveler holds the self-reported attributes the risk engine
	// consumes.
	Traveler risk.TravelerProfile

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Default returns a profile with all-empty defaults for a user: no
// mobility concerns, no conditions, no triggers.
func Default(userID string) *Profile {
	now := time.Now()
	return &Profile{
		UserID:    userID,
		Traveler:  risk.DefaultProfile(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MobilityOption pairs a mobility level with its display label.
type MobilityOption struct {
	Value risk.MobilityLevel
	Label string
}

// MobilityOptions returns the selectable mobility levels in scale order.
func MobilityOptions() []MobilityOption {
	return []MobilityOption{
		{Value: risk.MobilityNone, Label: "No mobility issues"},
		{Value: risk.MobilityLow, Label: "Minor mobility concerns"},
		{Value: risk.MobilityModerate, Label: "Moderate mobility needs"},
		{Value: risk.MobilityHigh, Label: "Significant mobility requirements"},
	}
}

// CommonConditions returns the suggested health condition names.
func CommonConditions() []string {
	return []string{
		"Asthma",
		"Diabetes",
		"Epilepsy",
		"Heart condition",
		"Anxiety",
		"Chronic illness",
		"Visual impairment",
		"Hearing impairment",
	}
}

// CommonTriggers returns the suggested environmental trigger names.
func CommonTriggers() []string {
	return []string{
		"Heat",
		"Altitude",
		"Noise",
		"Strobe lights",
		"Crowds",
		"Pollution",
		"Allergens",
		"Cold weather",
	}
}

// ValidMobilityLevel reports whether the given value is one of the four
// enumerated mobility levels.
func ValidMobilityLevel(level risk.MobilityLevel) bool {
	switch level {
	case risk.MobilityNone, risk.MobilityLow, risk.MobilityModerate, risk.MobilityHigh:
		return true
	}
	return false
}
