package models

import (
	"github.com/sensetheworld/sensetheworld/internal/profile"
)

// ProfileInput is the request body for PUT /v1/me/profile.
type ProfileInput struct {
	MobilityLevel string   `json:"mobilityLevel"`
	Conditions    []string `json:"conditions"`
	Triggers      []string `json:"triggers"`
}

// Profile is the traveler profile in API shape.
type Profile struct {
	UserID        string    `json:"userId"`
	MobilityLevel string    `json:"mobilityLevel"`
	Conditions    []string  `json:"conditions"`
	Triggers      []string  `json:"triggers"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}

// NewProfile converts a domain profile to the API shape.
func NewProfile(p *profile.Profile) Profile {
	return Profile{
		UserID:        p.UserID,
		MobilityLevel: string(p.Traveler.MobilityLevel),
		Conditions:    p.Traveler.Conditions,
		Triggers:      p.Traveler.Triggers,
		CreatedAt:     Timestamp(p.CreatedAt),
		UpdatedAt:     Timestamp(p.UpdatedAt),
	}
}
