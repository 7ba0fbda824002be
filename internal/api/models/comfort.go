package models

import (
	"github.com/sensetheworld/sensetheworld/internal/risk"
	"github.com/sensetheworld/sensetheworld/pkg/comfort"
)

// ComfortActivityInput describes the activity attributes scored for
// comfort. Environment carries free-form tags such as "high-pollen" or
// "strobe-lights".
type ComfortActivityInput struct {
	MobilityRequired string   `json:"mobilityRequired,omitempty"`
	Triggers         []string `json:"triggers,omitempty"`
	Environment      []string `json:"environment,omitempty"`
}

// ToComfort converts the input to the comfort package's activity shape.
func (in *ComfortActivityInput) ToComfort() comfort.Activity {
	return comfort.Activity{
		MobilityRequired: in.MobilityRequired,
		Triggers:         in.Triggers,
		Environment:      in.Environment,
	}
}

// ComfortScoreRequest is the request body for POST /v1/comfort:score.
// An inline Profile overrides the stored profile of the authenticated
// user.
type ComfortScoreRequest struct {
	Activity *ComfortActivityInput `json:"activity"`
	Profile  *TravelerProfileInput `json:"profile,omitempty"`
}

// ComfortScore is the response body for a comfort score.
type ComfortScore struct {
	Score int `json:"score"`
}

// ComfortProfile converts a traveler profile to the comfort package's
// profile shape.
func ComfortProfile(p *risk.TravelerProfile) comfort.Profile {
	if p == nil {
		return comfort.Profile{}
	}
	return comfort.Profile{
		MobilityLevel: string(p.MobilityLevel),
		Conditions:    p.Conditions,
		Triggers:      p.Triggers,
	}
}
