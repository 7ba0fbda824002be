package models

import "github.com/sensetheworld/sensetheworld/internal/risk"

// TravelerProfileInput is an inline traveler profile for assessments.
type TravelerProfileInput struct {
	MobilityLevel string   `json:"mobilityLevel"`
	Conditions    []string `json:"conditions"`
	Triggers      []string `json:"triggers"`
}

// ToDomain converts the input to the domain profile. Unset mobility
// defaults to "none".
func (in *TravelerProfileInput) ToDomain() *risk.TravelerProfile {
	if in == nil {
		return nil
	}
	p := risk.DefaultProfile()
	if in.MobilityLevel != "" {
		p.MobilityLevel = risk.MobilityLevel(in.MobilityLevel)
	}
	if in.Conditions != nil {
		p.Conditions = in.Conditions
	}
	if in.Triggers != nil {
		p.Triggers = in.Triggers
	}
	return &p
}

// AccessibilityInput describes an activity's accessibility features.
type AccessibilityInput struct {
	WheelchairAccessible bool `json:"wheelchairAccessible"`
	HasElevator          bool `json:"hasElevator"`
	Stairs               bool `json:"stairs"`
	StepFreeAccess       bool `json:"stepFreeAccess"`
}

// EnvironmentalInput describes an activity's environment.
type EnvironmentalInput struct {
	AltitudeMeters float64 `json:"altitudeMeters"`
	Temperature    string  `json:"temperature"`
	NoiseLevel     string  `json:"noiseLevel"`
}

// ActivityInput is an inline activity for assessments.
type ActivityInput struct {
	Accessibility AccessibilityInput `json:"accessibility"`
	Environmental EnvironmentalInput `json:"environmental"`
}

// ToDomain converts the input to the domain activity.
func (in *ActivityInput) ToDomain() risk.Activity {
	return risk.Activity{
		Accessibility: risk.Accessibility{
			WheelchairAccessible: in.Accessibility.WheelchairAccessible,
			HasElevator:          in.Accessibility.HasElevator,
			Stairs:               in.Accessibility.Stairs,
			StepFreeAccess:       in.Accessibility.StepFreeAccess,
		},
		Environmental: risk.Environmental{
			AltitudeMeters: in.Environmental.AltitudeMeters,
			Temperature:    risk.Temperature(in.Environmental.Temperature),
			NoiseLevel:     risk.NoiseLevel(in.Environmental.NoiseLevel),
		},
	}
}

// DestinationInput is an inline destination for assessments.
type DestinationInput struct {
	WaterSafety  string   `json:"waterSafety"`
	Outbreaks    []string `json:"outbreaks"`
	BaselineRisk string   `json:"baselineRisk"`
}

// ToDomain converts the input to the domain destination.
func (in *DestinationInput) ToDomain() risk.Destination {
	return risk.Destination{
		WaterSafety:  risk.WaterSafety(in.WaterSafety),
		Outbreaks:    in.Outbreaks,
		BaselineRisk: risk.Level(in.BaselineRisk),
	}
}

// RiskAssessRequest is the request body for POST /v1/risk:assess.
// Either ActivityID references a catalog activity, or Activity and
// Destination are provided inline. An inline Profile overrides the
// stored profile of the authenticated user.
type RiskAssessRequest struct {
	ActivityID  string                `json:"activityId,omitempty"`
	Activity    *ActivityInput        `json:"activity,omitempty"`
	Destination *DestinationInput     `json:"destination,omitempty"`
	Profile     *TravelerProfileInput `json:"profile,omitempty"`
}

// RiskAssessment is the response body for a risk assessment.
type RiskAssessment struct {
	Level       string   `json:"level"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons"`
	Mitigations []string `json:"mitigations"`
}

// NewRiskAssessment converts a domain assessment to the API shape.
func NewRiskAssessment(a risk.Assessment) RiskAssessment {
	return RiskAssessment{
		Level:       string(a.Level),
		Score:       a.Score,
		Reasons:     a.Reasons,
		Mitigations: a.Mitigations,
	}
}
