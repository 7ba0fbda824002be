// Package risk provides the traveler risk assessment engine.
//
// The engine combines a traveler's self-reported health profile with a
// destination's health context and an activity's accessibility and
// environmental attributes to produce a scored assessment. It is a pure
// computation: no I/O, no stored state, and it never fails. Absent or
// default profile values simply contribute no risk.
package risk

// MobilityLevel is the traveler's self-reported mobility need, as an
// ordered scale from no concerns to significant requirements.
type MobilityLevel string

const (
	MobilityNone     MobilityLevel = "none"
	MobilityLow      MobilityLevel = "low"
	MobilityModerate MobilityLevel = "moderate"
	MobilityHigh     MobilityLevel = "high"
)

// WaterSafety classifies a destination's drinking-water safety.
type WaterSafety string

const (
	WaterSafe     WaterSafety = "safe"
	WaterModerate WaterSafety = "moderate"
	WaterUnsafe   WaterSafety = "unsafe"
)

// Temperature classifies an activity's expected temperature exposure.
type Temperature string

const (
	TemperatureCool     Temperature = "cool"
	TemperatureModerate Temperature = "moderate"
	TemperatureHot      Temperature = "hot"
)

// NoiseLevel classifies an activity's expected noise exposure.
type NoiseLevel string

const (
	NoiseQuiet    NoiseLevel = "quiet"
	NoiseModerate NoiseLevel = "moderate"
	NoiseLoud     NoiseLevel = "loud"
)

// Level is the overall risk level of an assessment.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// TravelerProfile holds a traveler's self-reported health and
// accessibility attributes.
type TravelerProfile struct {
	// MobilityLevel is always one of the four enumerated values.
	MobilityLevel MobilityLevel

	// Conditions are health condition names (e.g. "Asthma", "Anxiety").
	Conditions []string

	// Triggers are environmental trigger names (e.g. "Heat", "Altitude").
	Triggers []string
}

// HasCondition reports whether the profile lists the given condition.
func (p *TravelerProfile) HasCondition(name string) bool {
	if p == nil {
		return false
	}
	for _, c := range p.Conditions {
		if c == name {
			return true
		}
	}
	return false
}

// HasTrigger reports whether the profile lists the given trigger.
func (p *TravelerProfile) HasTrigger(name string) bool {
	if p == nil {
		return false
	}
	for _, t := range p.Triggers {
		if t == name {
			return true
		}
	}
	return false
}

// DefaultProfile returns a profile with no mobility concerns and empty
// condition and trigger sets. Assessing with a nil profile is equivalent
// to assessing with this default.
func DefaultProfile() TravelerProfile {
	return TravelerProfile{
		MobilityLevel: MobilityNone,
		Conditions:    []string{},
		Triggers:      []string{},
	}
}

// Destination is a country-level health context record. It is immutable
// reference data, not user-mutable.
type Destination struct {
	// WaterSafety classifies drinking-water safety in the region.
	WaterSafety WaterSafety

	// Outbreaks lists active outbreak descriptions, possibly empty.
	Outbreaks []string

	// BaselineRisk is a precomputed descriptor for display. The engine
	// does not consume it.
	BaselineRisk Level
}

// Accessibility describes physical access attributes of an activity venue.
type Accessibility struct {
	WheelchairAccessible bool
	HasElevator          bool
	Stairs               bool
	StepFreeAccess       bool
}

// Environmental describes the environmental exposure of an activity.
type Environmental struct {
	// AltitudeMeters is the venue altitude in meters, never negative.
	AltitudeMeters float64

	Temperature Temperature
	NoiseLevel  NoiseLevel
}

// Activity is a single visitable experience at a destination.
type Activity struct {
	Accessibility Accessibility
	Environmental Environmental
}

// Assessment is the scored output of combining a profile, destination,
// and activity. Reasons and mitigations are positionally paired: the i-th
// mitigation addresses the i-th reason. An Assessment is created fresh on
// each evaluation and never mutated afterwards.
type Assessment struct {
	Level       Level
	Score       int
	Reasons     []string
	Mitigations []string
}
