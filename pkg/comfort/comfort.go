// Package comfort scores how comfortable an activity is likely to be
// for a traveler, as a clamped 0-100 value. It is deliberately
// self-contained so clients can score ad-hoc data without the full risk
// engine.
package comfort

import (
	"math"
	"strings"
)

// Penalty weights applied to the base score of 100.
const (
	mobilityPenaltyPerLevel = 20
	triggerConflictPenalty  = 15
	pollenAsthmaPenalty     = 20
	strobeEpilepsyPenalty   = 30
)

// mobilityLevels orders mobility support from least to most.
var mobilityLevels = []string{"none", "low", "moderate", "high"}

// Profile describes the traveler attributes relevant to comfort.
type Profile struct {
	// MobilityLevel is the traveler's mobility support level
	// (none, low, moderate, high).
	MobilityLevel string

	// Conditions are health conditions, matched case-insensitively.
	Conditions []string

	// Triggers are sensory or environmental triggers to avoid.
	Triggers []string
}

// Activity describes the activity attributes relevant to comfort.
type Activity struct {
	// MobilityRequired is the mobility level the activity demands.
	MobilityRequired string

	// Triggers are triggers the activity is known to present.
	Triggers []string

	// Environment are free-form environment tags, such as
	// "high-pollen" or "strobe-lights".
	Environment []string
}

// Score computes the comfort score for an activity against a profile.
// A perfect fit scores 100; each mismatch subtracts a fixed penalty and
// the result is clamped to [0, 100].
func Score(profile Profile, activity Activity) int {
	score := 100.0

	// Mobility penalty: 20 points per level the activity demands
	// beyond what the traveler has.
	if activity.MobilityRequired != "" && profile.MobilityLevel != "" {
		userLevel := mobilityIndex(profile.MobilityLevel)
		reqLevel := mobilityIndex(activity.MobilityRequired)
		if reqLevel > userLevel {
			score -= float64(reqLevel-userLevel) * mobilityPenaltyPerLevel
		}
	}

	// Trigger penalty: 15 points per activity trigger the traveler
	// is sensitive to.
	for _, t := range activity.Triggers {
		if containsFold(profile.Triggers, t) {
			score -= triggerConflictPenalty
		}
	}

	// Condition-specific environment penalties.
	if containsFold(profile.Conditions, "asthma") && containsFold(activity.Environment, "high-pollen") {
		score -= pollenAsthmaPenalty
	}
	if containsFold(profile.Conditions, "epilepsy") && containsFold(activity.Environment, "strobe-lights") {
		score -= strobeEpilepsyPenalty
	}

	return clamp(score)
}

// mobilityIndex returns the ordering of a mobility level, -1 when the
// level is unknown.
func mobilityIndex(level string) int {
	level = strings.ToLower(strings.TrimSpace(level))
	for i, l := range mobilityLevels {
		if l == level {
			return i
		}
	}
	return -1
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func clamp(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}
