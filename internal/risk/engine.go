package risk

// Scoring weights and thresholds. Contributions are additive and
// commutative; the check order only determines the order of the paired
// reasons and mitigations in the result.
const (
	weightAltitudeTrigger    = 30
	weightHeatTrigger        = 20
	weightNoiseTrigger       = 15
	weightStairsNoElevator   = 25
	weightNotWheelchair      = 20
	weightOutbreaks          = 15
	weightUnsafeWater        = 10
	weightAsthmaAltitude     = 15
	weightAnxietyNoise       = 10

	altitudeTriggerMeters = 2000
	asthmaAltitudeMeters  = 1500

	highThreshold     = 50
	moderateThreshold = 25
)

// Condition and trigger names the engine cross-checks against a profile.
const (
	TriggerAltitude = "Altitude"
	TriggerHeat     = "Heat"
	TriggerNoise    = "Noise"

	ConditionAsthma  = "Asthma"
	ConditionAnxiety = "Anxiety"
)

// Assess computes the risk assessment for one activity at a destination,
// personalized by the traveler's profile. A nil profile is treated as the
// default profile: none of the personalization-dependent rules fire.
//
// The score is an unbounded non-negative accumulator; it is never clamped.
func Assess(activity Activity, destination Destination, profile *TravelerProfile) Assessment {
	var (
		score       int
		reasons     []string
		mitigations []string
	)

	add := func(points int, reason, mitigation string) {
		score += points
		reasons = append(reasons, reason)
		mitigations = append(mitigations, mitigation)
	}

	// Environmental triggers.
	if activity.Environmental.AltitudeMeters > altitudeTriggerMeters && profile.HasTrigger(TriggerAltitude) {
		add(weightAltitudeTrigger,
			"High altitude may trigger symptoms",
			"Acclimatize gradually, stay hydrated, consult doctor about altitude medication")
	}

	if activity.Environmental.Temperature == TemperatureHot && profile.HasTrigger(TriggerHeat) {
		add(weightHeatTrigger,
			"High temperatures detected",
			"Stay in shade, drink plenty of water, avoid midday sun")
	}

	if activity.Environmental.NoiseLevel == NoiseLoud && profile.HasTrigger(TriggerNoise) {
		add(weightNoiseTrigger,
			"High noise levels present",
			"Bring noise-cancelling headphones or earplugs")
	}

	// Accessibility mismatch. Both checks may fire and stack.
	if profile != nil && (profile.MobilityLevel == MobilityHigh || profile.MobilityLevel == MobilityModerate) {
		if activity.Accessibility.Stairs && !activity.Accessibility.HasElevator {
			add(weightStairsNoElevator,
				"Multiple stairs without elevator access",
				"Contact venue in advance to discuss accessibility options")
		}

		if !activity.Accessibility.WheelchairAccessible {
			add(weightNotWheelchair,
				"Limited wheelchair accessibility",
				"Research alternative entrances or assisted access")
		}
	}

	// Destination health context.
	if len(destination.Outbreaks) > 0 {
		add(weightOutbreaks,
			"Active outbreaks: "+joinOutbreaks(destination.Outbreaks),
			"Use insect repellent, avoid standing water, consult travel clinic")
	}

	if destination.WaterSafety == WaterUnsafe {
		add(weightUnsafeWater,
			"Water safety concerns in region",
			"Drink only bottled water, avoid ice in drinks")
	}

	// Condition-specific cross-checks.
	if profile.HasCondition(ConditionAsthma) && activity.Environmental.AltitudeMeters > asthmaAltitudeMeters {
		add(weightAsthmaAltitude,
			"Altitude may affect respiratory conditions",
			"Bring all medications, have rescue inhaler accessible")
	}

	if profile.HasCondition(ConditionAnxiety) && activity.Environmental.NoiseLevel == NoiseLoud {
		add(weightAnxietyNoise,
			"Crowded/loud environment may cause anxiety",
			"Visit during off-peak hours, plan quiet breaks nearby")
	}

	var level Level
	switch {
	case score >= highThreshold:
		level = LevelHigh
	case score >= moderateThreshold:
		level = LevelModerate
	default:
		level = LevelLow
	}

	// A clean low-risk result still gets one reason/mitigation pair so the
	// caller always has something to show. Only fires when no rule matched.
	if level == LevelLow && len(reasons) == 0 {
		reasons = append(reasons, "Activity matches your profile well")
		mitigations = append(mitigations, "Enjoy your experience! Keep emergency contacts handy.")
	}

	return Assessment{
		Level:       level,
		Score:       score,
		Reasons:     reasons,
		Mitigations: mitigations,
	}
}

func joinOutbreaks(outbreaks []string) string {
	s := outbreaks[0]
	for _, o := range outbreaks[1:] {
		s += ", " + o
	}
	return s
}
