package catalog

import "github.com/sensetheworld/sensetheworld/internal/risk"

// SeedCountries returns the built-in country reference data. Advisory
// fields reflect the last bundled advisory snapshot and are refreshed at
// runtime when an advisory provider is configured.
func SeedCountries() []*Country {
	return []*Country{
		{
			ISO:                "JP",
			Name:               "Japan",
			Vaccines:           []string{"Routine vaccines", "Hepatitis A"},
			Outbreaks:          nil,
			WaterSafety:        risk.WaterSafe,
			BaselineRisk:       risk.LevelLow,
			Latitude:           35.6762,
			Longitude:          139.6503,
			WaterAccessPercent: 99.5,
			WaterAccessSource:  "OECD avg",
		},
		{
			ISO:                "IN",
			Name:               "India",
			Vaccines:           []string{"Routine vaccines", "Hepatitis A", "Typhoid", "Japanese Encephalitis"},
			Outbreaks:          []string{"Dengue (seasonal)"},
			WaterSafety:        risk.WaterUnsafe,
			BaselineRisk:       risk.LevelModerate,
			Latitude:           28.6139,
			Longitude:          77.2090,
			WaterAccessPercent: 72.3,
			WaterAccessSource:  "developing region",
		},
		{
			ISO:                "FR",
			Name:               "France",
			Vaccines:           []string{"Routine vaccines"},
			WaterSafety:        risk.WaterSafe,
			BaselineRisk:       risk.LevelLow,
			Latitude:           48.8566,
			Longitude:          2.3522,
			WaterAccessPercent: 98.9,
			WaterAccessSource:  "EU avg",
		},
		{
			ISO:                "US",
			Name:               "United States",
			Vaccines:           []string{"Routine vaccines"},
			WaterSafety:        risk.WaterSafe,
			BaselineRisk:       risk.LevelLow,
			Latitude:           40.7128,
			Longitude:          -74.0060,
			WaterAccessPercent: 99.2,
			WaterAccessSource:  "CDC model",
		},
		{
			ISO:                "GB",
			Name:               "United Kingdom",
			Vaccines:           []string{"Routine vaccines"},
			WaterSafety:        risk.WaterSafe,
			BaselineRisk:       risk.LevelLow,
			Latitude:           51.5074,
			Longitude:          -0.1278,
			WaterAccessPercent: 99.0,
			WaterAccessSource:  "UK report",
		},
		{
			ISO:                "TH",
			Name:               "Thailand",
			Vaccines:           []string{"Routine vaccines", "Hepatitis A", "Typhoid"},
			Outbreaks:          []string{"Dengue"},
			WaterSafety:        risk.WaterModerate,
			BaselineRisk:       risk.LevelModerate,
			Latitude:           13.7563,
			Longitude:          100.5018,
			WaterAccessPercent: 89.3,
			WaterAccessSource:  "Asia avg",
		},
		{
			ISO:                "BR",
			Name:               "Brazil",
			Vaccines:           []string{"Routine vaccines", "Hepatitis A", "Yellow Fever"},
			Outbreaks:          []string{"Zika (regional)"},
			WaterSafety:        risk.WaterModerate,
			BaselineRisk:       risk.LevelModerate,
			Latitude:           -23.5505,
			Longitude:          -46.6333,
			WaterAccessPercent: 86.1,
			WaterAccessSource:  "Latin America avg",
		},
		{
			ISO:                "AU",
			Name:               "Australia",
			Vaccines:           []string{"Routine vaccines"},
			WaterSafety:        risk.WaterSafe,
			BaselineRisk:       risk.LevelLow,
			Latitude:           -33.8688,
			Longitude:          151.2093,
			WaterAccessPercent: 99.8,
			WaterAccessSource:  "Australia report",
		},
	}
}

// SeedActivities returns the built-in activity reference data, keyed to
// the seed countries by ISO code.
func SeedActivities() []*Activity {
	return []*Activity{
		{
			ID:          "jp-1",
			CountryISO:  "JP",
			Name:        "Mount Takao Hiking Trail",
			Description: "Scenic hiking trail with multiple routes of varying difficulty",
			Location:    "Tokyo, Japan",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: false,
				HasElevator:          false,
				Stairs:               true,
				StepFreeAccess:       false,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 599,
				Temperature:    risk.TemperatureModerate,
				NoiseLevel:     risk.NoiseQuiet,
			},
		},
		{
			ID:          "jp-2",
			CountryISO:  "JP",
			Name:        "Tokyo National Museum",
			Description: "Japan's oldest and largest museum showcasing Japanese art",
			Location:    "Tokyo, Japan",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          true,
				Stairs:               false,
				StepFreeAccess:       true,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureModerate,
				NoiseLevel:     risk.NoiseQuiet,
			},
		},
		{
			ID:          "jp-3",
			CountryISO:  "JP",
			Name:        "Shibuya Crossing Experience",
			Description: "Visit the world's busiest pedestrian crossing",
			Location:    "Tokyo, Japan",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          false,
				Stairs:               false,
				StepFreeAccess:       true,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureModerate,
				NoiseLevel:     risk.NoiseLoud,
			},
		},
		{
			ID:          "in-1",
			CountryISO:  "IN",
			Name:        "Taj Mahal Visit",
			Description: "Explore the iconic marble mausoleum",
			Location:    "Agra, India",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          false,
				Stairs:               false,
				StepFreeAccess:       true,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 171,
				Temperature:    risk.TemperatureHot,
				NoiseLevel:     risk.NoiseModerate,
			},
		},
		{
			ID:          "in-2",
			CountryISO:  "IN",
			Name:        "Ladakh Mountain Trek",
			Description: "High-altitude trekking through Himalayan landscapes",
			Location:    "Ladakh, India",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: false,
				HasElevator:          false,
				Stairs:               true,
				StepFreeAccess:       false,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 3500,
				Temperature:    risk.TemperatureCool,
				NoiseLevel:     risk.NoiseQuiet,
			},
		},
		{
			ID:          "fr-1",
			CountryISO:  "FR",
			Name:        "Louvre Museum",
			Description: "World's largest art museum and historic monument",
			Location:    "Paris, France",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          true,
				Stairs:               false,
				StepFreeAccess:       true,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureModerate,
				NoiseLevel:     risk.NoiseModerate,
			},
		},
		{
			ID:          "fr-2",
			CountryISO:  "FR",
			Name:        "Eiffel Tower Tour",
			Description: "Iconic iron lattice tower with panoramic views",
			Location:    "Paris, France",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          true,
				Stairs:               true,
				StepFreeAccess:       false,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureModerate,
				NoiseLevel:     risk.NoiseModerate,
			},
		},
		{
			ID:          "us-1",
			CountryISO:  "US",
			Name:        "Central Park Walk",
			Description: "Urban park with walking trails and open lawns",
			Location:    "New York, United States",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          false,
				Stairs:               false,
				StepFreeAccess:       true,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureModerate,
				NoiseLevel:     risk.NoiseModerate,
			},
		},
		{
			ID:          "th-1",
			CountryISO:  "TH",
			Name:        "Grand Palace Tour",
			Description: "Ornate royal palace complex in central Bangkok",
			Location:    "Bangkok, Thailand",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: false,
				HasElevator:          false,
				Stairs:               true,
				StepFreeAccess:       false,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureHot,
				NoiseLevel:     risk.NoiseLoud,
			},
		},
		{
			ID:          "gb-1",
			CountryISO:  "GB",
			Name:        "British Museum",
			Description: "Collections spanning two million years of human history",
			Location:    "London, United Kingdom",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          true,
				Stairs:               false,
				StepFreeAccess:       true,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureCool,
				NoiseLevel:     risk.NoiseModerate,
			},
		},
		{
			ID:          "br-1",
			CountryISO:  "BR",
			Name:        "Sugarloaf Mountain Cable Car",
			Description: "Cable car ride to panoramic views over Rio",
			Location:    "Rio de Janeiro, Brazil",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: true,
				HasElevator:          true,
				Stairs:               false,
				StepFreeAccess:       true,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 396,
				Temperature:    risk.TemperatureHot,
				NoiseLevel:     risk.NoiseModerate,
			},
		},
		{
			ID:          "au-1",
			CountryISO:  "AU",
			Name:        "Bondi to Coogee Coastal Walk",
			Description: "Clifftop coastal walk linking Sydney's eastern beaches",
			Location:    "Sydney, Australia",
			Accessibility: risk.Accessibility{
				WheelchairAccessible: false,
				HasElevator:          false,
				Stairs:               true,
				StepFreeAccess:       false,
			},
			Environmental: risk.Environmental{
				AltitudeMeters: 0,
				Temperature:    risk.TemperatureHot,
				NoiseLevel:     risk.NoiseModerate,
			},
		},
	}
}
