package models

import "github.com/sensetheworld/sensetheworld/internal/catalog"

// Country is a destination country in API shape.
type Country struct {
	ISO                string   `json:"iso"`
	Name               string   `json:"name"`
	Vaccines           []string `json:"vaccines"`
	Outbreaks          []string `json:"outbreaks"`
	WaterSafety        string   `json:"waterSafety"`
	BaselineRisk       string   `json:"baselineRisk"`
	Point              Point    `json:"point"`
	WaterAccessPercent float64  `json:"waterAccessPercent,omitempty"`
	WaterAccessSource  string   `json:"waterAccessSource,omitempty"`
}

// NewCountry converts a catalog country to the API shape.
func NewCountry(c *catalog.Country) Country {
	return Country{
		ISO:                c.ISO,
		Name:               c.Name,
		Vaccines:           c.Vaccines,
		Outbreaks:          c.Outbreaks,
		WaterSafety:        string(c.WaterSafety),
		BaselineRisk:       string(c.BaselineRisk),
		Point:              Point{Lat: c.Latitude, Lon: c.Longitude},
		WaterAccessPercent: c.WaterAccessPercent,
		WaterAccessSource:  c.WaterAccessSource,
	}
}

// CountryList is the response body for GET /v1/destinations.
type CountryList struct {
	Items []Country `json:"items"`
}

// Accessibility describes an activity's accessibility features.
type Accessibility struct {
	WheelchairAccessible bool `json:"wheelchairAccessible"`
	HasElevator          bool `json:"hasElevator"`
	Stairs               bool `json:"stairs"`
	StepFreeAccess       bool `json:"stepFreeAccess"`
}

// Environmental describes an activity's environment.
type Environmental struct {
	AltitudeMeters float64 `json:"altitudeMeters"`
	Temperature    string  `json:"temperature"`
	NoiseLevel     string  `json:"noiseLevel"`
}

// Activity is a catalog activity in API shape.
type Activity struct {
	ID            string        `json:"id"`
	CountryISO    string        `json:"countryIso"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Location      string        `json:"location,omitempty"`
	Accessibility Accessibility `json:"accessibility"`
	Environmental Environmental `json:"environmental"`
}

// NewActivity converts a catalog activity to the API shape.
func NewActivity(a *catalog.Activity) Activity {
	return Activity{
		ID:          a.ID,
		CountryISO:  a.CountryISO,
		Name:        a.Name,
		Description: a.Description,
		Location:    a.Location,
		Accessibility: Accessibility{
			WheelchairAccessible: a.Accessibility.WheelchairAccessible,
			HasElevator:          a.Accessibility.HasElevator,
			Stairs:               a.Accessibility.Stairs,
			StepFreeAccess:       a.Accessibility.StepFreeAccess,
		},
		Environmental: Environmental{
			AltitudeMeters: a.Environmental.AltitudeMeters,
			Temperature:    string(a.Environmental.Temperature),
			NoiseLevel:     string(a.Environmental.NoiseLevel),
		},
	}
}

// ActivityList is the response body for activity listings.
type ActivityList struct {
	Items []Activity `json:"items"`
}
