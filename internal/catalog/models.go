// Package catalog provides the destination and activity reference
// catalog. Countries and activities are read-only reference data; the
// health advisory fields of a country (outbreaks, water safety, baseline
// risk) can be refreshed from an external advisory provider.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// Catalog errors.
var (
	ErrCountryNotFound     = errors.New("country not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrProviderUnavailable = errors.New("advisory provider unavailable")
)

// Country is a country-level reference record.
type Country struct {
	ISO       string
	Name      string
	Vaccines  []string
	Outbreaks []string

	WaterSafety  risk.WaterSafety
	BaselineRisk risk.Level

	Latitude  float64
	Longitude float64

	// WaterAccessPercent is the share of the population with access to
	// safely managed drinking water (SDG 6.1.1). Zero when unknown.
	WaterAccessPercent float64
	WaterAccessSource  string
}

// Destination converts the country's health context into the risk
// engine's destination shape.
func (c *Country) Destination() risk.Destination {
	return risk.Destination{
		WaterSafety:  c.WaterSafety,
		Outbreaks:    c.Outbreaks,
		BaselineRisk: c.BaselineRisk,
	}
}

// Activity is a single visitable experience at a destination.
type Activity struct {
	ID          string
	CountryISO  string
	Name        string
	Description string
	Location    string

	Accessibility risk.Accessibility
	Environmental risk.Environmental
}

// RiskInput converts the activity into the risk engine's activity shape.
func (a *Activity) RiskInput() risk.Activity {
	return risk.Activity{
		Accessibility: a.Accessibility,
		Environmental: a.Environmental,
	}
}

// Advisory is a health advisory update for one country, as fetched from
// an advisory provider.
type Advisory struct {
	ISO          string
	Outbreaks    []string
	WaterSafety  risk.WaterSafety
	BaselineRisk risk.Level
	IssuedAt     time.Time
}

// AdvisoryProvider fetches country health advisories from an external
// source.
type AdvisoryProvider interface {
	// FetchAdvisories fetches the current advisories for all countries
	// the provider knows about.
	FetchAdvisories(ctx context.Context) ([]*Advisory, error)

	// Name returns the provider identifier for logging and metrics.
	Name() string
}
