// Package traveladvisory provides a client for the travel health
// advisory feed.
package traveladvisory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sensetheworld/sensetheworld/internal/catalog"
	"github.com/sensetheworld/sensetheworld/internal/provider/resilience"
	"github.com/sensetheworld/sensetheworld/internal/risk"
)

const (
	// ProviderName identifies this advisory provider.
	ProviderName = "traveladvisory"

	// DefaultBaseURL is the advisory feed base URL.
	DefaultBaseURL = "https://api.traveladvisory.example.com/v1"
)

// ClientConfig holds configuration for the advisory client.
type ClientConfig struct {
	// APIKey is the advisory feed API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a travel advisory feed client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new advisory client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// FetchAdvisories fetches the current country health advisories.
func (c *Client) FetchAdvisories(ctx context.Context) ([]*catalog.Advisory, error) {
	url := fmt.Sprintf("%s/advisories?key=%s", c.baseURL, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var feed advisoryFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	advisories := make([]*catalog.Advisory, 0, len(feed.Advisories))
	for i := range feed.Advisories {
		advisories = append(advisories, toAdvisory(&feed.Advisories[i]))
	}

	c.logger.Debug().
		Int("advisories", len(advisories)).
		Msg("fetched travel advisories")

	return advisories, nil
}

// advisoryFeedResponse is the advisory feed wire format.
type advisoryFeedResponse struct {
	Advisories []advisoryEntry `json:"advisories"`
	UpdatedAt  int64           `json:"updated_at"`
}

type advisoryEntry struct {
	CountryISO  string   `json:"country_iso"`
	Outbreaks   []string `json:"outbreaks"`
	WaterSafety string   `json:"water_safety"`
	RiskLevel   string   `json:"risk_level"`
	IssuedAt    int64    `json:"issued_at"`
}

// toAdvisory converts a feed entry to the catalog domain model. Unknown
// enum values are left empty so the catalog keeps its current fields.
func toAdvisory(e *advisoryEntry) *catalog.Advisory {
	adv := &catalog.Advisory{
		ISO:       e.CountryISO,
		Outbreaks: e.Outbreaks,
		IssuedAt:  time.Unix(e.IssuedAt, 0),
	}

	switch risk.WaterSafety(e.WaterSafety) {
	case risk.WaterSafe, risk.WaterModerate, risk.WaterUnsafe:
		adv.WaterSafety = risk.WaterSafety(e.WaterSafety)
	}

	switch risk.Level(e.RiskLevel) {
	case risk.LevelLow, risk.LevelModerate, risk.LevelHigh:
		adv.BaselineRisk = risk.Level(e.RiskLevel)
	}

	return adv
}
