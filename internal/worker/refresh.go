package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/sensetheworld/sensetheworld/internal/catalog"
	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// RefreshJob handles advisory refresh and catalog audit operations.
type RefreshJob struct {
	config  RefreshConfig
	logger  zerolog.Logger
	catalog *catalog.Service

	// Metrics
	metrics *RefreshMetrics
}

// RefreshMetrics tracks refresh job statistics.
type RefreshMetrics struct {
	mu sync.RWMutex

	// Counters
	TotalRuns         int64
	AdvisoryRefreshes int64
	SuccessfulAudits  int64
	FailedAudits      int64

	// Timings
	LastRunAt       time.Time
	LastRunDuration time.Duration
	TotalDuration   time.Duration
}

// RefreshJobConfig holds configuration for creating a RefreshJob.
type RefreshJobConfig struct {
	Config         RefreshConfig
	Logger         zerolog.Logger
	CatalogService *catalog.Service
}

// NewRefreshJob creates a new refresh job processor. A config with both
// jobs disabled is treated as unset and replaced with the defaults.
func NewRefreshJob(cfg RefreshJobConfig) *RefreshJob {
	config := cfg.Config
	if !config.RefreshAdvisories && !config.AuditCatalog {
		config = DefaultRefreshConfig()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 3
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &RefreshJob{
		config:  config,
		logger:  cfg.Logger,
		catalog: cfg.CatalogService,
		metrics: &RefreshMetrics{},
	}
}

// RefreshResult contains the result of a refresh run.
type RefreshResult struct {
	StartTime           time.Time
	EndTime             time.Time
	Duration            time.Duration
	AdvisoriesRefreshed bool
	TotalCountries      int
	Successful          int
	Failed              int
	Errors              []RefreshError
}

// RefreshError represents an error during a refresh run.
type RefreshError struct {
	CountryISO string
	Check      string
	Error      string
}

// Run refreshes advisories and then audits the configured countries.
func (j *RefreshJob) Run(ctx context.Context) *RefreshResult {
	startTime := time.Now()
	result := &RefreshResult{
		StartTime: startTime,
	}

	j.logger.Info().
		Int("concurrency", j.config.Concurrency).
		Bool("refresh_advisories", j.config.RefreshAdvisories).
		Bool("audit_catalog", j.config.AuditCatalog).
		Msg("starting advisory refresh job")

	if j.config.RefreshAdvisories && j.catalog != nil {
		if err := j.catalog.RefreshAdvisories(ctx); err != nil {
			result.Errors = append(result.Errors, RefreshError{
				Check: "advisories",
				Error: err.Error(),
			})
		} else {
			result.AdvisoriesRefreshed = true
			atomic.AddInt64(&j.metrics.AdvisoryRefreshes, 1)
		}
	}

	if j.config.AuditCatalog && j.catalog != nil {
		j.runAudit(ctx, result)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Bool("advisories_refreshed", result.AdvisoriesRefreshed).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Msg("advisory refresh job completed")

	return result
}

func (j *RefreshJob) runAudit(ctx context.Context, result *RefreshResult) {
	isos := j.auditCountries()
	result.TotalCountries = len(isos)

	isosChan := make(chan string, len(isos))
	resultsChan := make(chan countryResult, len(isos))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.auditWorker(ctx, isosChan, resultsChan)
		}()
	}

	for _, iso := range isos {
		isosChan <- iso
	}
	close(isosChan)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for cr := range resultsChan {
		if cr.success {
			result.Successful++
		} else {
			result.Failed++
		}
		result.Errors = append(result.Errors, cr.errors...)
	}
}

// auditCountries returns the ISO codes to audit, falling back to the
// full catalog when none are configured.
func (j *RefreshJob) auditCountries() []string {
	if len(j.config.Countries) > 0 {
		return j.config.Countries
	}

	countries := j.catalog.ListCountries()
	isos := make([]string, 0, len(countries))
	for _, c := range countries {
		isos = append(isos, c.ISO)
	}
	return isos
}

type countryResult struct {
	iso     string
	success bool
	errors  []RefreshError
}

func (j *RefreshJob) auditWorker(ctx context.Context, isos <-chan string, results chan<- countryResult) {
	for iso := range isos {
		select {
		case <-ctx.Done():
			return
		default:
			results <- j.auditCountry(ctx, iso)
		}
	}
}

// auditCountry verifies a country and its activities are servable: the
// country resolves, its advisory enums are valid, and every activity
// carries valid environmental fields.
func (j *RefreshJob) auditCountry(ctx context.Context, iso string) countryResult {
	result := countryResult{
		iso:     iso,
		success: true,
	}

	auditCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	country, err := j.catalog.GetCountry(iso)
	if err != nil {
		result.errors = append(result.errors, RefreshError{
			CountryISO: iso,
			Check:      "country",
			Error:      err.Error(),
		})
		result.success = false
		return result
	}

	switch country.WaterSafety {
	case risk.WaterSafe, risk.WaterModerate, risk.WaterUnsafe:
	default:
		result.errors = append(result.errors, RefreshError{
			CountryISO: iso,
			Check:      "water_safety",
			Error:      fmt.Sprintf("invalid water safety %q", country.WaterSafety),
		})
		result.success = false
	}

	switch country.BaselineRisk {
	case risk.LevelLow, risk.LevelModerate, risk.LevelHigh:
	default:
		result.errors = append(result.errors, RefreshError{
			CountryISO: iso,
			Check:      "baseline_risk",
			Error:      fmt.Sprintf("invalid baseline risk %q", country.BaselineRisk),
		})
		result.success = false
	}

	if auditCtx.Err() != nil {
		return result
	}

	activities, err := j.catalog.ListActivities(iso)
	if err != nil {
		result.errors = append(result.errors, RefreshError{
			CountryISO: iso,
			Check:      "activities",
			Error:      err.Error(),
		})
		result.success = false
		return result
	}
	if len(activities) == 0 {
		result.errors = append(result.errors, RefreshError{
			CountryISO: iso,
			Check:      "activities",
			Error:      "country has no activities",
		})
		result.success = false
	}

	for _, a := range activities {
		if err := auditActivity(a); err != nil {
			result.errors = append(result.errors, RefreshError{
				CountryISO: iso,
				Check:      "activity",
				Error:      fmt.Sprintf("%s: %v", a.ID, err),
			})
			result.success = false
		}
	}

	return result
}

func auditActivity(a *catalog.Activity) error {
	switch a.Environmental.Temperature {
	case risk.TemperatureCool, risk.TemperatureModerate, risk.TemperatureHot:
	default:
		return fmt.Errorf("invalid temperature %q", a.Environmental.Temperature)
	}

	switch a.Environmental.NoiseLevel {
	case risk.NoiseQuiet, risk.NoiseModerate, risk.NoiseLoud:
	default:
		return fmt.Errorf("invalid noise level %q", a.Environmental.NoiseLevel)
	}

	if a.Environmental.AltitudeMeters < 0 {
		return fmt.Errorf("negative altitude %v", a.Environmental.AltitudeMeters)
	}

	return nil
}

func (j *RefreshJob) updateMetrics(result *RefreshResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.SuccessfulAudits += int64(result.Successful)
	j.metrics.FailedAudits += int64(result.Failed)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *RefreshJob) GetMetrics() RefreshMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return RefreshMetrics{
		TotalRuns:         j.metrics.TotalRuns,
		AdvisoryRefreshes: atomic.LoadInt64(&j.metrics.AdvisoryRefreshes),
		SuccessfulAudits:  j.metrics.SuccessfulAudits,
		FailedAudits:      j.metrics.FailedAudits,
		LastRunAt:         j.metrics.LastRunAt,
		LastRunDuration:   j.metrics.LastRunDuration,
		TotalDuration:     j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *RefreshJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_runs":         m.TotalRuns,
		"advisory_refreshes": m.AdvisoryRefreshes,
		"successful_audits":  m.SuccessfulAudits,
		"failed_audits":      m.FailedAudits,
		"last_run_at":        m.LastRunAt,
		"last_run_duration":  m.LastRunDuration.String(),
		"total_duration":     m.TotalDuration.String(),
	}
}
