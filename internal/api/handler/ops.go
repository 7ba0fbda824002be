// Package handler provides HTTP handlers for the SenseTheWorld API.
package handler

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/catalog"
	"github.com/sensetheworld/sensetheworld/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version        string
	buildTime      string
	pool           *pgxpool.Pool
	registry       *resilience.Registry
	catalogService *catalog.Service
}

// OpsHandlerConfig holds dependencies for the ops handler. Pool and
// CatalogService are optional; absent dependencies are skipped in checks.
type OpsHandlerConfig struct {
	Version        string
	BuildTime      string
	Pool           *pgxpool.Pool
	Registry       *resilience.Registry
	CatalogService *catalog.Service
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(cfg OpsHandlerConfig) *OpsHandler {
	registry := cfg.Registry
	if registry == nil {
		registry = resilience.GlobalRegistry
	}
	return &OpsHandler{
		version:        cfg.Version,
		buildTime:      cfg.BuildTime,
		pool:           cfg.Pool,
		registry:       registry,
		catalogService: cfg.CatalogService,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK

	if h.pool != nil {
		if err := h.pool.Ping(r.Context()); err != nil {
			status = models.HealthStatusFail
		}
	}

	code := http.StatusOK
	if status == models.HealthStatusFail {
		code = http.StatusServiceUnavailable
	}

	response.JSON(w, r, code, models.Health{
		Status: status,
		Time:   models.Timestamp(time.Now()),
	})
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	overall := models.HealthStatusOK

	var subsystems []models.SubsystemStatus
	if h.pool != nil {
		dbStatus := models.HealthStatusOK
		if err := h.pool.Ping(r.Context()); err != nil {
			dbStatus = models.HealthStatusFail
			overall = models.HealthStatusDegraded
		}
		subsystems = append(subsystems, models.SubsystemStatus{Name: "postgres", Status: dbStatus})
	}
	if h.catalogService != nil {
		catStatus := models.HealthStatusOK
		if !h.catalogService.AdvisoriesFresh() {
			catStatus = models.HealthStatusDegraded
		}
		subsystems = append(subsystems, models.SubsystemStatus{Name: "advisory-cache", Status: catStatus})
	}

	providers := make([]models.ProviderStatus, 0)
	for _, ph := range h.registry.GetAllHealth() {
		ps := models.ProviderStatus{
			Provider: ph.Name,
			Status:   models.HealthStatusOK,
		}
		switch {
		case ph.IsUnhealthy():
			ps.Status = models.HealthStatusFail
			overall = models.HealthStatusDegraded
		case ph.IsDegraded():
			ps.Status = models.HealthStatusDegraded
			overall = models.HealthStatusDegraded
		}
		if ph.LastSuccessAt != nil {
			ts := models.Timestamp(*ph.LastSuccessAt)
			ps.LastSuccessAt = &ts
		}
		if ph.LastFailureAt != nil {
			ts := models.Timestamp(*ph.LastFailureAt)
			ps.LastFailureAt = &ts
		}
		if ph.LastError != "" {
			msg := ph.LastError
			ps.Message = &msg
		}
		providers = append(providers, ps)
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:     overall,
		Time:       now,
		Subsystems: subsystems,
		Providers:  providers,
	})
}
