// Package handlers implements the REST API endpoint handlers for HydraSIG.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, process, store size)
//
// SIG Codec:
//   - POST /api/v1/sig/decode - Decode hex RDATA into fields and presentation text
//   - POST /api/v1/sig/encode - Parse presentation text into wire and canonical RDATA
//
// Record Store:
//   - GET /api/v1/records - List stored SIG records (filters: owner, type, signer, key_tag, expired_before, limit)
//   - POST /api/v1/records - Store a SIG record given in presentation form
//   - GET /api/v1/records/:id - Get one stored record
//   - DELETE /api/v1/records/:id - Delete one stored record
//
// Zones:
//   - GET /api/v1/zones - List loaded zones
//   - GET /api/v1/zones/:name - SIG records of one zone
//
// Authentication:
//
// All endpoints support optional API key authentication via the X-API-Key
// header. If an API key is configured it is required for every endpoint.
//
// @title HydraSIG API
// @version 1.0
// @description REST API for decoding, encoding and storing DNS SIG records.
//
// @contact.name HydraSIG Support
// @contact.url https://github.com/jroosing/hydrasig
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jroosing/hydrasig/internal/config"
	"github.com/jroosing/hydrasig/internal/database"
	"github.com/jroosing/hydrasig/internal/zone"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	logger    *slog.Logger
	startTime time.Time

	zones []*zone.Zone
	mu    sync.RWMutex
}

// New creates a new Handler. db may be nil, in which case the record
// endpoints answer 503.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// DB returns the record store.
func (h *Handler) DB() *database.DB {
	return h.db
}

// SetZones replaces the loaded zones.
func (h *Handler) SetZones(zones []*zone.Zone) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.zones = zones
}

// Zones returns the loaded zones.
func (h *Handler) Zones() []*zone.Zone {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.zones
}
