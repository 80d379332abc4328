package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/api/models"
	"github.com/shirou/gopsutil/v3/process"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status; degraded when the record store is unreachable
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			h.logger.Warn("record store health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, models.StatusResponse{Status: "degraded"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines, process usage and store size
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Zones:         len(h.Zones()),
		Process:       processStats(),
	}

	if h.db != nil {
		n, err := h.db.Count()
		if err != nil {
			h.logger.Warn("failed to count stored records", "error", err)
		}
		resp.StoredRecords = n
	}

	c.JSON(http.StatusOK, resp)
}

// processStats samples the current process; nil when the OS refuses.
func processStats() *models.ProcessStats {
	pid := int32(os.Getpid()) //nolint:gosec // pids fit in int32
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil
	}
	ps := &models.ProcessStats{PID: pid}
	if mem, err := p.MemoryInfo(); err == nil {
		ps.RSSMB = float64(mem.RSS) / 1024 / 1024
	}
	if cpu, err := p.CPUPercent(); err == nil {
		ps.CPUPercent = cpu
	}
	if n, err := p.NumThreads(); err == nil {
		ps.NumThreads = n
	}
	return ps
}
