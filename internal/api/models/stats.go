package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string        `json:"uptime"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     time.Time     `json:"start_time"`
	GoRoutines    int           `json:"goroutines"`
	MemoryAllocMB float64       `json:"memory_alloc_mb"`
	NumCPU        int           `json:"num_cpu"`
	Process       *ProcessStats `json:"process,omitempty"`
	StoredRecords int           `json:"stored_records"`
	Zones         int           `json:"zones"`
}

// ProcessStats describes the server process as seen by the OS.
type ProcessStats struct {
	PID        int32   `json:"pid"`
	RSSMB      float64 `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
	NumThreads int32   `json:"num_threads"`
}
