package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/hydrasig/internal/api"
	"github.com/jroosing/hydrasig/internal/config"
	"github.com/jroosing/hydrasig/internal/database"
	"github.com/jroosing/hydrasig/internal/logging"
	"github.com/jroosing/hydrasig/internal/metrics"
	"github.com/jroosing/hydrasig/internal/zone"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set HYDRASIG_CONFIG)")
		host       = flag.String("host", "", "Override API bind host")
		port       = flag.Int("port", 0, "Override API bind port")
		dbPath     = flag.String("db", "", "Override SIG record database path")
		legacy     = flag.Bool("legacy-labels", false, "Use the RFC 2065 SIG presentation form")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *legacy {
		cfg.Codec.LegacyLabels = true
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(cfg.LogConfig())
	logger.Info("HydraSIG starting",
		"api_host", cfg.API.Host,
		"api_port", cfg.API.Port,
		"database", cfg.Database.Path,
		"legacy_labels", cfg.Codec.LegacyLabels,
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}()
	if n, err := db.Count(); err == nil {
		metrics.StoredRecords.Set(float64(n))
	}

	zones, err := loadZones(cfg, logger)
	if err != nil {
		return err
	}

	if !cfg.API.Enabled {
		logger.Warn("API disabled; nothing to serve")
		return nil
	}

	srv := api.New(cfg, db, logger)
	srv.Handler().SetZones(zones)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API listening", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loadZones reads the configured zone directory and files. A zone that fails
// to load stops startup.
func loadZones(cfg *config.Config, logger *slog.Logger) ([]*zone.Zone, error) {
	var paths []string
	if cfg.Zones.Directory != "" {
		found, err := zone.DiscoverZoneFiles(cfg.Zones.Directory)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone directory: %w", err)
		}
		paths = append(paths, found...)
	}
	paths = append(paths, cfg.Zones.Files...)

	opts := zone.Options{
		LegacyLabels: cfg.Codec.LegacyLabels,
		Origin:       cfg.Codec.DefaultOrigin,
	}
	zones := make([]*zone.Zone, 0, len(paths))
	for _, p := range paths {
		z, err := zone.LoadFile(p, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to load zone %s: %w", p, err)
		}
		sigs := len(z.SIGs())
		metrics.ZoneSignatures.WithLabelValues(z.Origin).Set(float64(sigs))
		logger.Info("zone loaded", "path", p, "origin", z.Origin, "records", len(z.Records), "signatures", sigs)
		zones = append(zones, z)
	}
	return zones, nil
}
