package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sekevasa/OpsCopilot/internal/domain/connector"
	"github.com/sekevasa/OpsCopilot/internal/infrastructure/config"
	"github.com/sekevasa/OpsCopilot/internal/infrastructure/logger"
	"github.com/sekevasa/OpsCopilot/internal/infrastructure/tally"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Tally sync",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("tally_host", cfg.Tally.Host),
		zap.Int("tally_port", cfg.Tally.Port))

	if err := run(cfg, log); err != nil {
		log.Fatal("Sync failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	connCfg := tally.NewConnectionConfig(cfg.Tally.Host, cfg.Tally.Port)
	connCfg.CompanyName = cfg.Tally.CompanyName
	connCfg.Username = cfg.Tally.Username
	connCfg.Password = cfg.Tally.Password
	connCfg.Timeout = cfg.Tally.Timeout
	connCfg.UseSSL = cfg.Tally.UseSSL

	connectorCfg := tally.NewConnectorConfig(cfg.App.Name, connCfg)
	connectorCfg.SyncMode = connector.SyncMode(cfg.Sync.Mode)
	connectorCfg.BatchSize = cfg.Sync.BatchSize
	connectorCfg.DataTypes = dataTypes(cfg.Sync.DataTypes)

	conn, err := tally.NewConnector(connectorCfg, logger.Named(log, "tally"))
	if err != nil {
		return err
	}

	// Interrupt cancels the sync mid-flight
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	if err := conn.Connect(ctx); err != nil {
		return err
	}
	defer conn.Disconnect()

	result, err := conn.Sync(ctx, connector.SyncRequest{
		FromDate: cfg.Sync.FromDate,
		ToDate:   cfg.Sync.ToDate,
	})
	if err != nil {
		return err
	}

	log.Info("Sync completed",
		zap.String("job_id", result.JobID.String()),
		zap.String("mode", result.Mode.String()),
		zap.Int("total_records", result.Stats.TotalRecords),
		zap.Float64("duration_seconds", result.Stats.DurationSeconds))

	// Print the stats summary for operators piping into jq
	summary, err := json.MarshalIndent(result.Stats, "", "  ")
	if err != nil {
		return err
	}
	os.Stdout.Write(append(summary, '\n'))

	return nil
}

// dataTypes converts configured data type names to typed values, skipping
// anything unknown.
func dataTypes(names []string) []connector.DataType {
	types := make([]connector.DataType, 0, len(names))
	for _, name := range names {
		t := connector.DataType(name)
		if t.IsValid() {
			types = append(types, t)
		}
	}
	return types
}
