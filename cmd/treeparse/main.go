// Command treeparse reads a line-oriented file, collapses it through the
// streaming tree pipeline, and prints the result. It demonstrates the
// intended wiring: lazy file source, split, aggregate, single Get.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/treekit/config"
	"github.com/kbukum/treekit/logger"
	"github.com/kbukum/treekit/observability"
	"github.com/kbukum/treekit/stream"
	"github.com/kbukum/treekit/version"
)

// Config holds the driver configuration, loaded from config.yml, .env, and
// TREEPARSE_* environment variables.
type Config struct {
	File          string          `mapstructure:"file" validate:"required"`
	Separator     string          `mapstructure:"separator"`
	ProgressEvery int             `mapstructure:"progress_every" validate:"min=0"`
	Logging       logger.Config   `mapstructure:"logging"`
	Telemetry     TelemetryConfig `mapstructure:"telemetry"`
}

// TelemetryConfig enables optional OTLP export.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(version.Full())
		return
	}
	if err := run(context.Background()); err != nil {
		logger.Error("run failed", logger.ErrorFields("treeparse", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.LoadConfig("treeparse", &cfg); err != nil {
		return err
	}
	if len(os.Args) > 1 {
		cfg.File = os.Args[1]
	}
	if cfg.Separator == "" {
		cfg.Separator = " "
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = 10000
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("treeparse").WithFields(logger.Fields(
		logger.FieldRunID, uuid.NewString(),
	))

	var metrics *observability.Metrics
	if cfg.Telemetry.Enabled {
		meterCfg := observability.DefaultMeterConfig("treeparse")
		tracerCfg := observability.DefaultTracerConfig("treeparse")
		if cfg.Telemetry.Endpoint != "" {
			meterCfg.Endpoint = cfg.Telemetry.Endpoint
			tracerCfg.Endpoint = cfg.Telemetry.Endpoint
		}
		mp, err := observability.InitMeter(ctx, &meterCfg)
		if err != nil {
			return err
		}
		defer mp.Shutdown(ctx)
		tp, err := observability.InitTracer(ctx, tracerCfg)
		if err != nil {
			return err
		}
		defer tp.Shutdown(ctx)
		metrics, err = observability.NewMetrics(observability.Meter("treeparse"))
		if err != nil {
			return err
		}
	}

	log.Info("starting", logger.Fields(
		"version", version.Short(),
		logger.FieldFile, cfg.File,
		logger.FieldSeparator, cfg.Separator,
	))

	ctx, span := observability.StartSpan(ctx, observability.SpanPipelineRun)
	defer span.End()

	start := time.Now()
	result, leaves, err := collapse(ctx, &cfg, log)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		observability.SetSpanError(ctx, err)
	}
	if metrics != nil {
		metrics.RecordLeaves(ctx, "treeparse", leaves)
		metrics.RecordRun(ctx, "treeparse", status, duration)
	}
	if err != nil {
		return err
	}

	log.Info("done", logger.Fields(
		logger.FieldLeaves, leaves,
		logger.FieldDuration, duration.Milliseconds(),
	))
	fmt.Println(result)
	return nil
}

// collapse wires the demo pipeline: file lines → words → joined lines →
// single root value. Returns the collapsed result and the leaf count.
func collapse(ctx context.Context, cfg *Config, log *logger.Logger) (string, int64, error) {
	var leaves int64

	lines := stream.Map(stream.FromFile(cfg.File), func(_ context.Context, line string) (string, error) {
		return strings.TrimRight(line, "\r\n"), nil
	})
	words := stream.Split(lines, cfg.Separator)
	counted := stream.Tap(words, func(_ context.Context, _ string) error {
		leaves++
		if cfg.ProgressEvery > 0 && leaves%int64(cfg.ProgressEvery) == 0 {
			log.Info("progress", logger.Fields(logger.FieldLeaves, leaves))
		}
		return nil
	})
	joined := stream.Aggregate(counted, func(acc, next string) string {
		return acc + "_" + next
	})
	root := stream.Aggregate(joined, func(acc, next string) string {
		return acc + " -> " + next
	})

	result, err := stream.Get(ctx, root)
	return result, leaves, err
}
