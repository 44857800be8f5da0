package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/internal/logging"
	"github.com/plus3/perfui/perfui"
	"github.com/plus3/perfui/perfui/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	configPath := flag.String("config", "", "Overlay config file (.toml or .hcl).")
	systemInfo := flag.Bool("system", false, "Sample process CPU and memory usage.")
	chartPath := flag.String("chart", "", "Write an HTML frame time chart to this file.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for the workload.")
	level := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	log, err := logging.WithLevel(logging.New("perfui-bench"), *level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load overlay config")
		}
	}
	cfg.SystemInfo = cfg.SystemInfo || *systemInfo

	log.Info().Msg("Starting ECS stress test...")

	rng := rand.New(rand.NewSource(*seed))
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)

	plugin := perfui.NewPlugin(
		perfui.WithLogger(log),
		perfui.WithRoot(cfg.Root),
		perfui.WithSystemInfo(cfg.SystemInfo),
	)
	plugin.Build(scheduler)
	RegisterSystems(scheduler, rng)

	bundle, err := cfg.Bundle()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid overlay bundle")
	}
	perfui.Spawn(storage, bundle, cfg.Root)

	log.Info().Int("entities", *entityCount).Msg("Populating storage...")
	for i := 0; i < *entityCount; i++ {
		SpawnRandomEntity(storage, rng, rng.Intn(5)+1)
	}
	log.Info().Msg("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Stringer("duration", *duration).Msg("Running simulation...")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Overlay = OverlayRows(storage)
	report.SystemStats = scheduler.GetStats().Systems

	log.Info().Int64("updates", totalUpdates).Msg("Simulation finished.")

	if *chartPath != "" {
		if err := writeChartFile(*chartPath, report.UpdateTime.Samples); err != nil {
			log.Error().Err(err).Str("path", *chartPath).Msg("failed to write chart")
		} else {
			log.Info().Str("path", *chartPath).Msg("chart written")
		}
	}

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")

	log.Info().Msg("Stress test complete.")
}

func writeChartFile(path string, samples []time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer f.Close()
	return WriteChart(f, samples)
}

// OverlayRows returns the rows of every overlay panel in storage.
func OverlayRows(storage *ecs.Storage) []perfui.Row {
	panels := ecs.NewQuery[struct{ Panel *perfui.Panel }](storage)
	panels.Execute()

	var rows []perfui.Row
	for p := range panels.Values() {
		rows = append(rows, p.Panel.Rows...)
	}
	return rows
}
