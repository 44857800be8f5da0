package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
	"github.com/plus3/perfui/internal/logging"
	"github.com/plus3/perfui/perfui"
	"github.com/plus3/perfui/perfui/config"
	"github.com/plus3/perfui/perfui/termui"
)

func main() {
	configPath := flag.String("config", "", "Overlay config file (.toml or .hcl).")
	systemInfo := flag.Bool("system", false, "Sample process CPU and memory usage.")
	dots := flag.Int("dots", 200, "Number of bouncing dots.")
	fps := flag.Int("fps", 30, "Target frames per second.")
	level := flag.String("log-level", "warn", "Log level.")
	flag.Parse()

	log, err := logging.WithLevel(logging.New("perfui-term"), *level)
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

	bundle, err := cfg.Bundle()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid overlay bundle")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialise screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Dot](registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	storage.AddSingleton(newWindow(screen))

	scheduler.Register(&ClearSystem{Screen: screen})
	scheduler.Register(&DotSystem{Screen: screen})

	plugin := perfui.NewPlugin(
		perfui.WithLogger(log),
		perfui.WithRoot(cfg.Root),
		perfui.WithSystemInfo(cfg.SystemInfo),
	)
	plugin.Build(scheduler)
	scheduler.Register(&termui.OverlaySystem{Renderer: termui.New(screen)})

	perfui.Spawn(storage, bundle, cfg.Root)
	w, h := screen.Size()
	spawnDots(storage, rand.New(rand.NewSource(time.Now().UnixNano())), *dots, w, h)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	run(context.Background(), scheduler, events, time.Second/time.Duration(max(*fps, 1)))
	log.Info().Msg("bye")
}

// run ticks the scheduler until a quit event arrives or the event stream ends.
// Events are applied between frames so systems never race the input goroutine.
func run(ctx context.Context, scheduler *ecs.Scheduler, events <-chan tcell.Event, interval time.Duration) {
	window := ecs.NewSingleton[host.Window](scheduler.Storage())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || applyEvent(window.Get(), ev) {
				return
			}
		case now := <-ticker.C:
			scheduler.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}
