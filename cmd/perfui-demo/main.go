package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
	"github.com/plus3/perfui/host/ebitenhost"
	"github.com/plus3/perfui/internal/logging"
	"github.com/plus3/perfui/perfui"
	"github.com/plus3/perfui/perfui/config"
	"github.com/plus3/perfui/perfui/ebitenui"
	"github.com/plus3/perfui/perfui/imguiui"
	"github.com/rs/zerolog"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	configPath := flag.String("config", "", "Overlay config file (.toml or .hcl).")
	systemInfo := flag.Bool("system", false, "Sample process CPU and memory usage.")
	overlay := flag.String("overlay", "imgui", "Overlay renderer: imgui or ebiten.")
	sprites := flag.Int("sprites", 500, "Initial number of sprites.")
	stats := flag.Bool("stats", false, "Show the ECS stats window (imgui only).")
	inspector := flag.Bool("inspector", false, "Show the perf entry inspector (imgui only).")
	level := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	log, err := logging.WithLevel(logging.New("perfui-demo"), *level)
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

	game, err := newGame(*overlay, cfg, bundle, *sprites, windows{stats: *stats, inspector: *inspector}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up demo")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// Game runs the scheduler once per ebiten update and draws the sprites and
// the overlay.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	rng       *rand.Rand
	log       zerolog.Logger

	backend  *ecs.Singleton[imguiui.Backend]
	sprites  *spriteRenderer
	overlay  *ebitenui.Overlay
	lastTick time.Time
}

// windows selects the optional ImGui tool windows.
type windows struct {
	stats     bool
	inspector bool
}

func newGame(mode string, cfg config.Config, bundle perfui.Bundle, sprites int, tools windows, log zerolog.Logger) (*Game, error) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Sprite](registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)

	g := &Game{
		storage:   storage,
		scheduler: scheduler,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       log,
		sprites:   &spriteRenderer{view: ecs.NewView[spriteView](storage)},
	}
	storage.AddSingleton(host.Window{Width: ScreenWidth, Height: ScreenHeight})

	title := "perfui demo"
	switch mode {
	case "imgui":
		imguiui.RegisterComponents(registry)
		g.backend = ecs.NewSingleton[imguiui.Backend](storage, imguiui.NewBackend(title, ScreenWidth, ScreenHeight))
		ecs.NewSingleton[imguiui.InputState](storage)
	case "ebiten":
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(title)
		g.overlay = ebitenui.NewOverlay(storage)
	default:
		return nil, fmt.Errorf("unknown overlay %q", mode)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	scheduler.Register(&ebitenhost.WindowSystem{})
	scheduler.Register(&SpriteSystem{})

	plugin := perfui.NewPlugin(
		perfui.WithLogger(log),
		perfui.WithRoot(cfg.Root),
		perfui.WithSystemInfo(cfg.SystemInfo),
	)
	plugin.Build(scheduler)

	if g.backend != nil {
		scheduler.Register(&imguiui.OverlaySystem{})
		scheduler.Register(&imguiui.StatsSystem{})
		scheduler.Register(&imguiui.InspectorSystem{})
		if tools.stats {
			storage.Spawn(imguiui.NewStatsWindow())
		}
		if tools.inspector {
			storage.Spawn(imguiui.NewEntryInspector())
		}
	}

	perfui.Spawn(storage, bundle, cfg.Root)
	g.spawnSprites(sprites)

	log.Info().Str("overlay", mode).Strs("entries", plugin.Kinds()).Msg("demo ready")
	return g, nil
}

func (g *Game) spawnSprites(n int) {
	for range n {
		g.storage.Spawn(newSprite(g.rng, ScreenWidth, ScreenHeight))
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spawnSprites(100)
		g.log.Debug().Int("entities", g.storage.EntityCount()).Msg("spawned sprites")
	}

	now := time.Now()
	dt := 1.0 / 60.0
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

	if g.backend != nil {
		g.backend.Get().BeginFrame()
		g.scheduler.Once(dt)
		g.backend.Get().EndFrame()
		return nil
	}
	g.scheduler.Once(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sprites.Draw(screen)

	if g.backend != nil {
		g.backend.Get().Draw(screen)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Get().Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
