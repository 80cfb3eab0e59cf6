// Package game wires the particle engine, gesture input, phrase and
// audio collaborators, and rendering into one session.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/audio"
	"github.com/pthm-cable/orrery/body"
	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/cloud"
	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/engine"
	"github.com/pthm-cable/orrery/gesture"
	"github.com/pthm-cable/orrery/phrase"
	"github.com/pthm-cable/orrery/renderer"
	"github.com/pthm-cable/orrery/telemetry"
	"github.com/pthm-cable/orrery/ui"
)

// Options configures a session.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	GestureAddr    string // overrides config when non-empty
	PhraseURL      string // overrides config when non-empty
}

// Game holds the complete session state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	catalog *body.Catalog
	current body.Descriptor
	pending *body.Descriptor

	gen    *cloud.Generator
	driver *engine.Driver

	adapter *gesture.Adapter
	source  *gesture.Source // nil when disabled or failed to start
	phrases *phrase.Cache
	cues    *audio.Cues

	cloudRenderer *renderer.CloudRenderer
	background    *renderer.BackgroundRenderer
	hud           *ui.HUD
	controls      *ui.ControlsPanel
	cam           *camera.Camera

	perf      *telemetry.PerfCollector
	stats     *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool
	statsWin  float64
	lastFlush float64

	frame         int64
	clock         float64
	paused        bool
	headless      bool
	currentPhrase string
	audioOn       bool

	// Manual overrides from the controls panel
	manualExpansion bool
	manualValue     float32

	// Keyboard-simulated hand for tracker-less runs
	simOpen bool
	simPos  mgl32.Vec2
}

// NewGameWithOptions creates a session. Config must be initialized.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	catalog, err := body.CatalogFromConfig(cfg.Bodies)
	if err != nil {
		return nil, fmt.Errorf("loading body catalog: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		catalog:  catalog,
		headless: opts.Headless,
		logStats: opts.LogStats,
		statsWin: opts.StatsWindowSec,
		audioOn:  cfg.Audio.Enabled,
		simOpen:  true,
		simPos:   mgl32.Vec2{0.5, 0.5},
	}
	if g.statsWin <= 0 {
		g.statsWin = cfg.Telemetry.StatsWindow
	}

	// Particle clouds: origin and seeds once, then the first target.
	g.current = catalog.At(0)
	g.gen = cloud.NewGenerator(cfg.Derived.Count, cfg.Derived.Spread32, cfg.Derived.RingFrac32, g.rng)
	set := g.gen.Retarget(g.gen.NewSet(), g.current, catalog.Orbiting())
	g.driver = engine.NewDriver(cfg.Animation, set, g.current.Category)

	// Collaborators behind the phrase and audio boundaries.
	phraseURL := cfg.Phrase.URL
	if opts.PhraseURL != "" {
		phraseURL = opts.PhraseURL
	}
	var provider phrase.Provider
	if phraseURL != "" {
		provider = phrase.NewHTTPProvider(phraseURL, secondsToDuration(cfg.Phrase.TimeoutSec))
	}
	g.phrases = phrase.NewCache(provider, cfg.Phrase.LowWater, cfg.Phrase.RequestCount)

	g.cues = audio.NewCues(cfg.Audio.Volume)
	if g.audioOn && !g.headless {
		if err := g.cues.Initialize(); err != nil {
			g.audioOn = false
		}
	}

	g.adapter = gesture.NewAdapter(cfg.Gesture, gesture.Events{
		OnExpand:      g.onExpand,
		OnContract:    g.onContract,
		RequestPhrase: g.onPhraseRequest,
		NextBody:      g.queueNextBody,
	})

	// Gesture tracker ingest. A failed bind degrades to the idle
	// open-hand state and the keyboard fallback.
	gestureAddr := cfg.Gesture.ListenAddr
	if opts.GestureAddr != "" {
		gestureAddr = opts.GestureAddr
	}
	if gestureAddr != "" {
		src := gesture.NewSource(gestureAddr)
		if err := src.Start(); err != nil {
			slog.Error("gesture tracker unavailable, running in idle state", "error", err)
		} else {
			g.source = src
		}
	}

	// Telemetry.
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.stats = telemetry.NewCollector()
	g.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Warn("could not snapshot config", "error", err)
	}

	// Rendering surfaces (graphics mode only).
	if !g.headless {
		g.cloudRenderer = renderer.NewCloudRenderer()
		g.background = renderer.NewBackgroundRenderer(cfg.Screen.Width, cfg.Screen.Height)
		g.background.Init(opts.Seed)
		g.hud = ui.NewHUD(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.controls = ui.NewControlsPanel(cfg.Derived.ScreenW32-240, 70, 220)
		g.cam = camera.New(cfg.Derived.Spread32)
	}

	slog.Info("session started",
		"body", g.current.Name,
		"particles", cfg.Derived.Count,
		"bodies", catalog.Len(),
	)
	return g, nil
}

// Frame returns the number of completed frames.
func (g *Game) Frame() int64 { return g.frame }

// CurrentBody returns the active body descriptor.
func (g *Game) CurrentBody() body.Descriptor { return g.current }

// Unload releases session resources.
func (g *Game) Unload() {
	if g.source != nil {
		g.source.Close()
	}
	g.cues.Cleanup()
	if g.background != nil {
		g.background.Unload()
	}
	g.output.Close()
}
