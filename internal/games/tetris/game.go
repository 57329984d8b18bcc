// Package tetris provides the falling-block puzzle game for the arcade.
// It adapts the engine in the core subpackage to the platform's fixed-tick
// Game interface: input frames become engine commands and the simulation
// rate is divided down into gravity ticks.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier.
const GameID = "tetris"

// Game implements the arcade Game interface around a core.Engine.
type Game struct {
	cfg     config.TetrisConfig
	gravity *config.GravityManager
	engine  *core.Engine
	rng     *rand.Rand
	logger  *log.Logger

	tick       uint64
	fallTicker int // Ticks since the last gravity step

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Most recent rows cleared, shown in the HUD for a while
	flashRows  int
	flashTicks int
}

// Package-level variables for config/difficulty (set by the CLI before creation)
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	gameLogger       *log.Logger
)

// SetConfigPath sets the config file path for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new games and their engines.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

// flashDuration is how many ticks a "+N rows" message stays in the HUD.
const flashDuration = 90

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a Tetris game using the package-level configuration.
func New() *Game {
	logger := gameLogger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{logger: logger}
}

// NewWithConfig creates a Tetris game with an explicit configuration,
// bypassing the config search path.
func NewWithConfig(cfg config.TetrisConfig, logger *log.Logger) *Game {
	g := New()
	if logger != nil {
		g.logger = logger
	}
	g.cfg = cfg
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// loadConfig resolves the game configuration on first Reset.
func (g *Game) loadConfig() {
	if g.cfg.Board.Width != 0 {
		return
	}
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		g.logger.Warn("using default tetris config", "error", err)
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	g.cfg = cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.loadConfig()
	g.gravity = config.NewGravityManager(g.cfg)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = core.NewEngine(g.rng, core.Options{
		Width:        g.cfg.Board.Width,
		Height:       g.cfg.Board.Height,
		RowsPerLevel: g.cfg.Scoring.RowsPerLevel,
		Logger:       g.logger,
	})
	g.tick = 0
	g.fallTicker = 0
	g.flashRows = 0
	g.flashTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.engine.Start()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.requiredSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	status := g.engine.Status()

	// Handle restart
	if in.Has(platformcore.ActionRestart) && status == core.StatusGameOver {
		g.engine.Start()
		g.fallTicker = 0
		return platformcore.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.engine.TogglePause()
	}

	// Gravity and movement stop while paused
	if g.engine.Status() != core.StatusRunning {
		return platformcore.StepResult{State: g.State()}
	}

	pending := g.engine.NeedsNewPiece()
	g.processInput(in)
	if !pending && g.engine.NeedsNewPiece() {
		g.fallTicker = 0
		return platformcore.StepResult{State: g.State()}
	}

	g.fallTicker++
	if g.fallTicker >= g.gravity.FallEvery(g.engine.Level()) {
		g.fallTicker = 0
		g.gravityStep()
	}

	return platformcore.StepResult{State: g.State()}
}

// processInput maps actions to engine commands. Repeated presses within one
// frame are applied in order. A drop that locks the piece ends the frame's
// input since there is nothing left to steer until the next spawn.
func (g *Game) processInput(in platformcore.InputFrame) {
	if g.engine.NeedsNewPiece() {
		return
	}
	for range in.Count(platformcore.ActionLeft) {
		g.engine.MoveHorizontal(-1)
	}
	for range in.Count(platformcore.ActionRight) {
		g.engine.MoveHorizontal(1)
	}
	for range in.Count(platformcore.ActionRotateCW) {
		g.engine.Rotate(true)
	}
	for range in.Count(platformcore.ActionRotateCCW) {
		g.engine.Rotate(false)
	}
	for range in.Count(platformcore.ActionSoftDrop) {
		if !g.engine.SoftDropOneRow() {
			g.afterLock()
			return
		}
		g.fallTicker = 0
	}
	if in.Has(platformcore.ActionHardDrop) {
		g.engine.HardDrop()
		g.afterLock()
	}
}

// gravityStep runs one engine tick and records a lock made by gravity.
func (g *Game) gravityStep() {
	falling := !g.engine.NeedsNewPiece()
	g.engine.Tick()
	if falling && g.engine.NeedsNewPiece() {
		g.afterLock()
	}
}

// afterLock records the last lock for the HUD.
func (g *Game) afterLock() {
	if ev := g.engine.LastLock(); ev.Rows > 0 {
		g.flashRows = ev.Rows
		g.flashTicks = flashDuration
	}
}

// Engine exposes the underlying engine for drivers and tests.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Config returns the resolved configuration.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	status := g.engine.Status()
	return platformcore.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Rows:     g.engine.RowsCleared(),
		GameOver: status == core.StatusGameOver,
		Paused:   status == core.StatusPaused || g.tooSmall,
	}
}
