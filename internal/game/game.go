// Package game wraps the board engine in a tick-driven session that the
// terminal platform can drive: it owns the single grid instance, maps
// input frames to moves and renders into a core.Screen.
package game

import (
	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Palette picks the display color of a tile value.
type Palette interface {
	TileColor(value int) core.Color
}

// Options configures presentation details that are not part of the board rules.
type Options struct {
	Palette   Palette
	MinWidth  int
	MinHeight int
}

// Game is a single-player 2048 session.
type Game struct {
	opts   Options
	engine *board.Engine
	grid   board.Grid
	tick   uint64
	seed   int64

	popTicks int
	pop      *popAnimation

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.MinWidth <= 0 {
		opts.MinWidth = boardWidth
	}
	if opts.MinHeight <= 0 {
		opts.MinHeight = boardHeight + hudHeight
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a fresh board seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.engine = board.NewEngine(cfg.Seed)
	g.grid = g.engine.Initialize()
	g.tick = 0
	g.popTicks = cfg.PopTicks
	g.pop = nil
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.opts.MinWidth || h < g.opts.MinHeight
}

// Grid returns a copy of the current board.
func (g *Game) Grid() board.Grid {
	return g.grid
}

// SetGrid replaces the board, e.g. to resume a position.
func (g *Game) SetGrid(grid board.Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	g.grid = grid
	g.pop = nil
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.grid = g.engine.Initialize()
		g.pop = nil
		return core.StepResult{State: g.State()}
	}

	// Moves arriving while the new tile is still popping in are dropped.
	if g.updateAnimation() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFor maps the first move action found in the frame to a direction.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.DirUp, true
	case in.Has(core.ActionDown):
		return board.DirDown, true
	case in.Has(core.ActionLeft):
		return board.DirLeft, true
	case in.Has(core.ActionRight):
		return board.DirRight, true
	}
	return 0, false
}

// processMove applies a move and starts the spawn animation.
func (g *Game) processMove(dir board.Direction) bool {
	out := g.engine.Advance(g.grid, dir)
	if !out.Changed {
		return false
	}

	g.grid = out.Grid
	if out.Spawned != nil {
		g.startPop(*out.Spawned)
	}
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused:    g.paused || g.tooSmall,
		Animating: g.pop != nil,
	}
}
