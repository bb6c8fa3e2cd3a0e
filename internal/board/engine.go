package board

import "math/rand"

// Spawn4Probability is the chance a spawned tile is a 4 instead of a 2.
const Spawn4Probability = 0.10

// Engine owns the randomness used for spawning. All grid state is passed
// in and returned by value; the engine itself holds no board.
type Engine struct {
	rng *rand.Rand
}

// Outcome is the full result of one move.
type Outcome struct {
	Grid    Grid
	Changed bool
	Spawned *Cell // nil when no tile was placed
}

// NewEngine creates an engine whose spawns are fully determined by seed.
func NewEngine(seed int64) *Engine {
	return &Engine{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Initialize returns an empty grid with two spawned tiles.
func (e *Engine) Initialize() Grid {
	var g Grid
	g = e.SpawnTile(g)
	g = e.SpawnTile(g)
	return g
}

// Spawn places a 2 (or a 4, with Spawn4Probability) in a uniformly chosen
// empty cell. On a full grid it returns the grid unchanged and ok=false.
func (e *Engine) Spawn(g Grid) (next Grid, at Cell, ok bool) {
	empty := EmptyCells(g)
	if len(empty) == 0 {
		return g, Cell{}, false
	}

	at = empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < Spawn4Probability {
		value = 4
	}

	g[at.Row][at.Col] = value
	return g, at, true
}

// SpawnTile is Spawn without the placement details.
func (e *Engine) SpawnTile(g Grid) Grid {
	next, _, _ := e.Spawn(g)
	return next
}

// Advance applies a move and spawns a tile only if the move changed the grid.
func (e *Engine) Advance(g Grid, dir Direction) Outcome {
	next, changed := ApplyMove(g, dir)
	out := Outcome{Grid: next, Changed: changed}
	if !changed {
		return out
	}

	if spawned, at, ok := e.Spawn(next); ok {
		out.Grid = spawned
		out.Spawned = &at
	}
	return out
}

// Step is the per-input entry point: move, then spawn if anything moved.
func (e *Engine) Step(g Grid, dir Direction) Grid {
	return e.Advance(g, dir).Grid
}
