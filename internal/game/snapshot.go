package game

import "github.com/vovakirdan/tui-2048/internal/board"

// StateType represents the current session state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateAnimating   StateType = "animating"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the session for determinism tests and debugging.
type Snapshot struct {
	Tick    uint64
	Seed    int64
	Grid    board.Grid
	Tiles   int
	MaxTile int
	State   StateType
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.pop != nil:
		state = StateAnimating
	}

	return Snapshot{
		Tick:    g.tick,
		Seed:    g.seed,
		Grid:    g.grid,
		Tiles:   g.grid.TileCount(),
		MaxTile: maxTile(g.grid),
		State:   state,
	}
}

// maxTile returns the largest value on the board.
func maxTile(grid board.Grid) int {
	maxVal := 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if grid[r][c] > maxVal {
				maxVal = grid[r][c]
			}
		}
	}
	return maxVal
}
