package game

import "github.com/vovakirdan/tui-2048/internal/board"

// popAnimation marks a freshly spawned tile for a few ticks.
type popAnimation struct {
	at       board.Cell
	ticks    int
	duration int
}

// progress returns 0.0 → 1.0 over the animation's lifetime.
func (p *popAnimation) progress() float64 {
	if p.duration <= 0 {
		return 1.0
	}
	t := float64(p.ticks) / float64(p.duration)
	if t > 1.0 {
		t = 1.0
	}
	return t
}

// startPop begins the spawn animation for the tile at cell.
func (g *Game) startPop(at board.Cell) {
	if g.popTicks <= 0 {
		return
	}
	g.pop = &popAnimation{at: at, duration: g.popTicks}
}

// updateAnimation advances the animation state.
// Returns true if animation is still in progress.
func (g *Game) updateAnimation() bool {
	if g.pop == nil {
		return false
	}

	g.pop.ticks++
	if g.pop.ticks >= g.pop.duration {
		g.pop = nil
		return false
	}
	return true
}
