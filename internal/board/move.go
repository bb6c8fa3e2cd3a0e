package board

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized input.
var ErrUnknownDirection = errors.New("board: unknown direction")

// Directions lists every valid direction.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// ParseDirection accepts a full name or its first letter, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// rotations maps a direction to the clockwise quarter turns applied before
// and after the left slide. Each pair sums to a full turn.
var rotations = map[Direction][2]int{
	DirLeft:  {0, 0},
	DirRight: {2, 2},
	DirUp:    {3, 1},
	DirDown:  {1, 3},
}

// SlideRow compacts a row to the left and merges equal neighbours.
// A single left-to-right pass guarantees each tile merges at most once.
func SlideRow(row [Size]int) [Size]int {
	var packed [Size]int
	n := 0
	for _, v := range row {
		if v != 0 {
			packed[n] = v
			n++
		}
	}

	for i := 0; i < n-1; i++ {
		if packed[i] != 0 && packed[i] == packed[i+1] {
			packed[i] *= 2
			packed[i+1] = 0
		}
	}

	var result [Size]int
	w := 0
	for _, v := range packed[:n] {
		if v != 0 {
			result[w] = v
			w++
		}
	}
	return result
}

// MoveLeft slides every row to the left.
// Returns the new grid and whether any row changed.
func MoveLeft(g Grid) (Grid, bool) {
	var next Grid
	changed := false

	for r := 0; r < Size; r++ {
		next[r] = SlideRow(g[r])
		if next[r] != g[r] {
			changed = true
		}
	}

	return next, changed
}

// RotateClockwise turns the grid a quarter turn: (r, c) moves to (c, 3-r).
func RotateClockwise(g Grid) Grid {
	var result Grid
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			result[c][Size-1-r] = g[r][c]
		}
	}
	return result
}

func rotate(g Grid, turns int) Grid {
	for i := 0; i < turns; i++ {
		g = RotateClockwise(g)
	}
	return g
}

// ApplyMove performs a move by rotating the grid so the direction becomes
// "left", sliding, and rotating back. An invalid direction is a no-op.
func ApplyMove(g Grid, dir Direction) (Grid, bool) {
	turns, ok := rotations[dir]
	if !ok {
		return g, false
	}

	moved, changed := MoveLeft(rotate(g, turns[0]))
	return rotate(moved, turns[1]), changed
}

