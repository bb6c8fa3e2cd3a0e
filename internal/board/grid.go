// Package board implements the 2048 board engine: pure grid transitions
// (slide, merge, rotate) plus seeded tile spawning.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Grid is a 4x4 board. 0 marks an empty cell, any other value is a tile.
// Grid is a value type, so every transition returns a fresh copy.
type Grid [Size][Size]int

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

var (
	// ErrInvalidTile is returned for values that are neither 0 nor a power of two >= 2.
	ErrInvalidTile = errors.New("board: invalid tile value")
	// ErrBadShape is returned when parsed input is not 4 rows of 4 cells.
	ErrBadShape = errors.New("board: grid must be 4x4")
)

// EmptyCells returns all empty positions in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// TileCount returns the number of non-empty cells.
func (g Grid) TileCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			total += g[r][c]
		}
	}
	return total
}

// Validate reports the first cell holding a value that cannot appear on a board.
func (g Grid) Validate() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !validTile(g[r][c]) {
				return fmt.Errorf("%w: %d at row %d col %d", ErrInvalidTile, g[r][c], r, c)
			}
		}
	}
	return nil
}

func validTile(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// String renders the grid as right-aligned columns, one row per line.
func (g Grid) String() string {
	width := 1
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if w := len(strconv.Itoa(g[r][c])); w > width {
				width = w
			}
		}
	}

	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if g[r][c] != 0 {
				cell = strconv.Itoa(g[r][c])
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// ParseGrid reads a grid from text. Rows are separated by '/', ';' or
// newlines; cells by commas or whitespace. "." is accepted as an empty cell.
func ParseGrid(s string) (Grid, error) {
	var g Grid

	rows := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '/' || r == ';' || r == '\n'
	})
	if len(rows) != Size {
		return g, fmt.Errorf("%w: got %d rows", ErrBadShape, len(rows))
	}

	for r, row := range rows {
		cells := strings.FieldsFunc(row, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(cells) != Size {
			return g, fmt.Errorf("%w: row %d has %d cells", ErrBadShape, r, len(cells))
		}
		for c, cell := range cells {
			if cell == "." {
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return g, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidTile, cell, r, c)
			}
			g[r][c] = v
		}
	}

	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}
