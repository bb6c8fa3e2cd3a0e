package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardWidth  = board.Size*cellWidth + 1  // +1 for right border
	boardHeight = board.Size*cellHeight + 1 // +1 for bottom border
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := core.Max(0, (g.screenW-boardWidth)/2)
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	if g.paused {
		frame := core.NewRect(boardX, boardY, boardWidth, boardHeight)
		cx, cy := frame.Center()
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.opts.MinWidth, g.opts.MinHeight))
}

// renderHUD draws the title and board summary.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2 0 4 8"
	dst.DrawText(boardX+(boardWidth-len(title))/2, 0, title)

	info := fmt.Sprintf("Tiles: %d", g.grid.TileCount())
	dst.DrawText(boardX, 1, info)

	maxStr := fmt.Sprintf("Max: %d", maxTile(g.grid))
	dst.DrawText(boardX+boardWidth-len(maxStr), 1, maxStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < board.Size+1; y++ {
		for x := 0; x < board.Size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, corner(x, y))

			if x < board.Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < board.Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			val := g.grid[r][c]
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			text := strconv.Itoa(val)
			color := g.tileColor(val)

			if g.pop != nil && g.pop.at == (board.Cell{Row: r, Col: c}) {
				color = core.ColorBrightWhite
				if g.pop.progress() < 0.5 {
					text = "•"
				}
			}

			// Center the value in the cell
			padLeft := core.Max(0, (cellWidth-1-len([]rune(text)))/2)
			dst.DrawTextColor(cellX+padLeft, cellY, text, color)
		}
	}
}

func (g *Game) tileColor(value int) core.Color {
	if g.opts.Palette == nil {
		return core.ColorDefault
	}
	return g.opts.Palette.TileColor(value)
}

// corner picks the box-drawing rune for a grid intersection.
func corner(x, y int) rune {
	last := board.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
