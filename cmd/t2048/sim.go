package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/board"
)

var (
	flagMoves string
	flagBoard string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Apply a move sequence and print each board",
	Long: `Run the board engine without the terminal UI.

Moves are either a run of letters (l, r, u, d) or a comma/space
separated list of direction names. The starting board is either two
spawned tiles or an explicit --board with rows separated by '/'.
Use '.' or 0 for empty cells.

Examples:
  t2048 sim --seed 7 --moves lurd
  t2048 sim --moves "left, left, up"
  t2048 sim --board "2,2,4,0/. . . ./0,0,0,2/. . . ." --moves l`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := parseMoves(flagMoves)
		if err != nil {
			return err
		}
		logger := newLogger(os.Stderr)
		return runSim(cmd.OutOrStdout(), logger, flagBoard, moves, resolveSeed())
	},
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move sequence, e.g. lurd or left,up")
	simCmd.Flags().StringVar(&flagBoard, "board", "", "Starting board, rows separated by '/'")
}

// parseMoves accepts "lurd" style letter runs or delimited direction names.
func parseMoves(s string) ([]board.Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tokens []string
	if dir, err := board.ParseDirection(s); err == nil {
		return []board.Direction{dir}, nil
	}
	if strings.ContainsAny(s, ", \t") {
		tokens = strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	} else {
		for _, r := range s {
			tokens = append(tokens, string(r))
		}
	}

	moves := make([]board.Direction, 0, len(tokens))
	for i, tok := range tokens {
		dir, err := board.ParseDirection(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, dir)
	}
	return moves, nil
}

// runSim plays moves from the starting board and writes every board to w.
func runSim(w io.Writer, logger *log.Logger, start string, moves []board.Direction, seed int64) error {
	engine := board.NewEngine(seed)

	var grid board.Grid
	if start != "" {
		parsed, err := board.ParseGrid(start)
		if err != nil {
			return fmt.Errorf("invalid --board: %w", err)
		}
		grid = parsed
	} else {
		grid = engine.Initialize()
	}

	logger.Debug("simulation started", "seed", seed, "moves", len(moves))
	fmt.Fprintf(w, "start (seed %d)\n%s\n", seed, grid)

	changed := 0
	for i, dir := range moves {
		out := engine.Advance(grid, dir)
		grid = out.Grid

		switch {
		case out.Spawned != nil:
			changed++
			at := *out.Spawned
			fmt.Fprintf(w, "\n%d: %s, spawned %d at (%d,%d)\n", i+1, dir, grid[at.Row][at.Col], at.Row, at.Col)
			logger.Debug("board changed", "move", i+1, "dir", dir, "tiles", grid.TileCount())
		case out.Changed:
			changed++
			fmt.Fprintf(w, "\n%d: %s\n", i+1, dir)
		default:
			fmt.Fprintf(w, "\n%d: %s, no change\n", i+1, dir)
			logger.Debug("move ignored", "move", i+1, "dir", dir)
		}
		fmt.Fprintln(w, grid)
	}

	logger.Info("simulation finished", "moves", len(moves), "changed", changed, "sum", grid.Sum())
	return nil
}
