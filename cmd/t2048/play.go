package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start an interactive game.

Controls (defaults, see 't2048 config'):
  Arrows/WASD/HJKL  - Slide tiles
  P/Esc             - Pause
  R                 - New board
  Ctrl+S            - Save a screenshot to ~/.t2048/screenshots
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml --log-file /tmp/t2048.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", cfg.Source)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := cfg.Runtime(width, height, flagSeed)
	if cmd.Flags().Changed("fps") {
		runtime.TickRate = flagFPS
	}
	if runtime.TickRate <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", runtime.TickRate)
		os.Exit(1)
	}

	g := game.New(game.Options{
		Palette:   cfg,
		MinWidth:  cfg.MinWidth,
		MinHeight: cfg.MinHeight,
	})

	opts := tui.Options{
		Keys:   tui.NewKeyMap(cfg.Keys),
		Logger: logger,
	}
	if err := tui.Run(g, runtime, opts); err != nil {
		logger.Error("game exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
