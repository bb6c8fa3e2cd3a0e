package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate:  60,
		PopTicks:  6,
		MinWidth:  25,
		MinHeight: 12,
		Palette: map[int]string{
			2:    "white",
			4:    "bright_white",
			8:    "yellow",
			16:   "orange",
			32:   "bright_red",
			64:   "red",
			128:  "bright_yellow",
			256:  "bright_green",
			512:  "green",
			1024: "bright_cyan",
			2048: "bright_magenta",
			4096: "magenta",
		},
		Keys: KeyConfig{
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Pause:   []string{"p", "esc"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
