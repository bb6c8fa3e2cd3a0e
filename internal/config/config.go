// Package config provides YAML-based configuration loading for the
// terminal front end.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every tunable of the front end. The board rules themselves
// are fixed and not configurable.
type Config struct {
	TickRate  int            `yaml:"tick_rate"`
	PopTicks  int            `yaml:"pop_ticks"`
	MinWidth  int            `yaml:"min_width"`
	MinHeight int            `yaml:"min_height"`
	Palette   map[int]string `yaml:"palette"`
	Keys      KeyConfig      `yaml:"keys"`

	// Source names the file the config was read from.
	Source string `yaml:"-"`
}

// KeyConfig lists the terminal key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String() ("left", "ctrl+c", "a").
type KeyConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// Bindings returns the key lists keyed by the action they trigger.
func (k KeyConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionLeft:    k.Left,
		core.ActionRight:   k.Right,
		core.ActionUp:      k.Up,
		core.ActionDown:    k.Down,
		core.ActionPause:   k.Pause,
		core.ActionRestart: k.Restart,
		core.ActionQuit:    k.Quit,
	}
}

// Validate checks ranges, colors and key bindings.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.PopTicks < 0 {
		return fmt.Errorf("%w: pop_ticks must not be negative, got %d", ErrInvalid, c.PopTicks)
	}
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		return fmt.Errorf("%w: min_width and min_height must be positive", ErrInvalid)
	}

	for value, name := range c.Palette {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: palette entry %d has unknown color %q", ErrInvalid, value, name)
		}
	}

	owner := make(map[string]core.Action)
	for action, keys := range c.Keys.Bindings() {
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, action)
		}
		for _, k := range keys {
			if prev, taken := owner[k]; taken && prev != action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, action)
			}
			owner[k] = action
		}
	}

	return nil
}

// TileColor returns the palette color for a tile value. Values above the
// largest palette entry reuse that entry's color.
func (c Config) TileColor(value int) core.Color {
	if value == 0 || len(c.Palette) == 0 {
		return core.ColorDefault
	}

	keys := make([]int, 0, len(c.Palette))
	for k := range c.Palette {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best := keys[0]
	for _, k := range keys {
		if k > value {
			break
		}
		best = k
	}

	color, _ := core.ParseColor(c.Palette[best])
	return color
}

// Runtime converts the config into the runtime settings the game consumes.
func (c Config) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: c.TickRate,
		Seed:     seed,
		PopTicks: c.PopTicks,
	}
}
