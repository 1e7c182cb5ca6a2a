package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/scribe/engine/colors"
)

// Config for the engine run.
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"` // RGBA
	Icon       string     `toml:"icon"`       // optional PNG path
	AssetsDir  string     `toml:"assets_dir"` // shader overrides live in <assets_dir>/shaders

	Log    LogConfig    `toml:"log"`
	GUI    GUIConfig    `toml:"gui"`
	Editor EditorConfig `toml:"editor"`
}

type LogConfig struct {
	Level       string   `toml:"level"` // debug, info, warn, error
	Development bool     `toml:"development"`
	OutputPaths []string `toml:"output_paths"`
}

// GUIConfig holds the interaction tunables. Times are in milliseconds.
type GUIConfig struct {
	DoubleClickMs  int     `toml:"double_click_ms"`
	MultiClickMs   int     `toml:"multi_click_ms"`
	ScrollStep     float32 `toml:"scroll_step"`
	CaretBlinkMs   int     `toml:"caret_blink_ms"`
	MinTextScale   int     `toml:"min_text_scale"`
	MaxTextScale   int     `toml:"max_text_scale"`
	WordModifier   string  `toml:"word_modifier"` // "ctrl", "alt" or "" for the platform default
	AutoScrollEdge float32 `toml:"auto_scroll_edge"`

	Theme ThemeConfig `toml:"theme"`
}

// ThemeConfig holds widget colours as hex strings (#rgb, #rrggbb, #rrggbbaa).
// Empty entries keep the built-in colour.
type ThemeConfig struct {
	Text       string `toml:"text"`
	Background string `toml:"background"`
	Selection  string `toml:"selection"`
	Caret      string `toml:"caret"`
	Button     string `toml:"button"`
	ButtonHot  string `toml:"button_hot"`
	ButtonDown string `toml:"button_down"`
	Scrollbar  string `toml:"scrollbar"`
}

func (t ThemeConfig) validate() error {
	for name, v := range map[string]string{
		"text": t.Text, "background": t.Background, "selection": t.Selection,
		"caret": t.Caret, "button": t.Button, "button_hot": t.ButtonHot,
		"button_down": t.ButtonDown, "scrollbar": t.Scrollbar,
	} {
		if v == "" {
			continue
		}
		if _, err := colors.ParseHex(v); err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
	}
	return nil
}

type EditorConfig struct {
	Font       string `toml:"font"`
	FontSizePx int    `toml:"font_size_px"`
	TextScale  int    `toml:"text_scale"`
	File       string `toml:"file"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "scribe",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		Log: LogConfig{
			Level:       "info",
			OutputPaths: []string{"stderr"},
		},
		GUI: GUIConfig{
			DoubleClickMs:  350,
			MultiClickMs:   500,
			ScrollStep:     40,
			CaretBlinkMs:   500,
			MinTextScale:   1,
			MaxTextScale:   6,
			AutoScrollEdge: 3,
		},
		Editor: EditorConfig{
			Font:       "RobotoMono.ttf",
			FontSizePx: 16,
			TextScale:  1,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := ParseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data into cfg. Keys absent from data keep their value.
func ParseConfig(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.GUI.MinTextScale > cfg.GUI.MaxTextScale {
		return fmt.Errorf("min_text_scale %d exceeds max_text_scale %d", cfg.GUI.MinTextScale, cfg.GUI.MaxTextScale)
	}
	return cfg.GUI.Theme.validate()
}

// SaveConfig writes cfg as TOML.
func SaveConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}
