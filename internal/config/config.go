// Package config holds the tunables shared by both hosts.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Game holds the simulation tunables. Distances are logical pixels.
type Game struct {
	Speed          float64 `json:"speed"`           // head advance per frame
	SegmentSize    float64 `json:"segment_size"`    // stroke thickness of the snake
	InitialLength  int     `json:"initial_length"`  // segments after (re)initialisation
	MaxLength      int     `json:"max_length"`      // 0 = unbounded growth
	EatSlack       float64 `json:"eat_slack"`       // added to SegmentSize for the food hit radius
	MenuHitRadius  float64 `json:"menu_hit_radius"` // head to menu target
	MenuOffset     float64 `json:"menu_offset"`     // menu target inset from the top-right corner
	FoodMargin     float64 `json:"food_margin"`     // inset from every edge for food sampling
	MinSpan        float64 `json:"min_span"`        // floor for the sampling rectangle
	FoodClearance  float64 `json:"food_clearance"`  // minimum food distance from the menu target
	SpawnAttempts  int     `json:"spawn_attempts"`  // rejection sampling budget
	SeamThreshold  float64 `json:"seam_threshold"`  // pen lift when consecutive points jump further
	StartHeightPct float64 `json:"start_height_pct"`
}

// Palette holds hex colors (#rrggbb).
type Palette struct {
	Snake      string `json:"snake"`
	Food       string `json:"food"`
	Background string `json:"background"`
	Ink        string `json:"ink"`
	Muted      string `json:"muted"`
}

// Window configures the desktop host.
type Window struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	TPS    int    `json:"tps"`
}

// Config is the root of the JSON config file.
type Config struct {
	Game     Game    `json:"game"`
	Palette  Palette `json:"palette"`
	Window   Window  `json:"window"`
	Language string  `json:"language"`
	LogFile  string  `json:"log_file"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Game: Game{
			Speed:          4,
			SegmentSize:    12,
			InitialLength:  20,
			EatSlack:       10,
			MenuHitRadius:  40,
			MenuOffset:     50,
			FoodMargin:     50,
			MinSpan:        10,
			FoodClearance:  120,
			SpawnAttempts:  20,
			SeamThreshold:  100,
			StartHeightPct: 0.75,
		},
		Palette: Palette{
			Snake:      "#a8a29e", // stone-400
			Food:       "#78716c", // stone-500
			Background: "#fafaf9", // stone-50
			Ink:        "#1c1917", // stone-900
			Muted:      "#a8a29e",
		},
		Window: Window{
			Title:  "snakefolio",
			Width:  1280,
			Height: 800,
			TPS:    60,
		},
		Language: "en",
		LogFile:  "snakefolio.log",
	}
}

// Load reads a JSON file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	g := c.Game
	var errs []error
	if g.Speed <= 0 {
		errs = append(errs, errors.New("config: speed must be positive"))
	}
	if g.SegmentSize <= 0 {
		errs = append(errs, errors.New("config: segment_size must be positive"))
	}
	if g.InitialLength < 1 {
		errs = append(errs, errors.New("config: initial_length must be at least 1"))
	}
	if g.MaxLength != 0 && g.MaxLength < g.InitialLength {
		errs = append(errs, fmt.Errorf("config: max_length %d below initial_length %d", g.MaxLength, g.InitialLength))
	}
	if g.SpawnAttempts < 1 {
		errs = append(errs, errors.New("config: spawn_attempts must be at least 1"))
	}
	if g.MinSpan <= 0 {
		errs = append(errs, errors.New("config: min_span must be positive"))
	}
	if g.SeamThreshold <= g.Speed {
		errs = append(errs, errors.New("config: seam_threshold must exceed speed"))
	}
	if g.StartHeightPct < 0 || g.StartHeightPct > 1 {
		errs = append(errs, errors.New("config: start_height_pct must be within [0,1]"))
	}
	for name, hex := range map[string]string{
		"snake": c.Palette.Snake, "food": c.Palette.Food, "background": c.Palette.Background,
		"ink": c.Palette.Ink, "muted": c.Palette.Muted,
	} {
		if _, err := ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("config: palette.%s: %w", name, err))
		}
	}
	if c.Window.TPS < 1 {
		errs = append(errs, errors.New("config: window.tps must be at least 1"))
	}
	return errors.Join(errs...)
}
