// Package config holds the tuning parameters of a level: its geometry,
// camera borders, and spawn cadences. Files may be yaml or toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Seed    string        `yaml:"seed" toml:"seed"`
	Level   LevelConfig   `yaml:"level" toml:"level"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Spawn   SpawnConfig   `yaml:"spawn" toml:"spawn"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Script  ScriptConfig  `yaml:"script" toml:"script"`
}

type LevelConfig struct {
	WidthInTiles      int `yaml:"width_in_tiles" toml:"width_in_tiles"`
	TileSize          int `yaml:"tile_size" toml:"tile_size"`
	SegmentSpan       int `yaml:"segment_span" toml:"segment_span"`
	MinCrossroadWidth int `yaml:"min_crossroad_width" toml:"min_crossroad_width"`
	MaxCrossroadWidth int `yaml:"max_crossroad_width" toml:"max_crossroad_width"`
	BorderRows        int `yaml:"border_rows" toml:"border_rows"`
}

type CameraConfig struct {
	ViewWidth  int `yaml:"view_width" toml:"view_width"`
	ViewHeight int `yaml:"view_height" toml:"view_height"`
	// BorderSize is the inner margin the player may enter before the view scrolls.
	BorderSize int `yaml:"border_size" toml:"border_size"`
}

type SpawnConfig struct {
	// Interval is the number of ticks between global NPC spawns.
	Interval int `yaml:"interval" toml:"interval"`
	// CrossroadCadence is the number of ticks between crossing spawns per crossroad.
	CrossroadCadence int     `yaml:"crossroad_cadence" toml:"crossroad_cadence"`
	Capacity         int     `yaml:"capacity" toml:"capacity"`
	Lookahead        float64 `yaml:"lookahead" toml:"lookahead"`
	MinSpeed         float64 `yaml:"min_speed" toml:"min_speed"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

type ScriptConfig struct {
	// SpawnFilter is an optional path to a tengo spawn filter.
	SpawnFilter string `yaml:"spawn_filter" toml:"spawn_filter"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Seed: "kontra",
		Level: LevelConfig{
			WidthInTiles:      5000,
			TileSize:          9,
			SegmentSpan:       150,
			MinCrossroadWidth: 5,
			MaxCrossroadWidth: 15,
			BorderRows:        2,
		},
		Camera: CameraConfig{
			ViewWidth:  640,
			ViewHeight: 360,
			BorderSize: 100,
		},
		Spawn: SpawnConfig{
			Interval:         10,
			CrossroadCadence: 50,
			Capacity:         50,
			Lookahead:        200,
			MinSpeed:         0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// HeightInTiles is the number of tile rows needed to cover the view.
func (c Config) HeightInTiles() int {
	if c.Level.TileSize <= 0 {
		return 0
	}
	return (c.Camera.ViewHeight + c.Level.TileSize - 1) / c.Level.TileSize
}

// Validate rejects configurations the level cannot be built from.
func (c Config) Validate() error {
	switch {
	case c.Level.TileSize <= 0:
		return fmt.Errorf("%w: tile_size %d", ErrInvalidConfig, c.Level.TileSize)
	case c.Level.WidthInTiles <= 0:
		return fmt.Errorf("%w: width_in_tiles %d", ErrInvalidConfig, c.Level.WidthInTiles)
	case c.Level.SegmentSpan <= 0:
		return fmt.Errorf("%w: segment_span %d", ErrInvalidConfig, c.Level.SegmentSpan)
	case c.Level.MinCrossroadWidth <= 0 || c.Level.MaxCrossroadWidth < c.Level.MinCrossroadWidth:
		return fmt.Errorf("%w: crossroad width [%d,%d]", ErrInvalidConfig, c.Level.MinCrossroadWidth, c.Level.MaxCrossroadWidth)
	case c.Level.BorderRows < 0:
		return fmt.Errorf("%w: border_rows %d", ErrInvalidConfig, c.Level.BorderRows)
	case c.Camera.ViewWidth <= 0 || c.Camera.ViewHeight <= 0:
		return fmt.Errorf("%w: view %dx%d", ErrInvalidConfig, c.Camera.ViewWidth, c.Camera.ViewHeight)
	case c.Camera.BorderSize < 0 || c.Camera.BorderSize >= c.Camera.ViewWidth:
		return fmt.Errorf("%w: border_size %d for view width %d", ErrInvalidConfig, c.Camera.BorderSize, c.Camera.ViewWidth)
	case c.Level.WidthInTiles*c.Level.TileSize < c.Camera.ViewWidth:
		return fmt.Errorf("%w: level narrower than view", ErrInvalidConfig)
	case c.Spawn.Interval <= 0:
		return fmt.Errorf("%w: spawn interval %d", ErrInvalidConfig, c.Spawn.Interval)
	case c.Spawn.Capacity <= 0:
		return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, c.Spawn.Capacity)
	case c.Spawn.MinSpeed <= 0:
		return fmt.Errorf("%w: min_speed %v", ErrInvalidConfig, c.Spawn.MinSpeed)
	}
	return nil
}

// Load reads path over the defaults. The extension picks the format. A
// missing yaml file falls back to the embedded copy of the same name.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		data, err = LoadEmbedded(filepath.Base(path))
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format implied by name.
func Decode(name string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", name, err)
		}
	default:
		return fmt.Errorf("config: unsupported format %q", filepath.Ext(name))
	}
	return nil
}
