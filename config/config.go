package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/parameter"
)

// EnvPath names the config file when no path is given
const EnvPath = "WEBBG_CONFIG"

const schemaURL = "mem:///web-bg/config.schema.json"

//go:embed schema.json
var schemaJSON []byte

// Config is the root of web-bg.yaml, every field is optional
type Config struct {
	Seed          uint64        `yaml:"seed"` // 0 picks a random seed
	FrameInterval Duration      `yaml:"frame_interval"`
	Maze          MazeConfig    `yaml:"maze"`
	Stream        StreamConfig  `yaml:"stream"`
	Player        PlayerConfig  `yaml:"player"`
	Audio         AudioConfig   `yaml:"audio"`
	Log           LogConfig     `yaml:"log"`
	Metrics       MetricsConfig `yaml:"metrics"`
}

type MazeConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Rooms           int     `yaml:"rooms"`
	MazeProbability float64 `yaml:"maze_probability"`
	CaveDecay       float64 `yaml:"cave_decay"`
	Mode            string  `yaml:"mode"`
}

// StreamConfig margins are in tiles
type StreamConfig struct {
	VisibleMargin   float64 `yaml:"visible_margin"`
	DespawnMargin   float64 `yaml:"despawn_margin"`
	DespawnPerFrame int     `yaml:"despawn_per_frame"`
}

type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Debug  bool   `yaml:"debug"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // Empty disables the endpoint
}

// Duration decodes YAML strings such as "16ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	d.Duration = parsed
	return nil
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FrameInterval: Duration{Duration: parameter.FrameInterval},
		Maze: MazeConfig{
			Width:           parameter.MazeWidth,
			Height:          parameter.MazeHeight,
			Rooms:           parameter.MazeRooms,
			MazeProbability: parameter.MazeModeProbability,
			CaveDecay:       parameter.CaveDecayBase,
			Mode:            maze.ModeRandom.String(),
		},
		Stream: StreamConfig{
			VisibleMargin:   parameter.StreamVisibleMarginTiles,
			DespawnMargin:   parameter.StreamDespawnMarginTiles,
			DespawnPerFrame: parameter.StreamDespawnPerFrame,
		},
		Player: PlayerConfig{Speed: parameter.PlayerSpeed},
		Audio:  AudioConfig{Enabled: true},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Dir:    "logs",
		},
	}
}

// Load reads path, or the file named by WEBBG_CONFIG when path is empty
// With neither set the defaults are returned
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates data against the schema and overlays it on the defaults
func Parse(data []byte) (Config, error) {
	if err := validate(data); err != nil {
		return Config{}, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Stream.VisibleMargin >= cfg.Stream.DespawnMargin {
		return Config{}, fmt.Errorf("stream: visible_margin %.2f must be below despawn_margin %.2f",
			cfg.Stream.VisibleMargin, cfg.Stream.DespawnMargin)
	}
	if _, err := maze.ParseMode(cfg.Maze.Mode); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if doc == nil {
		return nil
	}

	// YAML values go through JSON so the validator sees plain JSON types
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config to json: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("config to json: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load config schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	return s, nil
}

// GeneratorConfig converts the maze section for maze.Generate
func (c Config) GeneratorConfig() (maze.Config, error) {
	mode, err := maze.ParseMode(c.Maze.Mode)
	if err != nil {
		return maze.Config{}, err
	}
	return maze.Config{
		Width:           c.Maze.Width,
		Height:          c.Maze.Height,
		Rooms:           c.Maze.Rooms,
		MazeProbability: c.Maze.MazeProbability,
		CaveDecay:       c.Maze.CaveDecay,
		Mode:            mode,
	}, nil
}

// Summary is a one-line description for logs
func (c Config) Summary() string {
	return strings.Join([]string{
		fmt.Sprintf("maze=%dx%d", c.Maze.Width, c.Maze.Height),
		"mode=" + c.Maze.Mode,
		fmt.Sprintf("rooms=%d", c.Maze.Rooms),
		fmt.Sprintf("frame=%s", c.FrameInterval.Duration),
	}, " ")
}
