package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Particle field parameters
	ShapeCount = 30
	WrapMargin = 50

	MinDepth = 1
	MaxDepth = 3

	MinSize = 10
	MaxSize = 30

	MaxSpeed         = 0.25
	MaxRotationSpeed = 0.01

	// Glow approximation
	GlowLayers = 4

	// Headless export defaults
	ExportFrames = 120
	ExportEvery  = 30

	ChatModel       = "gemini-2.5-flash"
	ChatTemperature = 0.7

	DefaultFile = "kawaiifolio.yaml"
)

// Config is the on-disk configuration. Zero values fall back to the
// constants above.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
	Chat    ChatConfig    `yaml:"chat"`
	Logging LoggingConfig `yaml:"logging"`

	// SystemTheme is what the "system" preference resolves to.
	SystemTheme string `yaml:"system_theme"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	HUD    bool   `yaml:"hud"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Frames int    `yaml:"frames"`
	Every  int    `yaml:"every"`
	Seed   uint64 `yaml:"seed"`
}

type ChatConfig struct {
	APIKey      string   `yaml:"api_key"`
	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature"` // nil means ChatTemperature
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration populated with built-in defaults.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Kawaiifolio - T: theme, S: snapshot, Space: pause, Esc/Q: quit",
			HUD:    true,
		},
		Storage: StorageConfig{Path: defaultStoragePath()},
		Export: ExportConfig{
			Dir:    "frames",
			Width:  WindowWidth,
			Height: WindowHeight,
			Frames: ExportFrames,
			Every:  ExportEvery,
		},
		Chat: ChatConfig{
			Model:       ChatModel,
			Temperature: float32Ptr(ChatTemperature),
		},
		Logging:     LoggingConfig{Level: "info"},
		SystemTheme: "light",
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Chat.APIKey = key
	} else if key := os.Getenv("API_KEY"); key != "" {
		c.Chat.APIKey = key
	}
	if th := os.Getenv("KAWAIIFOLIO_SYSTEM_THEME"); th != "" {
		c.SystemTheme = strings.ToLower(th)
	}
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Storage.Path == "" {
		c.Storage.Path = d.Storage.Path
	}
	if c.Export.Dir == "" {
		c.Export.Dir = d.Export.Dir
	}
	if c.Export.Width <= 0 {
		c.Export.Width = d.Export.Width
	}
	if c.Export.Height <= 0 {
		c.Export.Height = d.Export.Height
	}
	if c.Export.Frames <= 0 {
		c.Export.Frames = d.Export.Frames
	}
	if c.Export.Every <= 0 {
		c.Export.Every = d.Export.Every
	}
	if c.Chat.Model == "" {
		c.Chat.Model = d.Chat.Model
	}
	if c.Chat.Temperature == nil {
		c.Chat.Temperature = d.Chat.Temperature
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.SystemTheme == "" {
		c.SystemTheme = d.SystemTheme
	}
}

func float32Ptr(v float32) *float32 { return &v }

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".kawaiifolio", "storage.json")
	}
	return filepath.Join(dir, "kawaiifolio", "storage.json")
}
