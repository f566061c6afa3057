package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tiledwater/internal/logging"
	"tiledwater/internal/sims/water"
)

// EnvPrefix prefixes every environment override, e.g. TWS_TILE=6.
const EnvPrefix = "TWS"

// Config represents the application settings. Keys match the flag names.
type Config struct {
	ConfigFile string `mapstructure:"-"`

	Sim        string  `mapstructure:"sim"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Tile       int     `mapstructure:"tile"`
	Brush      int     `mapstructure:"brush"`
	RockChance float64 `mapstructure:"rock-chance"`
	TPS        int     `mapstructure:"tps"`
	SimTPS     int     `mapstructure:"sim-tps"`
	Seed       int64   `mapstructure:"seed"`
	HUDWidth   int     `mapstructure:"hud-width"`
	LogLevel   string  `mapstructure:"log-level"`
	LogFormat  string  `mapstructure:"log-format"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "water",
		Width:     100,
		Height:    100,
		Tile:      8,
		TPS:       60,
		SimTPS:    60,
		Seed:      42,
		HUDWidth:  220,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional config file (yaml, toml or json)")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile size in pixels")
	fs.IntVar(&c.Brush, "brush", c.Brush, "edit brush radius in cells")
	fs.Float64Var(&c.RockChance, "rock-chance", c.RockChance, "chance of rock per interior cell on reset")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: info, debug or trace")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log encoding: console or json")
}

// Load layers the config file and TWS_* environment under the flags that were
// set explicitly, then validates the result.
func (c *Config) Load(fs *pflag.FlagSet) error {
	v := viper.New()
	for key, value := range c.defaults() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", c.ConfigFile, err)
		}
	}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return c.Validate()
}

func (c *Config) defaults() map[string]any {
	d := NewConfig()
	return map[string]any{
		"sim":         d.Sim,
		"width":       d.Width,
		"height":      d.Height,
		"tile":        d.Tile,
		"brush":       d.Brush,
		"rock-chance": d.RockChance,
		"tps":         d.TPS,
		"sim-tps":     d.SimTPS,
		"seed":        d.Seed,
		"hud-width":   d.HUDWidth,
		"log-level":   d.LogLevel,
		"log-format":  d.LogFormat,
	}
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Tile <= 0 {
		return fmt.Errorf("tile must be > 0, got %d", c.Tile)
	}
	if c.Brush < 0 || c.Brush > water.MaxBrush {
		return fmt.Errorf("brush must be between 0 and %d, got %d", water.MaxBrush, c.Brush)
	}
	if c.RockChance < 0 || c.RockChance > 1 {
		return fmt.Errorf("rock-chance must be between 0 and 1, got %.2f", c.RockChance)
	}
	if c.TPS <= 0 || c.SimTPS <= 0 {
		return fmt.Errorf("tps and sim-tps must be > 0, got %d and %d", c.TPS, c.SimTPS)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud-width must be >= 0, got %d", c.HUDWidth)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log-format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// LogOptions returns the logger settings.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, Format: c.LogFormat}
}

// SimOptions renders the map handed to the simulation factory.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":           strconv.Itoa(c.Width),
		"h":           strconv.Itoa(c.Height),
		"tile":        strconv.Itoa(c.Tile),
		"brush":       strconv.Itoa(c.Brush),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"rock_chance": strconv.FormatFloat(c.RockChance, 'f', -1, 64),
	}
}
