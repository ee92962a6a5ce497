// Package config resolves runtime settings from defaults, an optional .env
// file, the process environment and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"shadow-leap/assets"

	"github.com/joho/godotenv"
)

// Config holds every host setting.
type Config struct {
	Width        float64
	Height       float64
	Tile         float64
	TickInterval time.Duration
	Seed         int64 // 0 seeds from the clock
	Levels       int
	Lives        int
	LogPath      string // empty discards logs
	Mute         bool
	Port         int
	HostKey      string
}

// Default is the classic board: 1024x768 pixels, 48 px tiles, three
// lives, two levels, ~60 ticks per second.
func Default() Config {
	return Config{
		Width:        assets.BoardWidth,
		Height:       assets.BoardHeight,
		Tile:         assets.Tile,
		TickInterval: 16 * time.Millisecond,
		Levels:       2,
		Lives:        3,
		Port:         2222,
		HostKey:      "server_host_key",
	}
}

// Environment variable names.
const (
	EnvWidth   = "SHADOWLEAP_WIDTH"
	EnvHeight  = "SHADOWLEAP_HEIGHT"
	EnvTile    = "SHADOWLEAP_TILE"
	EnvTick    = "SHADOWLEAP_TICK"
	EnvSeed    = "SHADOWLEAP_SEED"
	EnvLevels  = "SHADOWLEAP_LEVELS"
	EnvLives   = "SHADOWLEAP_LIVES"
	EnvLog     = "SHADOWLEAP_LOG"
	EnvMute    = "SHADOWLEAP_MUTE"
	EnvPort    = "SHADOWLEAP_PORT"
	EnvHostKey = "SHADOWLEAP_HOST_KEY"
)

// Load resolves the configuration. envFile may be empty or missing; args are
// the command-line arguments without the program name.
func Load(name string, args []string, envFile string) (Config, error) {
	vars, err := ReadEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	cfg, err := Default().Apply(vars)
	if err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fset)
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

var envKeys = []string{
	EnvWidth, EnvHeight, EnvTile, EnvTick, EnvSeed, EnvLevels,
	EnvLives, EnvLog, EnvMute, EnvPort, EnvHostKey,
}

// ReadEnvFile parses a dotenv file. A missing file yields an empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vars, nil
}

// Apply overlays the recognised variables in vars onto c.
func (c Config) Apply(vars map[string]string) (Config, error) {
	var errs []error
	float := func(key string, dst *float64) {
		if v, ok := vars[key]; ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := vars[key]; ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	float(EnvWidth, &c.Width)
	float(EnvHeight, &c.Height)
	float(EnvTile, &c.Tile)
	integer(EnvLevels, &c.Levels)
	integer(EnvLives, &c.Lives)
	integer(EnvPort, &c.Port)
	if v, ok := vars[EnvTick]; ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTick, err))
		} else {
			c.TickInterval = d
		}
	}
	if v, ok := vars[EnvSeed]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Seed = n
		}
	}
	if v, ok := vars[EnvMute]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMute, err))
		} else {
			c.Mute = b
		}
	}
	if v, ok := vars[EnvLog]; ok {
		c.LogPath = v
	}
	if v, ok := vars[EnvHostKey]; ok {
		c.HostKey = v
	}
	return c, errors.Join(errs...)
}

// RegisterFlags binds c's fields to fs using their current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Width, "width", c.Width, "play area width in pixels")
	fs.Float64Var(&c.Height, "height", c.Height, "play area height in pixels")
	fs.Float64Var(&c.Tile, "tile", c.Tile, "tile length in pixels")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "simulation step")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = clock)")
	fs.IntVar(&c.Levels, "levels", c.Levels, "number of levels to play")
	fs.IntVar(&c.Lives, "lives", c.Lives, "starting lives")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "log file (empty discards logs)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.IntVar(&c.Port, "port", c.Port, "SSH server port")
	fs.StringVar(&c.HostKey, "key", c.HostKey, "path to the PEM-encoded host key (auto-generated if absent)")
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("play area %gx%g must be positive", c.Width, c.Height))
	}
	if c.Tile <= 0 {
		errs = append(errs, fmt.Errorf("tile %g must be positive", c.Tile))
	}
	if c.Width != assets.BoardWidth || c.Height != assets.BoardHeight || c.Tile != assets.Tile {
		errs = append(errs, fmt.Errorf("play area %gx%g with %g px tiles does not match the %gx%g board with %g px tiles the levels are laid out for",
			c.Width, c.Height, c.Tile, assets.BoardWidth, assets.BoardHeight, assets.Tile))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick %v must be positive", c.TickInterval))
	}
	if c.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives %d must be at least 1", c.Lives))
	}
	if c.Levels < 1 {
		errs = append(errs, fmt.Errorf("levels %d must be at least 1", c.Levels))
	}
	return errors.Join(errs...)
}
