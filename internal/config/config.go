// Package config loads the server and CLI settings from an optional TOML file.
//
// Every key has a default, so a missing file is equivalent to an empty one.
// Unknown keys are rejected to catch typos early.
//
// Example file:
//
//	log_level  = "debug"
//	output_dir = "/tmp/pictures"
//	workers    = 4
//
//	[defaults]
//	fill_threshold   = 30
//	edge_threshold   = 20
//	chroma_threshold = 60
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EnvConfig names the environment variable consulted when no path is given.
const EnvConfig = "PICTURE_MCP_CONFIG"

// EnvLogLevel overrides log_level when set.
const EnvLogLevel = "PICTURE_MCP_LOG_LEVEL"

// ErrInvalidConfig is returned by Validate and Load for out-of-range values
// and unknown keys.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded configuration.
type Config struct {
	LogLevel  string   `toml:"log_level"`
	OutputDir string   `toml:"output_dir"`
	Workers   int      `toml:"workers"`
	Defaults  Defaults `toml:"defaults"`
}

// Defaults holds the thresholds used when a request omits them.
type Defaults struct {
	FillThreshold   int `toml:"fill_threshold"`
	EdgeThreshold   int `toml:"edge_threshold"`
	ChromaThreshold int `toml:"chroma_threshold"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Defaults: Defaults{
			FillThreshold:   30,
			EdgeThreshold:   20,
			ChromaThreshold: 60,
		},
	}
}

// Load reads path over the defaults. An empty path falls back to
// $PICTURE_MCP_CONFIG; if that is empty too the defaults are returned.
// $PICTURE_MCP_LOG_LEVEL, when set, wins over the file's log_level.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.LogLevel, validation.By(isLogLevel)),
		validation.Field(&c.Workers, validation.Min(0)),
		validation.Field(&c.Defaults),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (d Defaults) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.FillThreshold, validation.Min(0)),
		validation.Field(&d.EdgeThreshold, validation.Min(0)),
		validation.Field(&d.ChromaThreshold, validation.Min(0)),
	)
}

func isLogLevel(value interface{}) error {
	s, _ := value.(string)
	if _, err := log.ParseLevel(s); err != nil {
		return errors.New("must be one of debug, info, warn, error, fatal")
	}
	return nil
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
