// Package config loads the aoc2025 YAML configuration.
package config

import (
	"os"

	"github.com/docker/go-units"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("config")

// Defaults applied before the YAML document is overlaid.
const (
	DefaultInputDir        = "inputs"
	DefaultLogLevel        = "INFO"
	DefaultMaxInputSize    = "16MiB"
	DefaultOutput          = "text"
	DefaultDialStart       = 50
	DefaultBatteryBankSize = 12
	DefaultStartMarker     = "S"
	DefaultSplitMarker     = "^"
	DefaultRowStep         = 2
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// RayConfig holds the ray graph settings of day 7. Markers are single bytes.
type RayConfig struct {
	StartMarker string `yaml:"start-marker"`
	SplitMarker string `yaml:"split-marker"`
	RowStep     int    `yaml:"row-step"`
}

// PuzzlesConfig holds the per-day tunables.
type PuzzlesConfig struct {
	DialStart       int       `yaml:"dial-start"`
	BatteryBankSize int       `yaml:"battery-bank-size"`
	Ray             RayConfig `yaml:"ray"`
}

// Config is the whole aoc2025 configuration file. MaxInputSize is a human
// readable size such as "16MiB".
type Config struct {
	InputDir     string        `yaml:"input-dir"`
	LogFile      string        `yaml:"log-file"`
	LogLevel     string        `yaml:"log-level"`
	MaxInputSize string        `yaml:"max-input-size"`
	Output       string        `yaml:"output"`
	Puzzles      PuzzlesConfig `yaml:"puzzles"`

	maxInputBytes int64
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		InputDir:     DefaultInputDir,
		LogLevel:     DefaultLogLevel,
		MaxInputSize: DefaultMaxInputSize,
		Output:       DefaultOutput,
		Puzzles: PuzzlesConfig{
			DialStart:       DefaultDialStart,
			BatteryBankSize: DefaultBatteryBankSize,
			Ray: RayConfig{
				StartMarker: DefaultStartMarker,
				SplitMarker: DefaultSplitMarker,
				RowStep:     DefaultRowStep,
			},
		},
	}
}

// MaxInputBytes is MaxInputSize in bytes. Valid after Validate.
func (c *Config) MaxInputBytes() int64 {
	return c.maxInputBytes
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalid, format, args...)
}

// Validate checks every field and resolves MaxInputSize. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if _, err := logging.LogLevel(c.LogLevel); err != nil {
		return invalid("log-level %q", c.LogLevel)
	}
	if c.Output != "text" && c.Output != "json" {
		return invalid("output %q, want text or json", c.Output)
	}
	size, err := units.RAMInBytes(c.MaxInputSize)
	if err != nil || size <= 0 {
		return invalid("max-input-size %q", c.MaxInputSize)
	}
	c.maxInputBytes = size

	p := &c.Puzzles
	if p.DialStart < 0 || p.DialStart > 99 {
		return invalid("puzzles.dial-start %d, want 0..99", p.DialStart)
	}
	if p.BatteryBankSize < 1 || p.BatteryBankSize > 18 {
		return invalid("puzzles.battery-bank-size %d, want 1..18", p.BatteryBankSize)
	}
	if len(p.Ray.StartMarker) != 1 || len(p.Ray.SplitMarker) != 1 {
		return invalid("puzzles.ray markers must be single bytes")
	}
	if p.Ray.StartMarker == p.Ray.SplitMarker {
		return invalid("puzzles.ray.start-marker and split-marker are both %q", p.Ray.StartMarker)
	}
	if p.Ray.RowStep < 1 {
		return invalid("puzzles.ray.row-step %d", p.Ray.RowStep)
	}

	return nil
}

// Parse overlays the YAML document data on the defaults and validates the
// result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kyaml.Parser()); err != nil {
		return nil, errors.Wrap(err, "parse config yaml")
	}
	if err := k.UnmarshalWithConf("", c, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads path. A missing file is not an error: the defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		c := Default()
		return c, c.Validate()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Infof("no config file %s, use defaults", path)
		c := Default()
		return c, c.Validate()
	}
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	return Parse(data)
}
