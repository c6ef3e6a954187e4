package navmi

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config controls a conversion run. It can be loaded from YAML and is then
// overridden by command line flags.
type Config struct {
	// Only warnings and errors are logged.
	Quiet bool `yaml:"quiet"`
	// debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Empty means next to the input file.
	OutputDir string `yaml:"output_dir"`
	// strftime pattern applied to the first point time.
	NameFormat string `yaml:"name_format"`
	Creator    string `yaml:"creator"`
	TrackName  string `yaml:"track_name"`
	// Give up on the remaining files after a failure.
	StopOnError bool `yaml:"stop_on_error"`
	// Log a UTM reference with each position.
	GridRefs bool `yaml:"grid_refs"`
}

func DefaultConfig() Config {
	return Config{
		Quiet:    true,
		LogLevel: "info",
		Creator:  DefaultCreator,
	}
}

// LoadConfig reads a YAML config file. Unset fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	var cfg = DefaultConfig()

	var b, err = os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if cfg.Creator == "" {
		cfg.Creator = DefaultCreator
	}

	if strings.ContainsRune(cfg.NameFormat, os.PathSeparator) {
		return fmt.Errorf("name_format must not contain %q, use output_dir", os.PathSeparator)
	}

	return nil
}

// Level is the effective log level. Quiet caps it at warnings.
func (cfg Config) Level() log.Level {
	var level, err = log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	if cfg.Quiet && level < log.WarnLevel {
		level = log.WarnLevel
	}

	return level
}

func (cfg Config) decoderOptions(logger *log.Logger) []Option {
	var opts = []Option{WithGridRefs(cfg.GridRefs)}

	if !cfg.Quiet {
		opts = append(opts, WithLogger(logger))
	}

	return opts
}
