package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/spaceviz/spaceviz/pkg/dataset"
	"github.com/spaceviz/spaceviz/pkg/missions"
)

// Config is the runtime configuration of spaceviz. Values are layered:
// defaults, then the YAML file, then SPACEVIZ_* environment variables.
// Command-line flags are applied last by the caller.
type Config struct {
	Data         DataConfig     `yaml:"data"`
	Roster       []string       `yaml:"roster" env:"SPACEVIZ_ROSTER" envSeparator:","`
	Timeline     TimelineConfig `yaml:"timeline"`
	TopLocations int            `yaml:"top_locations" env:"SPACEVIZ_TOP_LOCATIONS"`
	HTTP         HTTPConfig     `yaml:"http"`
}

type DataConfig struct {
	File string `yaml:"file" env:"SPACEVIZ_DATA_FILE"`
	URL  string `yaml:"url" env:"SPACEVIZ_DATA_URL"`
}

// TimelineConfig holds the initial range of the interactive timeline.
type TimelineConfig struct {
	StartYear        int `yaml:"start_year" env:"SPACEVIZ_START_YEAR"`
	EndYear          int `yaml:"end_year" env:"SPACEVIZ_END_YEAR"`
	TopOrganizations int `yaml:"top_organizations" env:"SPACEVIZ_TOP_ORGANIZATIONS"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" env:"SPACEVIZ_HTTP_ADDR"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Roster: missions.DefaultRoster(),
		Timeline: TimelineConfig{
			StartYear:        missions.DefaultStartYear,
			EndYear:          missions.DefaultEndYear,
			TopOrganizations: missions.DefaultTopOrganizations,
		},
		TopLocations: missions.DefaultTopLocations,
		HTTP:         HTTPConfig{Addr: ":8080"},
	}
}

// Load builds a Config from defaults, the optional YAML file at path and
// the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports configuration that no view can work with. A timeline
// start after its end is allowed and simply selects nothing.
func (c Config) Validate() error {
	var errs []error
	if len(c.Roster) == 0 {
		errs = append(errs, errors.New("roster must name at least one organization"))
	}
	for i, name := range c.Roster {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("roster entry %d is blank", i))
		}
	}
	if c.Timeline.TopOrganizations < 0 {
		errs = append(errs, fmt.Errorf("timeline.top_organizations must not be negative, got %d", c.Timeline.TopOrganizations))
	}
	if c.TopLocations < 0 {
		errs = append(errs, fmt.Errorf("top_locations must not be negative, got %d", c.TopLocations))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Source returns the dataset location described by the config.
func (c Config) Source() dataset.Source {
	return dataset.Source{FilePath: c.Data.File, URL: c.Data.URL}
}
