package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/luas/pkg/ctdf"
	"github.com/travigo/luas/pkg/util"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

type Config struct {
	Endpoints      EndpointConfig `yaml:"endpoints"`
	RequestTimeout string         `yaml:"request_timeout"`
	UserAgent      string         `yaml:"user_agent"`
	Lines          []ctdf.Line    `yaml:"lines"`
}

type EndpointConfig struct {
	Forecast string `yaml:"forecast"`
	Geocoder string `yaml:"geocoder"`
}

func Default() (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(defaultConfig, config); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}

	return config, nil
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	config, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return config, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("lines", len(config.Lines)).Msg("Loaded config file")

	return config, nil
}

// FromEnvironment loads the config file named by path, or LUAS_CONFIG when
// path is empty, then applies the single value overrides from the environment.
func FromEnvironment(path string) (*Config, error) {
	env := util.GetEnvironmentVariables()

	if path == "" {
		path = env["LUAS_CONFIG"]
	}

	config, err := Load(path)
	if err != nil {
		return nil, err
	}

	config.ApplyEnvironment(env)

	if _, err := config.Timeout(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) ApplyEnvironment(env map[string]string) {
	if env["LUAS_FORECAST_ENDPOINT"] != "" {
		c.Endpoints.Forecast = env["LUAS_FORECAST_ENDPOINT"]
	}

	if env["LUAS_GEOCODER_ENDPOINT"] != "" {
		c.Endpoints.Geocoder = env["LUAS_GEOCODER_ENDPOINT"]
	}

	if env["LUAS_REQUEST_TIMEOUT"] != "" {
		c.RequestTimeout = env["LUAS_REQUEST_TIMEOUT"]
	}

	if env["LUAS_USER_AGENT"] != "" {
		c.UserAgent = env["LUAS_USER_AGENT"]
	}
}

// Timeout converts the ISO-8601 request_timeout (eg. PT10S) into a duration.
// Zero means the HTTP client default applies.
func (c *Config) Timeout() (time.Duration, error) {
	if c.RequestTimeout == "" {
		return 0, nil
	}

	duration, err := iso8601.ParseISO8601(c.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("request_timeout %q: %w", c.RequestTimeout, err)
	}

	now := time.Now()

	return duration.Shift(now).Sub(now), nil
}
