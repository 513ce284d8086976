package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// EnvConfigPath names the environment variable that overrides the config file location.
const EnvConfigPath = "TRANSIT_CATALOGUE_CONFIG"

// DefaultPort is used when server.port is not set.
const DefaultPort = 16181

// Config is the global application configuration
var Config = Default()

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{
		Server:  ServerConfig{Port: DefaultPort},
		Routing: router.DefaultSettings(),
		Render:  renderer.DefaultSettings(),
		Input:   InputConfig{Format: "json"},
		Output:  OutputConfig{Format: "json"},
	}
}

func candidatePaths() []string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return []string{p}
	}
	return []string{"config.yml", "./config/config.yml"}
}

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	var data []byte
	var err error
	for _, p := range candidatePaths() {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes and validates a YAML document, filling defaults for unset values.
// Render keys absent from the document keep their defaults.
func Parse(data []byte) (AppConfig, error) {
	cfg := AppConfig{Render: renderer.DefaultSettings()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Routing.BusWaitTime == 0 {
		cfg.Routing.BusWaitTime = def.Routing.BusWaitTime
	}
	if cfg.Routing.BusVelocity == 0 {
		cfg.Routing.BusVelocity = def.Routing.BusVelocity
	}
	if cfg.Input.Format == "" {
		cfg.Input.Format = def.Input.Format
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
}

// Validate checks struct tags and cross-field rules.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	if err := cfg.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if cfg.Input.Format == "gtfs" && cfg.GTFS.StaticURL == "" && cfg.GTFS.Path == "" && cfg.Input.Path == "" {
		return errors.New("gtfs input requires gtfs.staticURL, gtfs.path or input.path")
	}
	return nil
}

// String renders the configuration as YAML.
func (c AppConfig) String() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", struct{ Server ServerConfig }{c.Server})
	}
	return string(b)
}
