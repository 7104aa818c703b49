package config

import "github.com/kelseyhightower/envconfig"

// Settings holds service configuration read from PIPELINE_* environment
// variables.
type Settings struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	DBPath    string `envconfig:"DB_PATH" default:"pipeline.db"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"outputs"`
}

// Load populates Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process("pipeline", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
