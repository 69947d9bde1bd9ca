package apiclient

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a Client configuration from a YAML file:
//
//	scheme: https
//	host: api.netgrid.example
//	app_id: my-app
//	app_secret: s3cr3t
//	api_version: "1"
//
// The returned Config is not validated; pass it to New.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("apiclient: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("apiclient: parse config: %w", err)
	}

	return cfg, nil
}
