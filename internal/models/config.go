package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExportConfig holds the tunable parts of an export that do not come
// from the live project: the API-enablement list and the compute
// defaults. It can be overridden with a YAML file via --config.
type ExportConfig struct {
	APIs   []string `yaml:"apis"`
	Region string   `yaml:"region"`
	Zone   string   `yaml:"zone"`
}

// DefaultExportConfig returns the built-in export configuration used
// when no config file is supplied.
func DefaultExportConfig() *ExportConfig {
	return &ExportConfig{
		APIs: []string{
			"cloudbilling.googleapis.com",
			"cloudresourcemanager.googleapis.com",
			"firebase.googleapis.com",
			"firebaserules.googleapis.com",
			"firestore.googleapis.com",
			"identitytoolkit.googleapis.com",
			"serviceusage.googleapis.com",
		},
		Region: "us-central1",
		Zone:   "us-central1-a",
	}
}

// LoadExportConfig reads a YAML export configuration and fills any
// missing fields from the defaults.
func LoadExportConfig(path string) (*ExportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg ExportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}

	defaults := DefaultExportConfig()
	if len(cfg.APIs) == 0 {
		cfg.APIs = defaults.APIs
	}
	if cfg.Region == "" {
		cfg.Region = defaults.Region
	}
	if cfg.Zone == "" {
		cfg.Zone = defaults.Zone
	}
	return &cfg, nil
}
