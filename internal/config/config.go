// Package config loads the clientgen project configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// configNames are the file names searched for, in order, when no explicit
// path is given.
var configNames = []string{"clientgen.json", "clientgen.yaml"}

// Config represents the clientgen.json (or clientgen.yaml) configuration file
type Config struct {
	// Discovery is the path to the discovery document to generate from.
	Discovery string `json:"discovery" yaml:"discovery"`

	// Language selects the registered generator ("java", "csharp", ...).
	Language string `json:"language" yaml:"language"`

	// Output is the directory generated files are written under.
	Output string `json:"output" yaml:"output"`

	// Owner overrides the ownerName/ownerDomain fields of the document.
	Owner OwnerConfig `json:"owner" yaml:"owner"`

	// Dev configures the regenerate-on-change loop.
	Dev DevConfig `json:"dev" yaml:"dev"`
}

// OwnerConfig overrides API ownership used for module placement
type OwnerConfig struct {
	Name   string `json:"name" yaml:"name"`
	Domain string `json:"domain" yaml:"domain"`
}

// DevConfig contains watch-loop configuration
type DevConfig struct {
	Debounce string `json:"debounce" yaml:"debounce"`
}

// LoadConfig searches the current directory and its parents for a
// configuration file and loads the first one found. Returns the config and
// the directory it was found in.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the configuration from a specific path. The
// format follows the file extension; anything not .yaml/.yml is parsed as
// JSON.
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Discovery == "" {
		config.Discovery = "./discovery.json"
	}
	if config.Language == "" {
		config.Language = "java"
	}
	if config.Output == "" {
		config.Output = "./generated"
	}
	if config.Dev.Debounce == "" {
		config.Dev.Debounce = "250ms"
	}
}

// loadConfigFromDir searches for a config file in the given directory and
// its parents.
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				config, err := LoadConfigFromPath(configPath)
				if err != nil {
					return nil, "", err
				}
				return config, dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no clientgen config found in %s or any parent directory", startDir)
}
