package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/apiarylab/clientgen/internal/api"
	"github.com/apiarylab/clientgen/internal/codegen"
	"github.com/apiarylab/clientgen/internal/config"
)

// Generate runs one generation pass: load the discovery document, build the
// model, run the selected language generator and write its files under the
// output directory.
func (c *Controller) Generate(ctx context.Context) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}
	return generate(cfg)
}

// resolveConfig merges the project config file (if any) with command-line
// flag overrides.
func (c *Controller) resolveConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if c.Flags.Config != "" {
		cfg, err = config.LoadConfigFromPath(c.Flags.Config)
		if err != nil {
			return nil, err
		}
	} else if cfg, _, err = config.LoadConfig(); err != nil {
		// No config file is fine when the flags carry everything.
		cfg = &config.Config{Language: "java", Output: "./generated"}
	}

	if c.Flags.Discovery != "" {
		cfg.Discovery = c.Flags.Discovery
	}
	if c.Flags.Language != "" {
		cfg.Language = c.Flags.Language
	}
	if c.Flags.Output != "" {
		cfg.Output = c.Flags.Output
	}
	if cfg.Discovery == "" {
		return nil, fmt.Errorf("no discovery document given (flag --discovery or config)")
	}
	return cfg, nil
}

func generate(cfg *config.Config) error {
	gen, err := codegen.DefaultRegistry.Get(cfg.Language)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Discovery)
	if err != nil {
		return fmt.Errorf("read discovery document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode discovery document: %w", err)
	}
	if cfg.Owner.Name != "" {
		doc["ownerName"] = cfg.Owner.Name
	}
	if cfg.Owner.Domain != "" {
		doc["ownerDomain"] = cfg.Owner.Domain
	}

	a, err := api.NewAPI(doc, gen.Model())
	if err != nil {
		return err
	}
	log.Debug().Str("api", a.Name()).Str("language", gen.Language()).Msg("model built")

	files, err := gen.Generate(a)
	if err != nil {
		return fmt.Errorf("generate %s: %w", cfg.Language, err)
	}

	for _, f := range files {
		path := filepath.Join(cfg.Output, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info().Str("file", path).Msg("generated")
	}
	return nil
}
