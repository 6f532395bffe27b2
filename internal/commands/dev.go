package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/apiarylab/clientgen/internal/dev"
)

// Dev watches the discovery document and regenerates on every change.
func (c *Controller) Dev(ctx context.Context) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}
	debounce, err := time.ParseDuration(cfg.Dev.Debounce)
	if err != nil {
		return fmt.Errorf("invalid debounce %q: %w", cfg.Dev.Debounce, err)
	}

	// Generate once up front so the output exists before the first edit.
	if err := generate(cfg); err != nil {
		return err
	}

	w, err := dev.NewWatcher(cfg.Discovery, debounce, func(string) error {
		return generate(cfg)
	})
	if err != nil {
		return err
	}
	defer w.Close()

	return w.Start(ctx)
}
