package commands

import (
	"context"
	"fmt"

	"github.com/apiarylab/clientgen/internal/codegen"
)

// Languages prints the registered target languages.
func (c *Controller) Languages(ctx context.Context) error {
	for _, lang := range codegen.DefaultRegistry.Languages() {
		fmt.Println(lang)
	}
	return nil
}
