// Package commands contains the CLI commands for the application
package commands

import (
	// Generator packages register themselves with the default registry.
	_ "github.com/apiarylab/clientgen/internal/codegen/csharp"
	_ "github.com/apiarylab/clientgen/internal/codegen/java"
)

// Flags holds values shared across commands.
type Flags struct {
	LogLevel  string
	Config    string
	Discovery string
	Language  string
	Output    string
}

// Controller dispatches CLI commands.
type Controller struct {
	Flags *Flags
}
