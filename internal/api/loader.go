package api

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Load decodes a discovery document and builds the model tree for the given
// language model.
func Load(data []byte, lm LanguageModel) (*API, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode discovery document: %w", err)
	}
	return NewAPI(doc, lm)
}

// LoadFile reads and decodes a discovery document from disk.
func LoadFile(path string, lm LanguageModel) (*API, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read discovery document: %w", err)
	}
	return Load(data, lm)
}
