// prompts.go
package models

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Prompt is one drawing challenge from the catalog.
type Prompt struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category,omitempty"`
}

// PromptCatalog holds the drawing prompts offered to clients.
type PromptCatalog struct {
	Prompts []Prompt `yaml:"prompts"`
}

// LoadPrompts reads and parses the prompts.yaml file.
func LoadPrompts(path string) (*PromptCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt catalog: %w", err)
	}

	var catalog PromptCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prompt catalog YAML: %w", err)
	}
	if len(catalog.Prompts) == 0 {
		return nil, fmt.Errorf("prompt catalog %s contains no prompts", path)
	}

	return &catalog, nil
}

// Random returns a uniformly chosen prompt from the catalog.
func (c *PromptCatalog) Random() Prompt {
	return c.Prompts[rand.Intn(len(c.Prompts))]
}
