// Package prompt provides a centralized prompt library for LLM interactions.
// Prompts are defined in JSON files under resources/ and loaded at runtime;
// hardcoded fallbacks keep the service working without the resource tree.
package prompt

import (
	"fmt"
	"sync"
)

// Template represents a reusable prompt with metadata.
type Template struct {
	ID           string `json:"id"`            // Unique identifier (e.g., "career.role_breakdown")
	Name         string `json:"name"`          // Human-readable name
	Category     string `json:"category"`      // Category (career, development, report)
	Description  string `json:"description"`   // Description of prompt purpose
	SystemPrompt string `json:"system_prompt"` // System prompt content, if any
	Blueprint    string `json:"blueprint"`     // Section-specific output requirements
	Version      string `json:"version"`       // Version for tracking changes
}

// Registry holds all loaded prompt templates.
type Registry struct {
	prompts map[string]*Template
	mu      sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{
			prompts: make(map[string]*Template),
		}
	})
	return globalRegistry
}

// Register adds a prompt template to the registry.
func (r *Registry) Register(pt *Template) error {
	if pt.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompts[pt.ID] = pt
	return nil
}

// GetPrompt retrieves a prompt by ID.
func (r *Registry) GetPrompt(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.prompts[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("prompt not found: %s", id)
}

// Count returns the number of registered prompts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}

// Clear removes all prompts (useful for testing).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = make(map[string]*Template)
}
