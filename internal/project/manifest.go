// Package project classifies a workspace as a Qwik or Qwik-Astro project and
// detects which package manager manages it.
package project

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest holds the parts of package.json consulted for classification.
type Manifest struct {
	Name            string            `json:"name,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// HasDependency reports whether name is declared under dependencies.
func (m Manifest) HasDependency(name string) bool {
	_, ok := m.Dependencies[name]
	return ok
}

// HasDevDependency reports whether name is declared under devDependencies.
func (m Manifest) HasDevDependency(name string) bool {
	_, ok := m.DevDependencies[name]
	return ok
}
