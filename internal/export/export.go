// Package export renders a token set into source files for other tools.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jmylchreest/tokensmith/internal/security"
	"github.com/jmylchreest/tokensmith/internal/tokens"
)

// Exporter renders a token set for one target format.
type Exporter interface {
	// Name returns the exporter's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the exporter.
	Description() string

	// Generate renders the set. Returns map of filename -> content.
	Generate(set *tokens.Set) (map[string][]byte, error)
}

// Registry holds exporters by name.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[string]Exporter),
	}
}

// NewDefaultRegistry creates a registry holding every built-in exporter.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewCSS())
	r.Register(NewSCSS())
	r.Register(NewJSON())
	r.Register(NewTailwind())
	return r
}

// Register adds an exporter, replacing any with the same name.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// List returns all registered exporter names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve looks up each name, failing on the first unknown one.
func (r *Registry) Resolve(names []string) ([]Exporter, error) {
	out := make([]Exporter, 0, len(names))
	for _, name := range names {
		e, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown export format: %s (available: %v)", name, r.List())
		}
		out = append(out, e)
	}
	return out, nil
}

// WriteFiles writes generated files into dir, creating it if needed.
// Names that would land outside dir are rejected before anything is
// written. It returns the written paths in sorted order.
func WriteFiles(dir string, files map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Output directory needs standard permissions
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := security.ValidateFilePath(name, dir); err != nil {
			return nil, fmt.Errorf("refusing to write %q: %w", name, err)
		}
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil { // #nosec G306 - Generated files need standard read permissions
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}
