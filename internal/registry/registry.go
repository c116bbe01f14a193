// Package registry provides a global registry for scene exporters.
// Exporters register themselves in init() functions, allowing the CLI
// to discover output formats without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/scene"
)

// Job describes what to export.
type Job struct {
	Atom   atom.State
	Motion atom.MotionMode
	Params scene.Params
	// Width and Height are the output size: pixels for images, cells for
	// text.
	Width  int
	Height int
	// Elapsed is the instant of a single-frame export, in seconds.
	Elapsed float64
	// Frames and FPS control animated exports.
	Frames int
	FPS    int
}

// Exporter writes an atom in one output format.
// Exporters contain no terminal or window code; they work on scenes only.
type Exporter interface {
	// ID returns a unique identifier for this format (e.g., "svg").
	// Used for the --format flag.
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Extension returns the default file extension, including the dot.
	Extension() string

	// Export writes the job to w.
	Export(w io.Writer, job Job) error
}

// ExporterInfo contains metadata about a registered exporter.
type ExporterInfo struct {
	ID        string
	Title     string
	Extension string
}

// Factory is a function that creates a new instance of an exporter.
type Factory func() Exporter

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ExporterInfo)
	mu        sync.RWMutex
)

// Register adds an exporter factory to the registry.
// Panics if an exporter with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: exporter %q already registered", id))
	}

	factories[id] = f

	e := f()
	infos[id] = ExporterInfo{ID: id, Title: e.Title(), Extension: e.Extension()}
}

// List returns information about all registered exporters, sorted by ID.
func List() []ExporterInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ExporterInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new exporter by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Exporter, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", id)
	}

	return f(), nil
}

// Exists checks if an exporter with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
