package scene

import (
	"path"
	"slices"
	"strings"

	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/errors"
)

// BuildFunc constructs a scene's entities and animation steps.
type BuildFunc func(s *anim.Scene) error

// Definition describes one registered scene.
type Definition struct {
	// Name is the scene's unique display name (e.g. "CoincidentLine").
	Name string

	// File is the slash-separated source-relative path of the file the
	// scene lives in (e.g. "design/plate/plate.go").
	File string

	// Build constructs the scene.
	Build BuildFunc
}

// ExcludedDirs are path components skipped during path enumeration.
var ExcludedDirs = []string{"media", "_style", "testdata"}

// Registry holds scene definitions in registration order.
type Registry struct {
	defs   []Definition
	byName map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a scene definition. Names must be unique and valid scene
// names; duplicates and invalid names are INVALID_INPUT errors.
func (r *Registry) Register(def Definition) error {
	if err := errors.ValidateSceneName(def.Name); err != nil {
		return err
	}
	if def.Build == nil {
		return errors.New(errors.ErrCodeInvalidInput, "scene %q has no build function", def.Name)
	}
	if _, ok := r.byName[def.Name]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "scene %q registered twice", def.Name)
	}
	r.byName[def.Name] = len(r.defs)
	r.defs = append(r.defs, def)
	return nil
}

// MustRegister is Register for package init blocks; it panics on error.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Len returns the number of registered scenes.
func (r *Registry) Len() int { return len(r.defs) }

// Definitions returns all scene definitions in registration order.
func (r *Registry) Definitions() []Definition {
	return slices.Clone(r.defs)
}

// Lookup finds a scene by exact name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Names returns all scene names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// Files returns the distinct source file names (base names) of all
// registered scenes, in first-seen order.
func (r *Registry) Files() []string {
	var files []string
	seen := make(map[string]bool)
	for _, d := range r.defs {
		base := path.Base(d.File)
		if !seen[base] {
			seen[base] = true
			files = append(files, base)
		}
	}
	return files
}

// Paths returns every distinct directory prefix of the registered scene
// files, in first-seen order, skipping excluded components. These are the
// candidates for path-based selection: "design/plate/plate.go" contributes
// "design" and "design/plate".
func (r *Registry) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, d := range r.defs {
		dir := path.Dir(d.File)
		if dir == "." {
			continue
		}
		parts := strings.Split(dir, "/")
		for i := range parts {
			if excluded(parts[i]) {
				break
			}
			prefix := strings.Join(parts[:i+1], "/")
			if !seen[prefix] {
				seen[prefix] = true
				paths = append(paths, prefix)
			}
		}
	}
	return paths
}

func excluded(component string) bool {
	return slices.Contains(ExcludedDirs, component)
}

// Build constructs the scene and returns its validated timeline.
func (d Definition) BuildTimeline() (anim.Timeline, error) {
	s := anim.NewScene(d.Name)
	if err := d.Build(s); err != nil {
		return anim.Timeline{}, errors.Wrap(errors.ErrCodeInternal, err, "build scene %s", d.Name)
	}
	if err := s.Validate(); err != nil {
		return anim.Timeline{}, err
	}
	return s.Timeline(), nil
}

// Default is the process-wide registry that scene packages register into
// from their init functions.
var Default = NewRegistry()

// Register adds a scene to the default registry.
func Register(def Definition) error {
	return Default.Register(def)
}

// MustRegister adds a scene to the default registry, panicking on error.
func MustRegister(def Definition) {
	Default.MustRegister(def)
}
