package scene

import (
	"path"
	"strings"

	"github.com/sketchlab/sketchcast/pkg/match"
)

// Selection holds the raw (possibly abbreviated) scene references from the
// command line. Empty slices mean "no filtering on that axis"; an entirely
// empty selection selects every registered scene.
type Selection struct {
	Paths  []string // fuzzy directory references, e.g. "desPla"
	Files  []string // fuzzy file references, e.g. "plat"
	Scenes []string // fuzzy scene references, e.g. "coinLi"
}

// IsEmpty reports whether the selection filters nothing.
func (s Selection) IsEmpty() bool {
	return len(s.Paths) == 0 && len(s.Files) == 0 && len(s.Scenes) == 0
}

// Resolve narrows the registry down to the selected scenes. Filtering
// mirrors the original build tool: paths first (fuzzy-matched against
// directory prefixes), then files (against file base names of the
// remaining scenes), then scene names. Scenes come back in registration
// order; the returned matches include every fuzzy resolution performed so
// callers can surface low-confidence ones.
func (r *Registry) Resolve(sel Selection) ([]Definition, []match.Match, error) {
	defs := r.Definitions()
	var all []match.Match

	if len(sel.Paths) > 0 {
		matches, err := match.Resolve(r.Paths(), sel.Paths)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, matches...)
		defs = filterByPath(defs, match.Targets(matches))
	}

	if len(sel.Files) > 0 {
		matches, err := match.Resolve(fileNames(defs), sel.Files)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, matches...)
		defs = filterByFile(defs, match.Targets(matches))
	}

	if len(sel.Scenes) > 0 {
		matches, err := match.Resolve(sceneNames(defs), sel.Scenes)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, matches...)
		defs = filterByName(defs, match.Targets(matches))
	}

	return defs, all, nil
}

func fileNames(defs []Definition) []string {
	var files []string
	seen := make(map[string]bool)
	for _, d := range defs {
		base := path.Base(d.File)
		if !seen[base] {
			seen[base] = true
			files = append(files, base)
		}
	}
	return files
}

func sceneNames(defs []Definition) []string {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

func filterByPath(defs []Definition, dirs []string) []Definition {
	var out []Definition
	for _, d := range defs {
		for _, dir := range dirs {
			if d.File == dir || strings.HasPrefix(d.File, dir+"/") {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func filterByFile(defs []Definition, files []string) []Definition {
	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f] = true
	}
	var out []Definition
	for _, d := range defs {
		if keep[path.Base(d.File)] {
			out = append(out, d)
		}
	}
	return out
}

func filterByName(defs []Definition, names []string) []Definition {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var out []Definition
	for _, d := range defs {
		if keep[d.Name] {
			out = append(out, d)
		}
	}
	return out
}
