package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sketchlab/sketchcast/pkg/errors"
)

// WriteArtifacts writes a result's artifacts under dir, one subdirectory
// per scene. It returns the written file paths in sorted order.
func WriteArtifacts(dir string, result *Result) ([]string, error) {
	var written []string
	for _, sr := range result.Scenes {
		sceneDir := filepath.Join(dir, sr.Scene)
		if err := os.MkdirAll(sceneDir, 0755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "create output directory %s", sceneDir)
		}
		for name, data := range sr.Artifacts {
			path := filepath.Join(sceneDir, name)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return nil, errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
			}
			written = append(written, path)
		}
	}
	sort.Strings(written)
	return written, nil
}
