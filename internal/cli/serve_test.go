package cli

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/scene"
)

func serveFixture(t *testing.T) (*scene.Registry, string) {
	t.Helper()

	reg := scene.NewRegistry()
	reg.MustRegister(scene.Definition{
		Name:  "TangentCircles",
		File:  "design/sketch/constraints.go",
		Build: func(s *anim.Scene) error { return nil },
	})
	reg.MustRegister(scene.Definition{
		Name:  "IntakePlate",
		File:  "design/plate/plate.go",
		Build: func(s *anim.Scene) error { return nil },
	})

	outDir := t.TempDir()
	sceneDir := filepath.Join(outDir, "TangentCircles")
	if err := os.MkdirAll(sceneDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"TangentCircles_0000.svg", "TangentCircles.json"} {
		if err := os.WriteFile(filepath.Join(sceneDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return reg, outDir
}

func TestServeSceneIndex(t *testing.T) {
	reg, outDir := serveFixture(t)
	srv := httptest.NewServer(newServeHandler(reg, outDir))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("GET /api/scenes: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var entries []sceneIndexEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if !entries[0].Rendered {
		t.Error("TangentCircles should be marked rendered")
	}
	if len(entries[0].Artifacts) != 2 {
		t.Errorf("TangentCircles artifacts = %v, want 2", entries[0].Artifacts)
	}
	if entries[1].Rendered {
		t.Error("IntakePlate has no artifacts, should not be rendered")
	}
}

func TestServeSceneByName(t *testing.T) {
	reg, outDir := serveFixture(t)
	srv := httptest.NewServer(newServeHandler(reg, outDir))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/scenes/IntakePlate")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var entry sceneIndexEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry.File != "design/plate/plate.go" {
		t.Errorf("File = %q", entry.File)
	}

	resp2, err := srv.Client().Get(srv.URL + "/api/scenes/Nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != 404 {
		t.Errorf("unknown scene status = %d, want 404", resp2.StatusCode)
	}
}

func TestServeMedia(t *testing.T) {
	reg, outDir := serveFixture(t)
	srv := httptest.NewServer(newServeHandler(reg, outDir))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/media/TangentCircles/TangentCircles.json")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("media status = %d, want 200", resp.StatusCode)
	}
}
