package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/sketchlab/sketchcast/pkg/pipeline"
	"github.com/sketchlab/sketchcast/pkg/scene"
)

const (
	defaultServeAddr = "localhost:8420"

	serveReadTimeout     = 10 * time.Second
	serveShutdownTimeout = 5 * time.Second
)

// serveCommand creates the preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered animations for preview",
		Long: `Serve rendered animations for preview.

Starts a local HTTP server exposing the rendered output directory and a
JSON index of registered scenes with their artifacts on disk:

  GET /api/scenes          scene index with artifact listing
  GET /media/*             rendered frames and timelines

The server runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = c.Config.OutDir
			}
			if outDir == "" {
				outDir = pipeline.DefaultOutDir
			}
			return c.runServe(cmd.Context(), addr, outDir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "address to listen on")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "rendered output directory to serve")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, outDir string) error {
	logger := c.Logger.With("addr", addr, "dir", outDir)

	server := &http.Server{
		Addr:        addr,
		Handler:     newServeHandler(scene.Default, outDir),
		ReadTimeout: serveReadTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return withLogger(context.Background(), logger)
		},
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Preview server listening")
		errc <- server.ListenAndServe()
	}()

	printSuccess("Serving %s", StyleHighlight.Render("http://"+addr))
	printDetail("scene index at http://%s/api/scenes", addr)
	printNewline()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	}
}

// sceneIndexEntry is one scene in the /api/scenes response.
type sceneIndexEntry struct {
	Name      string   `json:"name"`
	File      string   `json:"file"`
	Rendered  bool     `json:"rendered"`
	Artifacts []string `json:"artifacts,omitempty"`
}

// newServeHandler builds the preview router over the rendered output dir.
func newServeHandler(reg *scene.Registry, outDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/scenes", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, sceneIndex(reg, outDir))
	})

	r.Get("/api/scenes/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		for _, entry := range sceneIndex(reg, outDir) {
			if entry.Name == name {
				writeJSON(w, http.StatusOK, entry)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown scene: " + name})
	})

	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(outDir)))
	r.Get("/media/*", fileServer.ServeHTTP)

	return r
}

// sceneIndex lists every registered scene with the artifacts found on disk.
func sceneIndex(reg *scene.Registry, outDir string) []sceneIndexEntry {
	defs := reg.Definitions()
	entries := make([]sceneIndexEntry, 0, len(defs))
	for _, def := range defs {
		entry := sceneIndexEntry{Name: def.Name, File: def.File}
		entry.Artifacts = sceneArtifacts(outDir, def.Name)
		entry.Rendered = len(entry.Artifacts) > 0
		entries = append(entries, entry)
	}
	return entries
}

// sceneArtifacts returns media paths for a scene, relative to the out dir.
func sceneArtifacts(outDir, name string) []string {
	sceneDir := filepath.Join(outDir, name)
	items, err := os.ReadDir(sceneDir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		paths = append(paths, "/media/"+name+"/"+item.Name())
	}
	sort.Strings(paths)
	return paths
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// requestLogger logs each request with the context logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		logger := loggerFromContext(req.Context())
		logger.Debug("Request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
