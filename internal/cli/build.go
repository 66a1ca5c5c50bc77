package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sketchlab/sketchcast/pkg/buildinfo"
	"github.com/sketchlab/sketchcast/pkg/pipeline"
)

// buildCommand creates the build command, the main entry point of the tool.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		production bool
		noCache    bool
		formatsStr string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build animations for the selected scenes",
		Long: `Build animations for the selected scenes.

Scenes are selected with -p (paths), -f (files) and -s (scene names). All
three accept aggressive abbreviations resolved by a fuzzy token matcher:
token splits happen at capital letters, slashes and underscores, so
"coinLi" selects the scene CoincidentLine while "coinli" likely will not
(too few tokens). With no selection flags, every registered scene builds.

Renders use the low quality profile by default; pass --production for the
high profile. Built timelines and rendered artifacts are cached locally
for faster subsequent runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.Formats = strings.Split(formatsStr, ",")
			}
			if production {
				opts.Quality = "high"
			}
			return c.runBuild(cmd.Context(), opts, noCache)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Scenes, "scene", "s", nil, "scenes to render (fuzzy)")
	cmd.Flags().StringSliceVarP(&opts.Files, "file", "f", nil, "source files to build (fuzzy)")
	cmd.Flags().StringSliceVarP(&opts.Paths, "path", "p", nil, "paths searched recursively for scenes (fuzzy)")
	cmd.Flags().BoolVar(&production, "production", false, "build production (high quality) animations")
	cmd.Flags().StringVarP(&opts.Quality, "quality", "q", "", "render quality: low (default), medium, high")
	cmd.Flags().StringVar(&formatsStr, "format", "", "artifact format(s): svg, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "output directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "rebuild even when cached")

	return cmd
}

// runBuild executes the pipeline and writes artifacts to the output
// directory.
func (c *CLI) runBuild(ctx context.Context, opts pipeline.Options, noCache bool) error {
	c.applyConfig(&opts)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Building scenes...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()

	for _, m := range result.LowConfidence() {
		printWarning("Found %s for input %s (score: %d)", m.Target, m.Query, m.Score)
	}

	written, err := pipeline.WriteArtifacts(opts.OutDir, result)
	if err != nil {
		return err
	}

	for _, sr := range result.Scenes {
		printSuccess("%s", sr.Scene)
		printSceneStats(len(sr.Timeline.Steps), len(sr.Artifacts), sr.CacheInfo.RenderHit)
	}
	for _, path := range written {
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d scenes", len(result.Scenes)))
	printNewline()
	printNextStep("Preview the results", appName+" serve")
	return nil
}

// applyConfig fills pipeline options from the project config and the CLI
// state.
func (c *CLI) applyConfig(opts *pipeline.Options) {
	if opts.Quality == "" {
		opts.Quality = c.Config.Quality
	}
	if len(opts.Formats) == 0 {
		opts.Formats = c.Config.Formats
	}
	if opts.OutDir == "" {
		opts.OutDir = c.Config.OutDir
	}
	if opts.Version == "" {
		opts.Version = buildinfo.Version
	}
	if opts.Logger == nil {
		opts.Logger = c.Logger
	}
}
