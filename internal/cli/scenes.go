package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sketchlab/sketchcast/pkg/scene"
)

// scenesCommand creates the scenes listing command.
func (c *CLI) scenesCommand() *cobra.Command {
	var (
		showFiles bool
		showPaths bool
	)

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List registered scenes",
		Long: `List registered scenes.

By default each scene is printed with its source file. With --files or
--paths, the distinct file and path candidates used by the fuzzy selector
are printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := scene.Default

			switch {
			case showFiles:
				for _, f := range reg.Files() {
					fmt.Println(f)
				}
			case showPaths:
				for _, p := range reg.Paths() {
					fmt.Println(p)
				}
			default:
				fmt.Println(StyleTitle.Render(fmt.Sprintf("%d scenes", reg.Len())))
				for _, def := range reg.Definitions() {
					printKeyValue(def.Name, StyleDim.Render(def.File))
				}
				printNewline()
				printNextStep("Render a scene", appName+" build -s "+exampleQuery(reg))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFiles, "files", false, "list file candidates")
	cmd.Flags().BoolVar(&showPaths, "paths", false, "list path candidates")

	return cmd
}

// exampleQuery derives an abbreviated selector from the first registered
// scene, for the next-step hint.
func exampleQuery(reg *scene.Registry) string {
	names := reg.Names()
	if len(names) == 0 {
		return "SceneName"
	}
	var b strings.Builder
	for _, r := range names[0] {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	if b.Len() < 2 {
		return names[0]
	}
	return b.String()
}
