package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sketchlab/sketchcast/pkg/match"
	"github.com/sketchlab/sketchcast/pkg/pipeline"
	"github.com/sketchlab/sketchcast/pkg/scene"
)

// List styles.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the interactive scene picker command.
func (c *CLI) pickCommand() *cobra.Command {
	var (
		production bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick and build a scene",
		Long: `Interactively pick and build a scene.

Shows the registered scenes in a list filtered by the same fuzzy token
matcher the build command uses. Selecting a scene renders it immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newSceneListModel(scene.Default.Definitions())
			prog, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			final := prog.(sceneListModel)
			if final.Selected == nil {
				printInfo("No scene selected")
				return nil
			}

			opts := pipeline.Options{Scenes: []string{final.Selected.Name}}
			if production {
				opts.Quality = "high"
			}
			return c.runBuild(cmd.Context(), opts, noCache)
		},
	}

	cmd.Flags().BoolVar(&production, "production", false, "build the production (high quality) animation")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// sceneListModel is the bubbletea model for interactive scene selection.
type sceneListModel struct {
	Defs     []scene.Definition
	Filter   string
	Cursor   int
	Selected *scene.Definition
	Height   int
	Offset   int
}

func newSceneListModel(defs []scene.Definition) sceneListModel {
	return sceneListModel{
		Defs:   defs,
		Height: 15,
	}
}

func (m sceneListModel) Init() tea.Cmd {
	return nil
}

func (m sceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			visible := m.visible()
			if len(visible) > 0 {
				def := visible[m.Cursor]
				m.Selected = &def
			}
			return m, tea.Quit
		case "backspace":
			if len(m.Filter) > 0 {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.clampCursor()
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.Filter += string(msg.Runes)
				m.clampCursor()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m *sceneListModel) clampCursor() {
	if n := len(m.visible()); m.Cursor >= n {
		m.Cursor = max(0, n-1)
	}
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
}

// visible returns the definitions matching the current filter, best match
// first. An empty filter shows everything in registration order.
func (m sceneListModel) visible() []scene.Definition {
	if m.Filter == "" {
		return m.Defs
	}

	type scored struct {
		def   scene.Definition
		score int
	}
	ranked := make([]scored, 0, len(m.Defs))
	for _, def := range m.Defs {
		ranked = append(ranked, scored{def, match.Score(def.Name, m.Filter)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]scene.Definition, len(ranked))
	for i, r := range ranked {
		out[i] = r.def
	}
	return out
}

func (m sceneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scene"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ⏎ build  esc quit"))
	b.WriteString("\n\n")

	if m.Filter != "" {
		b.WriteString(StyleHighlight.Render("filter: " + m.Filter))
		b.WriteString("\n\n")
	}

	visible := m.visible()
	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	for i := m.Offset; i < end; i++ {
		def := visible[i]
		line := fmt.Sprintf("%s  %s", def.Name, listDimStyle.Render(def.File))
		if i == m.Cursor {
			b.WriteString("▸ " + listSelectedStyle.Render(def.Name) + "  " + listDimStyle.Render(def.File))
		} else {
			b.WriteString("  " + listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(visible))))

	return b.String()
}
