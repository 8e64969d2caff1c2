package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/contribchart/pkg/theme"
)

func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available chart themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := theme.Default
			if cfg, err := c.loadConfig(); err == nil {
				selected = cfg.Chart.Theme
			}
			printThemes(theme.Builtin, selected)
			return nil
		},
	}
}

func printThemes(reg *theme.Registry, selected string) {
	fmt.Fprintln(out, StyleTitle.Render("Themes"))
	for _, t := range reg.All() {
		marker := "  "
		id := StyleValue.Render(fmt.Sprintf("%-10s", t.ID))
		if t.ID == selected {
			marker = StyleHighlight.Render(iconArrow + " ")
			id = StyleHighlight.Render(fmt.Sprintf("%-10s", t.ID))
		}
		fmt.Fprintf(out, "%s%s %s  %s\n", marker, id, swatch(t.Palette), StyleDim.Render(t.Label))
	}
}

// themeCompletion completes --theme flags with the built-in theme ids.
func themeCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return theme.Builtin.IDs(), cobra.ShellCompDirectiveNoFileComp
}
