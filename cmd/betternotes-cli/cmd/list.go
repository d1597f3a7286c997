package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"betternotes/internal/application"
	"betternotes/internal/application/commands"
)

var showIDs bool

var listCmd = &cobra.Command{
	Use:   "list [section]",
	Short: "Show the notebook tree",
	Long: `Show sections and their notes as a tree. The unassigned notes section is
always listed last.

Examples:
  betternotes-cli list
  betternotes-cli list Bosses
  betternotes-cli list unassigned --ids`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		section := ""
		if len(args) == 1 {
			section = args[0]
		}

		list := commands.NewListCommand(GetApp().Notebook, section)
		result, err := list.Execute(ctx)
		if err != nil {
			return err
		}

		opts := commands.TreeOptions{ShowIDs: showIDs, Glyph: glyph}
		if err := commands.WriteTree(cmd.OutOrStdout(), result.Tree, opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d sections, %d notes\n", result.Sections, result.Notes)
		return nil
	},
}

// glyph renders an icon with the configured catalog
func glyph(icon application.Icon) string {
	img, ok := GetApp().Icons.Lookup(icon)
	if !ok {
		return ""
	}
	return img.Glyph
}

func init() {
	listCmd.Flags().BoolVar(&showIDs, "ids", false, "print section and note IDs")
	rootCmd.AddCommand(listCmd)
}
