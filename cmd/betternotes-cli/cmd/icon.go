package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"betternotes/internal/application/commands"
)

var iconCmd = &cobra.Command{
	Use:   "icon <section-or-note> <item|sprite|none> [id]",
	Short: "Set or clear an icon",
	Long: `Set the icon of a note or section to an item or a sprite, or clear it.
Setting one kind clears the other.

Examples:
  betternotes-cli icon Vorkath item 22103
  betternotes-cli icon Skilling sprite 209
  betternotes-cli icon Skilling none
  betternotes-cli icon sprites              # list known sprites`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "sprites" {
			for _, e := range GetApp().Icons.Sprites() {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s %s\n", e.ID, e.Glyph, e.Name)
			}
			return nil
		}
		if len(args) < 2 {
			return fmt.Errorf("icon kind is required (item, sprite or none)")
		}

		id := 0
		if len(args) == 3 {
			var err error
			if id, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("invalid icon id %q: %w", args[2], err)
			}
		} else if args[1] != commands.IconKindNone {
			return fmt.Errorf("an icon id is required for %s icons", args[1])
		}

		result, err := commands.NewSetIconCommand(GetApp().Notebook, args[0], args[1], id).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iconCmd)
}
