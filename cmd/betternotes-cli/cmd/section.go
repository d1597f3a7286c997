package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"betternotes/internal/application/commands"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Add, rename, move, collapse or delete sections",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Append a new section",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		result, err := commands.NewAddSectionCommand(GetApp().Notebook, name).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename <section> <new-name>",
	Short: "Rename a section",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRenameSectionCommand(GetApp().Notebook, args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var sectionDeleteCmd = &cobra.Command{
	Use:   "delete <section>",
	Short: "Delete a section",
	Long: `Delete a section. Its notes are moved to the end of the unassigned notes
section. The unassigned notes section itself cannot be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteSectionCommand(GetApp().Notebook, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var sectionMoveCmd = &cobra.Command{
	Use:   "move <section> <position>",
	Short: "Move a section to a 0-based position (-1 for the end)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position %q: %w", args[1], err)
		}
		result, err := commands.NewMoveSectionCommand(GetApp().Notebook, args[0], position).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func expandCommand(use, short string, expanded bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <section-or-note>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewExpandCommand(GetApp().Notebook, args[0], expanded).Execute(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionAddCmd)
	sectionCmd.AddCommand(sectionRenameCmd)
	sectionCmd.AddCommand(sectionDeleteCmd)
	sectionCmd.AddCommand(sectionMoveCmd)

	rootCmd.AddCommand(expandCommand("expand", "Expand a section or note", true))
	rootCmd.AddCommand(expandCommand("collapse", "Collapse a section or note", false))
}
