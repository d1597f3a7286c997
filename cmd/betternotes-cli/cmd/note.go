package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"betternotes/internal/application/commands"
)

var (
	noteContent  string
	notePosition int
	fromStdin    bool
	toClipboard  bool
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Add, show, edit, move or delete notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a note",
	Long: `Append a note to a section, or to the unassigned notes section when
--section is omitted.

Examples:
  betternotes-cli note add Vorkath --section Bosses
  betternotes-cli note add "Shopping list" --content "feathers"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		section, _ := cmd.Flags().GetString("section")

		addCmd := commands.NewAddNoteCommand(GetApp().Notebook, section, name)
		addCmd.Content = noteContent
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show <note>",
	Short: "Print a note's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _, err := commands.ResolveNote(GetApp().Notebook.Snapshot(), args[0])
		if err != nil {
			return err
		}

		if toClipboard {
			if err := clipboard.WriteAll(note.Content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to the clipboard\n", note.Name)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), note.Content)
		return nil
	},
}

var noteSetCmd = &cobra.Command{
	Use:   "set <note> [content]",
	Short: "Replace a note's content",
	Long: `Replace a note's content with the given text, or with standard input when
--stdin is set.

Examples:
  betternotes-cli note set Vorkath "bring antifire"
  cat plan.txt | betternotes-cli note set Vorkath --stdin`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string
		switch {
		case fromStdin:
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			content = string(data)
		case len(args) == 2:
			content = args[1]
		default:
			return fmt.Errorf("content is required (pass it as an argument or use --stdin)")
		}

		result, err := commands.NewSetContentCommand(GetApp().Notebook, args[0], content).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var noteRenameCmd = &cobra.Command{
	Use:   "rename <note> <new-name>",
	Short: "Rename a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRenameNoteCommand(GetApp().Notebook, args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var noteMoveCmd = &cobra.Command{
	Use:   "move <note> <section>",
	Short: "Move a note to a section",
	Long: `Move a note to a position in a section; the section may be the note's own.

Examples:
  betternotes-cli note move Vorkath Skilling            # append
  betternotes-cli note move Vorkath Bosses --position 0 # to the top`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewMoveNoteCommand(GetApp().Notebook, args[0], args[1], notePosition).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <note>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteNoteCommand(GetApp().Notebook, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd, noteShowCmd, noteSetCmd, noteRenameCmd, noteMoveCmd, noteDeleteCmd)

	noteAddCmd.Flags().String("section", "", "section ID or name (default: unassigned)")
	noteAddCmd.Flags().StringVar(&noteContent, "content", "", "initial content")
	noteShowCmd.Flags().BoolVarP(&toClipboard, "copy", "c", false, "copy the content to the clipboard instead of printing it")
	noteSetCmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the content from standard input")
	noteMoveCmd.Flags().IntVarP(&notePosition, "position", "p", commands.AppendPosition, "0-based position in the section (-1 appends)")
}
