package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"betternotes/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search note names and content",
	Long: `Search note names and content with fuzzy matching.

Example:
  betternotes-cli search antifire`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewSearchCommand(GetApp().Notebook, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s [%s]  %s\n", r.Name, r.SectionName, r.MatchedText)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
