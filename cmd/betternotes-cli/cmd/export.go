package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"betternotes/internal/application/commands"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the notebook as JSON or YAML",
	Long: `Export every section and note, including the unassigned notes section.

Examples:
  betternotes-cli export
  betternotes-cli export --format yaml -o notes.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewExportCommand(GetApp().Notebook, exportFormat).Execute(context.Background())
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err := cmd.OutOrStdout().Write(result.Data)
			return err
		}

		if err := os.WriteFile(exportOutput, result.Data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported notebook to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
