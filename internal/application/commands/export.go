package commands

import (
	"context"
	"fmt"
	"strings"

	"betternotes/internal/application"
)

// ExportResult holds the rendered notebook
type ExportResult struct {
	Format string
	Data   []byte
}

// ExportCommand renders the whole notebook as JSON or YAML
type ExportCommand struct {
	notebook Notebook
	Format   string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(notebook Notebook, format string) *ExportCommand {
	return &ExportCommand{
		notebook: notebook,
		Format:   format,
	}
}

// Validate checks the requested format
func (c *ExportCommand) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", application.FormatJSON, application.FormatYAML, "yml":
		return nil
	default:
		return &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported export format %q (expected json or yaml)", c.Format),
		}
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	format := strings.ToLower(c.Format)
	if format == "" {
		format = application.FormatJSON
	}

	data, err := c.notebook.Export(format)
	if err != nil {
		return nil, fmt.Errorf("failed to export notebook: %w", err)
	}

	return &ExportResult{Format: format, Data: data}, nil
}
