package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"betternotes/internal/application/commands"
)

// RegisterReadTools adds all read-only notebook tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, nb commands.Notebook) {
	s.AddTool(listTool(), listHandler(nb))
	s.AddTool(searchTool(), searchHandler(nb))
	s.AddTool(readNoteTool(), readNoteHandler(nb))
	s.AddTool(exportTool(), exportHandler(nb))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("Show the notebook as a tree of sections and notes with their IDs. The unassigned notes section is always last."),
		mcp.WithString("section",
			mcp.Description("Section ID or name to list. Use \"unassigned\" for the unassigned notes section. Omit to list everything."),
		),
	)
}

func listHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListCommand(nb, req.GetString("section", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := commands.WriteTree(&sb, result.Tree, commands.TreeOptions{ShowIDs: true}); err != nil {
			return toolError(err)
		}
		fmt.Fprintf(&sb, "\n%d sections, %d notes\n", result.Sections, result.Notes)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search note names and content. Returns matching notes with their IDs and sections."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(nb, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  [%s]  %s\n", r.NoteID, r.Name, r.SectionName, r.MatchedText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read the content of a note."),
		mcp.WithString("note",
			mcp.Description("Note ID or name"),
			mcp.Required(),
		),
	)
}

func readNoteHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := req.GetString("note", "")
		if ref == "" {
			return toolError(fmt.Errorf("note is required"))
		}

		note, section, err := commands.ResolveNote(nb.Snapshot(), ref)
		if err != nil {
			return toolError(err)
		}

		if note.Content == "" {
			return mcp.NewToolResultText(fmt.Sprintf("%s (in %s) is empty.", note.Name, section.Name)), nil
		}
		return mcp.NewToolResultText(note.Content), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Export the whole notebook as JSON or YAML."),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum("json", "yaml"),
		),
	)
}

func exportHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewExportCommand(nb, req.GetString("format", "json")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(result.Data)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
