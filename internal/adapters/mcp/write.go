package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"betternotes/internal/application/commands"
)

// RegisterWriteTools adds all notebook mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, nb commands.Notebook) {
	s.AddTool(addSectionTool(), addSectionHandler(nb))
	s.AddTool(addNoteTool(), addNoteHandler(nb))
	s.AddTool(renameTool(), renameHandler(nb))
	s.AddTool(deleteTool(), deleteHandler(nb))
	s.AddTool(moveNoteTool(), moveNoteHandler(nb))
	s.AddTool(moveSectionTool(), moveSectionHandler(nb))
	s.AddTool(setContentTool(), setContentHandler(nb))
	s.AddTool(setIconTool(), setIconHandler(nb))
	s.AddTool(expandTool(), expandHandler(nb))
}

// --- add_section ---

func addSectionTool() mcp.Tool {
	return mcp.NewTool("add_section",
		mcp.WithDescription("Append a new section to the notebook."),
		mcp.WithString("name",
			mcp.Description("Section name (max 50 characters). Omit for \"New section\"."),
		),
	)
}

func addSectionHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewAddSectionCommand(nb, req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_note ---

func addNoteTool() mcp.Tool {
	return mcp.NewTool("add_note",
		mcp.WithDescription("Append a new note to a section, or to the unassigned notes section when no section is given."),
		mcp.WithString("section",
			mcp.Description("Section ID or name"),
		),
		mcp.WithString("name",
			mcp.Description("Note name (max 50 characters). Omit for \"New note\"."),
		),
		mcp.WithString("content",
			mcp.Description("Initial note content"),
		),
	)
}

func addNoteHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddNoteCommand(nb, req.GetString("section", ""), req.GetString("name", ""))
		cmd.Content = req.GetString("content", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a section or a note."),
		mcp.WithString("kind",
			mcp.Description("What to rename"),
			mcp.Enum("section", "note"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("ID or current name"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name (max 50 characters)"),
			mcp.Required(),
		),
	)
}

func renameHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		name := req.GetString("name", "")

		var (
			result *commands.RenameResult
			err    error
		)
		if req.GetString("kind", "") == "section" {
			result, err = commands.NewRenameSectionCommand(nb, id, name).Execute(ctx)
		} else {
			result, err = commands.NewRenameNoteCommand(nb, id, name).Execute(ctx)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a note, or delete a section and move its notes to the unassigned notes section. The unassigned notes section cannot be deleted."),
		mcp.WithString("kind",
			mcp.Description("What to delete"),
			mcp.Enum("section", "note"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("ID or name"),
			mcp.Required(),
		),
	)
}

func deleteHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		var (
			result *commands.DeleteResult
			err    error
		)
		if req.GetString("kind", "") == "section" {
			result, err = commands.NewDeleteSectionCommand(nb, id).Execute(ctx)
		} else {
			result, err = commands.NewDeleteNoteCommand(nb, id).Execute(ctx)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_note ---

func moveNoteTool() mcp.Tool {
	return mcp.NewTool("move_note",
		mcp.WithDescription("Move a note to a position in a section. The destination may be the note's own section."),
		mcp.WithString("note",
			mcp.Description("Note ID or name"),
			mcp.Required(),
		),
		mcp.WithString("destination",
			mcp.Description("Destination section ID or name, or \"unassigned\""),
			mcp.Required(),
		),
		mcp.WithNumber("position",
			mcp.Description("0-based position in the destination. Omit or -1 to append."),
		),
	)
}

func moveNoteHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveNoteCommand(nb,
			req.GetString("note", ""),
			req.GetString("destination", ""),
			req.GetInt("position", commands.AppendPosition),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_section ---

func moveSectionTool() mcp.Tool {
	return mcp.NewTool("move_section",
		mcp.WithDescription("Move a section to a new position. The unassigned notes section always stays last."),
		mcp.WithString("section",
			mcp.Description("Section ID or name"),
			mcp.Required(),
		),
		mcp.WithNumber("position",
			mcp.Description("0-based position. -1 moves it to the end."),
			mcp.Required(),
		),
	)
}

func moveSectionHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveSectionCommand(nb,
			req.GetString("section", ""),
			req.GetInt("position", commands.AppendPosition),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_content ---

func setContentTool() mcp.Tool {
	return mcp.NewTool("set_content",
		mcp.WithDescription("Replace the content of a note."),
		mcp.WithString("note",
			mcp.Description("Note ID or name"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New content. An empty string clears the note."),
			mcp.Required(),
		),
	)
}

func setContentHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetContentCommand(nb, req.GetString("note", ""), req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_icon ---

func setIconTool() mcp.Tool {
	return mcp.NewTool("set_icon",
		mcp.WithDescription("Set or clear the icon of a note or section. An icon is either an item or a sprite; setting one clears the other."),
		mcp.WithString("id",
			mcp.Description("Note or section ID or name"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Icon kind"),
			mcp.Enum(commands.IconKindItem, commands.IconKindSprite, commands.IconKindNone),
			mcp.Required(),
		),
		mcp.WithNumber("icon_id",
			mcp.Description("Item or sprite ID. Ignored for kind none."),
		),
	)
}

func setIconHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetIconCommand(nb,
			req.GetString("id", ""),
			req.GetString("kind", ""),
			req.GetInt("icon_id", 0),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- expand ---

func expandTool() mcp.Tool {
	return mcp.NewTool("expand",
		mcp.WithDescription("Expand or collapse a section or a note."),
		mcp.WithString("id",
			mcp.Description("Section or note ID or name"),
			mcp.Required(),
		),
		mcp.WithBoolean("expanded",
			mcp.Description("true to expand, false to collapse"),
			mcp.Required(),
		),
	)
}

func expandHandler(nb commands.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewExpandCommand(nb, req.GetString("id", ""), req.GetBool("expanded", true))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
