package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"betternotes/internal/adapters/tui/styles"
	"betternotes/internal/application"
)

// RenderKeyHelp formats a binding as "key desc"
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return styles.HelpKey.Render(help.Key) + " " + styles.HelpDesc.Render(help.Desc)
}

// RenderHelpLine renders bindings as one help line. Disabled bindings are skipped.
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage styles a status line as an error or a success
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderRow renders a list row, highlighted when selected
func RenderRow(text string, selected bool, base lipgloss.Style) string {
	if selected {
		return styles.NodeSelected.Render(text)
	}
	return base.Render(text)
}

// RenderTargetInfo renders "<action> <kind>:" above the node name
func RenderTargetInfo(node *application.TreeNode, action string) string {
	if node == nil {
		return ""
	}
	return styles.InputLabel.Render(action+" "+strings.ToLower(nodeKindString(node.Kind))+":") + "\n  " + node.Name
}

func nodeKindString(k application.NodeKind) string {
	switch k {
	case application.NodeSection:
		return "Section"
	case application.NodeUnassigned:
		return "Unassigned notes"
	case application.NodeNote:
		return "Note"
	default:
		return k.String()
	}
}
