package commands

import (
	"fmt"
	"io"
	"strings"

	"betternotes/internal/application"
)

// TreeOptions controls WriteTree output
type TreeOptions struct {
	ShowIDs bool
	// Glyph returns a short icon rendering; nil or "" prints nothing
	Glyph func(application.Icon) string
}

// WriteTree prints the notebook tree as indented text. Collapsed sections
// still list their notes.
func WriteTree(w io.Writer, root *application.TreeNode, opts TreeOptions) error {
	for _, child := range root.Children {
		if err := writeNode(w, child, 0, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(w io.Writer, node *application.TreeNode, depth int, opts TreeOptions) error {
	marker := "•"
	if node.IsContainer() {
		marker = "▾"
		if !node.IsExpanded {
			marker = "▸"
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(marker)
	sb.WriteByte(' ')
	if opts.Glyph != nil {
		if g := opts.Glyph(node.Icon); g != "" {
			sb.WriteString(g)
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(node.Name)
	if node.IsContainer() {
		fmt.Fprintf(&sb, " (%d)", len(node.Children))
	}
	if opts.ShowIDs {
		fmt.Fprintf(&sb, "  %s", node.ID)
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := writeNode(w, child, depth+1, opts); err != nil {
			return err
		}
	}
	return nil
}
