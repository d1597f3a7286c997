package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"betternotes/internal/ports"
)

// Editor implements ports.ContentEditor with the user's $EDITOR
type Editor struct {
	dir    string
	getenv func(string) string
}

// Ensure Editor implements ContentEditor
var _ ports.ContentEditor = (*Editor)(nil)

// NewEditor creates an editor that checks notes out to the temp directory
func NewEditor() *Editor {
	return &Editor{dir: os.TempDir(), getenv: os.Getenv}
}

// Begin writes content to a scratch file and prepares the editor command.
// The command is meant for bubbletea's ExecProcess.
func (e *Editor) Begin(noteID, content string) (*ports.ExternalEdit, error) {
	argv := e.findEditor()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp(e.dir, "betternotes-*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}

	cmd := exec.Command(argv[0], append(argv[1:], f.Name())...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return &ports.ExternalEdit{NoteID: noteID, Path: f.Name(), Cmd: cmd}, nil
}

// Finish reads the edited content back and removes the scratch file. The
// newline most editors append on save is dropped.
func (e *Editor) Finish(edit *ports.ExternalEdit) (string, error) {
	defer os.Remove(edit.Path)

	data, err := os.ReadFile(edit.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited note: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// findEditor returns the editor command line to use
func (e *Editor) findEditor() []string {
	// Check $EDITOR first, then $VISUAL; both may carry flags ("code -w")
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(e.getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}
