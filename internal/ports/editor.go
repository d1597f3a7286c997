package ports

import "os/exec"

// ExternalEdit is note content checked out to a file for an external editor
type ExternalEdit struct {
	NoteID string
	Path   string
	Cmd    *exec.Cmd // run it with bubbletea's ExecProcess
}

// ContentEditor edits note content in the user's preferred editor
type ContentEditor interface {
	// Begin writes content to a scratch file and prepares the editor command
	Begin(noteID, content string) (*ExternalEdit, error)

	// Finish reads the edited content back and removes the scratch file
	Finish(edit *ExternalEdit) (string, error)
}
