package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/application"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToBrowserMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToSearchMsg struct{}

// SwitchToNameMsg opens the name form
type SwitchToNameMsg struct {
	Mode   NameMode
	Target *application.TreeNode
}

// SwitchToPickerMsg opens the section picker
type SwitchToPickerMsg struct {
	Purpose PickPurpose
	Note    *application.TreeNode // the note to move, nil when adding
}

// SwitchToDeleteMsg opens the delete confirmation
type SwitchToDeleteMsg struct {
	Target *application.TreeNode
}

// SwitchToEditorMsg opens the content editor for a note
type SwitchToEditorMsg struct {
	NoteID string
}

// SwitchToIconMsg opens the icon picker
type SwitchToIconMsg struct {
	Target *application.TreeNode
}

// ExternalEditMsg asks the app to run the external editor on a note
type ExternalEditMsg struct {
	NoteID string
}

// DoneMsg returns to the browser with a status message. Focus, when set,
// is the id the browser cursor should land on.
type DoneMsg struct {
	Message string
	Err     error
	Focus   string
}

func done(message, focus string) tea.Cmd {
	return func() tea.Msg { return DoneMsg{Message: message, Focus: focus} }
}

func failed(err error) tea.Cmd {
	return func() tea.Msg { return DoneMsg{Err: err} }
}
