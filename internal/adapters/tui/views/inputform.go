package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/adapters/tui/styles"
)

// NameInputKeys are the keys of a one-line prompt
var NameInputKeys = struct {
	Submit key.Binding
	Cancel key.Binding
}{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// NameInput is a labelled one-line prompt that shows how many characters
// are left before the limit.
type NameInput struct {
	Label string
	Input textinput.Model
}

// NewNameInput creates a focused prompt. A limit of 0 means unlimited.
func NewNameInput(label, placeholder string, limit int) *NameInput {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Focus()
	return &NameInput{Label: label, Input: input}
}

func (f *NameInput) Init() tea.Cmd {
	return textinput.Blink
}

func (f *NameInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// Value returns the trimmed text
func (f *NameInput) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// SetValue replaces the text and puts the cursor after it
func (f *NameInput) SetValue(v string) {
	f.Input.SetValue(v)
	f.Input.CursorEnd()
}

func (f *NameInput) Reset() {
	f.Input.Reset()
	f.Input.Focus()
}

// View renders the label, the input and the remaining characters
func (f *NameInput) View() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(f.Label))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(f.Input.View()))
	if limit := f.Input.CharLimit; limit > 0 {
		left := limit - utf8.RuneCountInString(f.Input.Value())
		b.WriteString("\n")
		b.WriteString(RenderMuted(fmt.Sprintf("%d characters left", left)))
	}
	return b.String()
}

func (f *NameInput) Help() string {
	return RenderHelpLine(NameInputKeys.Submit, NameInputKeys.Cancel)
}
