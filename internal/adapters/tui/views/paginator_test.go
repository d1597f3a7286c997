package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPaginator_PageFollowsCursor(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)

	p.SetCursor(7)
	if start, end := p.VisibleRange(); start != 5 || end != 10 {
		t.Errorf("expected page [5,10), got [%d,%d)", start, end)
	}
	if p.CurrentPage() != 2 || p.TotalPages() != 3 {
		t.Errorf("expected page 2/3, got %d/%d", p.CurrentPage(), p.TotalPages())
	}

	p.PageDown()
	if start, end := p.VisibleRange(); start != 10 || end != 12 {
		t.Errorf("expected last page [10,12), got [%d,%d)", start, end)
	}
	if p.PageDown() {
		t.Error("expected no movement past the last row")
	}
}

func TestPaginator_ShrinkClampsCursor(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(8)
	p.SetCursor(7)

	p.SetTotal(3)
	if p.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", p.Cursor())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 || p.Footer() != "" {
		t.Errorf("expected empty paginator, got cursor %d footer %q", p.Cursor(), p.Footer())
	}
}

func TestPaginator_HandleKey(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(10)

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		handled bool
		cursor  int
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, true, 1},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, true, 4},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, true, 3},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, true, 0},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.HandleKey(tt.msg, PickerKeys.Up, PickerKeys.Down); got != tt.handled {
				t.Errorf("handled = %v, want %v", got, tt.handled)
			}
			if p.Cursor() != tt.cursor {
				t.Errorf("cursor = %d, want %d", p.Cursor(), tt.cursor)
			}
		})
	}
}
