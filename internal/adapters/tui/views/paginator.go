package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PageKeys move a paged list by a whole page
var PageKeys = struct {
	Prev key.Binding
	Next key.Binding
}{
	Prev: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "prev page"),
	),
	Next: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "next page"),
	),
}

// Paginator keeps a cursor over a list shown one page at a time.
// The visible page is always the one holding the cursor.
type Paginator struct {
	size   int
	total  int
	cursor int
}

// NewPaginator creates a paginator showing size rows per page
func NewPaginator(size int) *Paginator {
	if size <= 0 {
		size = 10
	}
	return &Paginator{size: size}
}

// Reset empties the list
func (p *Paginator) Reset() {
	p.total, p.cursor = 0, 0
}

// SetTotal resizes the list, keeping the cursor inside it
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.cursor = p.clamp(p.cursor)
}

// Cursor returns the absolute cursor index
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor places the cursor, clamped to the list
func (p *Paginator) SetCursor(i int) {
	p.cursor = p.clamp(i)
}

// Move shifts the cursor by delta rows and reports whether it moved
func (p *Paginator) Move(delta int) bool {
	next := p.clamp(p.cursor + delta)
	moved := next != p.cursor
	p.cursor = next
	return moved
}

func (p *Paginator) CursorUp() bool   { return p.Move(-1) }
func (p *Paginator) CursorDown() bool { return p.Move(1) }
func (p *Paginator) PageUp() bool     { return p.Move(-p.size) }
func (p *Paginator) PageDown() bool   { return p.Move(p.size) }

// HandleKey applies up, down or a page key. It reports false for any
// other key so the caller can keep handling it.
func (p *Paginator) HandleKey(msg tea.KeyMsg, up, down key.Binding) bool {
	switch {
	case key.Matches(msg, up):
		p.CursorUp()
	case key.Matches(msg, down):
		p.CursorDown()
	case key.Matches(msg, PageKeys.Prev):
		p.PageUp()
	case key.Matches(msg, PageKeys.Next):
		p.PageDown()
	default:
		return false
	}
	return true
}

// VisibleRange returns the [start, end) indices of the cursor's page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.cursor / p.size * p.size
	return start, min(start+p.size, p.total)
}

// TotalPages returns the page count, at least 1
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.size - 1) / p.size
}

// CurrentPage returns the 1-based page holding the cursor
func (p *Paginator) CurrentPage() int {
	return p.cursor/p.size + 1
}

// Footer renders "page x/y" when the list spans more than one page
func (p *Paginator) Footer() string {
	if p.TotalPages() <= 1 {
		return ""
	}
	return RenderMuted(fmt.Sprintf("page %d/%d", p.CurrentPage(), p.TotalPages()))
}

func (p *Paginator) clamp(i int) int {
	if p.total == 0 || i < 0 {
		return 0
	}
	return min(i, p.total-1)
}
