package ports

// Redrawer is told that the in-memory notebook changed and the visible
// tree should be rebuilt.
type Redrawer interface {
	Redraw()
}

// RedrawFunc adapts a function to Redrawer
type RedrawFunc func()

// Redraw calls f
func (f RedrawFunc) Redraw() {
	if f != nil {
		f()
	}
}
