package application

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"betternotes/internal/domain"
	"betternotes/internal/ports"
)

// DefaultGroup is the config store namespace used when Options.Group is empty
const DefaultGroup = "betternotes"

// Options configures a Notebook
type Options struct {
	Group    string
	Debounce time.Duration // quiet period for content edits
	Redrawer ports.Redrawer
	Logger   *zap.Logger
}

// Notebook is the single entry point for changing notes and sections.
// Every change is applied in memory and written through to the store before
// the call returns; content edits are the one exception (see EditNoteContent).
//
// Lookup misses change nothing, write nothing, and return an error matching
// ErrNotFound.
type Notebook struct {
	mu         sync.Mutex
	collection *domain.Collection
	data       *DataManager
	content    *Debouncer
	redrawer   ports.Redrawer
	logger     *zap.Logger

	redrawPending bool
}

// NewNotebook creates an empty notebook backed by store. Call Load to read
// the stored notebook.
func NewNotebook(store ports.ConfigStore, opts Options) *Notebook {
	if opts.Group == "" {
		opts.Group = DefaultGroup
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Redrawer == nil {
		opts.Redrawer = ports.RedrawFunc(nil)
	}

	// the unassigned section is created on first use so Load can adopt the
	// stored id
	collection := domain.NewCollection()

	nb := &Notebook{
		collection: collection,
		content:    NewDebouncer(opts.Debounce),
		redrawer:   opts.Redrawer,
		logger:     opts.Logger.Named("notebook"),
	}
	// the data manager runs under nb.mu; redraws are deferred until unlock
	nb.data = NewDataManager(store, opts.Group, collection,
		ports.RedrawFunc(func() { nb.redrawPending = true }), opts.Logger)

	return nb
}

// SetRedrawer replaces the redraw listener
func (nb *Notebook) SetRedrawer(r ports.Redrawer) {
	nb.lock()
	defer nb.unlock()
	if r == nil {
		r = ports.RedrawFunc(nil)
	}
	nb.redrawer = r
}

func (nb *Notebook) lock() {
	nb.mu.Lock()
}

// unlock releases the notebook and then delivers a pending redraw, so
// listeners may call back into the notebook.
func (nb *Notebook) unlock() {
	pending := nb.redrawPending
	nb.redrawPending = false
	redrawer := nb.redrawer
	nb.mu.Unlock()

	if pending {
		redrawer.Redraw()
	}
}

// Load reads the stored notebook, replacing the in-memory one
func (nb *Notebook) Load() LoadReport {
	nb.lock()
	defer nb.unlock()

	nb.content.Stop()
	report := nb.data.Load()
	nb.redrawPending = true
	return report
}

// Save writes the notebook and triggers a redraw
func (nb *Notebook) Save() error {
	nb.lock()
	defer nb.unlock()
	return nb.data.Save()
}

// Close flushes a pending content edit so no keystrokes are lost
func (nb *Notebook) Close() error {
	if nb.content.Flush() {
		nb.logger.Debug("flushed pending content edit on close")
	}
	return nil
}

// Snapshot returns a deep copy of the notebook
func (nb *Notebook) Snapshot() Snapshot {
	nb.lock()
	defer nb.unlock()
	nb.ensureUnassigned()

	sections := make([]*Section, len(nb.collection.Sections()))
	for i, s := range nb.collection.Sections() {
		sections[i] = s.Clone()
	}

	return Snapshot{Sections: sections, Unassigned: nb.collection.Unassigned().Clone()}
}

// Tree builds the navigation tree of the current notebook
func (nb *Notebook) Tree() *TreeNode {
	return nb.Snapshot().Tree()
}

// UnassignedID returns the id of the unassigned notes section
func (nb *Notebook) UnassignedID() string {
	nb.lock()
	defer nb.unlock()
	nb.ensureUnassigned()
	return nb.collection.Unassigned().ID
}

// Section returns a copy of a regular or the unassigned section
func (nb *Notebook) Section(id string) (*Section, error) {
	nb.lock()
	defer nb.unlock()

	s := nb.collection.Container(id)
	if s == nil {
		return nil, sectionNotFound(id)
	}
	return s.Clone(), nil
}

// Note returns a copy of a note and the id of its section
func (nb *Notebook) Note(noteID string) (*Note, string, error) {
	nb.lock()
	defer nb.unlock()

	n, owner := nb.collection.FindNote(noteID)
	if n == nil {
		return nil, "", noteNotFound(noteID)
	}
	return n.Clone(), owner.ID, nil
}

// AcknowledgeNew clears the new flag of a section or note after the
// presentation layer prompted for its name. Nothing is written.
func (nb *Notebook) AcknowledgeNew(id string) error {
	nb.lock()
	defer nb.unlock()

	if s := nb.collection.Container(id); s != nil {
		s.IsNew = false
		return nil
	}
	if n, _ := nb.collection.FindNote(id); n != nil {
		n.IsNew = false
		return nil
	}
	return &NotFoundError{Kind: "entry", ID: id}
}

// ensureUnassigned recreates the unassigned section after ClearAll
func (nb *Notebook) ensureUnassigned() *Section {
	if nb.collection.Unassigned() == nil {
		nb.collection.SetUnassignedSection(domain.NewUnassignedSection())
	}
	return nb.collection.Unassigned()
}

func (nb *Notebook) save() error {
	nb.ensureUnassigned()
	return nb.data.Save()
}

func (nb *Notebook) saveNoRedraw() error {
	nb.ensureUnassigned()
	return nb.data.SaveNoRedraw()
}
