package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"betternotes/internal/domain"
	"betternotes/internal/ports"
)

// Keys the notebook is stored under
const (
	KeySections   = "sections"
	KeyUnassigned = "unassigned_notes"
)

// LoadReport lists the failures Load absorbed. A nil field means the key
// was absent or decoded cleanly.
type LoadReport struct {
	SectionsErr   error
	UnassignedErr error

	// ReadErr is set when the store could not be read at all. Saving stays
	// blocked until a later Load reads it cleanly.
	ReadErr error

	// FreshUnassigned is true when no usable unassigned section was stored
	FreshUnassigned bool
}

// OK reports whether nothing had to be discarded
func (r LoadReport) OK() bool {
	return r.SectionsErr == nil && r.UnassignedErr == nil && r.ReadErr == nil
}

// DataManager maps the collection to and from JSON text in the config store
type DataManager struct {
	store      ports.ConfigStore
	group      string
	collection *domain.Collection
	redrawer   ports.Redrawer
	logger     *zap.Logger

	// set while the last Load could not read the store
	readErr error
}

// NewDataManager creates a data manager for collection
func NewDataManager(store ports.ConfigStore, group string, collection *domain.Collection, redrawer ports.Redrawer, logger *zap.Logger) *DataManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if redrawer == nil {
		redrawer = ports.RedrawFunc(nil)
	}
	return &DataManager{
		store:      store,
		group:      group,
		collection: collection,
		redrawer:   redrawer,
		logger:     logger.Named("datamanager"),
	}
}

// Load replaces the collection contents with the stored notebook.
// Malformed data never fails the load: the affected key starts fresh and the
// failure is logged and reported. A store that cannot be read is reported in
// ReadErr and blocks saving, so the stored notebook is never overwritten
// with the fresh one.
func (m *DataManager) Load() LoadReport {
	var report LoadReport
	m.readErr = nil

	sections, err := m.loadSections()
	if errors.Is(err, errRead) {
		report.ReadErr = err
		sections = []*domain.Section{}
	} else if err != nil {
		report.SectionsErr = err
		m.logger.Warn("discarding stored sections", zap.String("key", KeySections), zap.Error(err))
		sections = []*domain.Section{}
	}

	unassigned, err := m.loadUnassigned()
	if errors.Is(err, errRead) {
		if report.ReadErr == nil {
			report.ReadErr = err
		}
	} else if err != nil {
		report.UnassignedErr = err
		m.logger.Warn("discarding stored unassigned notes", zap.String("key", KeyUnassigned), zap.Error(err))
	}
	if unassigned == nil {
		report.FreshUnassigned = true
		unassigned = domain.NewUnassignedSection()
	}

	m.collection.ClearAll()
	for _, s := range sections {
		m.collection.AddSection(s)
	}
	m.collection.SetUnassignedSection(unassigned)

	if report.ReadErr != nil {
		m.readErr = report.ReadErr
		m.logger.Error("stored notebook unreadable, saving disabled", zap.Error(report.ReadErr))
	}

	m.logger.Info("loaded notebook",
		zap.Int("sections", len(sections)),
		zap.Int("notes", m.collection.NoteCount()),
	)

	return report
}

func (m *DataManager) loadSections() ([]*domain.Section, error) {
	raw, ok, err := m.read(KeySections)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*domain.Section{}, nil
	}

	var decoded []*domain.Section
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeySections, err)
	}

	sections := make([]*domain.Section, 0, len(decoded))
	for _, s := range decoded {
		if s == nil {
			continue
		}
		// the unassigned section is never part of the regular list
		s.IsUnassignedNotesSection = false
		s.Notes = compactNotes(s.Notes)
		sections = append(sections, s)
	}
	return sections, nil
}

// loadUnassigned merges the stored unassigned section into the current one,
// keeping its identity, or builds a new one. Returns nil when nothing usable
// was stored.
func (m *DataManager) loadUnassigned() (*domain.Section, error) {
	raw, ok, err := m.read(KeyUnassigned)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var stored *domain.Section
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyUnassigned, err)
	}
	if stored == nil {
		return nil, nil
	}

	target := m.collection.Unassigned()
	if target == nil {
		target = domain.NewUnassignedSection()
		if stored.ID != "" {
			target.ID = stored.ID
		}
	}

	if stored.Name != "" {
		target.Name = stored.Name
	}
	target.Notes = compactNotes(stored.Notes)
	target.IsMaximized = stored.IsMaximized
	target.Icon = stored.Icon
	target.IsUnassignedNotesSection = true

	return target, nil
}

// errRead marks store failures, as opposed to malformed stored text
var errRead = errors.New("read stored notebook")

// read returns the stored text of key. Absent and blank values are both
// reported as not ok.
func (m *DataManager) read(key string) (string, bool, error) {
	raw, ok, err := m.store.Get(m.group, key)
	if err != nil {
		m.logger.Error("failed to read stored notebook", zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("%w %s: %w", errRead, key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false, nil
	}
	return raw, true, nil
}

// Save writes both keys and asks for a redraw
func (m *DataManager) Save() error {
	err := m.SaveNoRedraw()
	m.redrawer.Redraw()
	return err
}

// SaveNoRedraw writes both keys without a redraw, for keystroke-driven saves
func (m *DataManager) SaveNoRedraw() error {
	if m.readErr != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnreadable, m.readErr)
	}

	values, err := m.encode()
	if err != nil {
		return err
	}

	if batch, ok := m.store.(ports.BatchConfigStore); ok {
		if err := batch.SetMany(m.group, values); err != nil {
			m.logger.Error("failed to save notebook", zap.Error(err))
			return fmt.Errorf("failed to save notebook: %w", err)
		}
		return nil
	}

	for _, key := range []string{KeySections, KeyUnassigned} {
		value, ok := values[key]
		if !ok {
			continue
		}
		if err := m.store.Set(m.group, key, value); err != nil {
			m.logger.Error("failed to save notebook", zap.String("key", key), zap.Error(err))
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}
	return nil
}

func (m *DataManager) encode() (map[string]string, error) {
	values := make(map[string]string, 2)

	sections := m.collection.Sections()
	if sections == nil {
		sections = []*domain.Section{}
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", KeySections, err)
	}
	values[KeySections] = string(data)

	if u := m.collection.Unassigned(); u != nil {
		data, err := json.Marshal(u)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", KeyUnassigned, err)
		}
		values[KeyUnassigned] = string(data)
	}

	return values, nil
}

func compactNotes(notes []*domain.Note) []*domain.Note {
	out := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
