package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"betternotes/internal/application"
)

func TestListCommand_Execute(t *testing.T) {
	f := newFixture(t)

	res, err := NewListCommand(f.nb, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sections != 3 || res.Notes != 4 {
		t.Errorf("expected 3 sections and 4 notes, got %d and %d", res.Sections, res.Notes)
	}

	children := res.Tree.Children
	if len(children) != 3 || children[2].Kind != application.NodeUnassigned {
		t.Fatalf("expected unassigned section last, got %d children", len(children))
	}

	res, err = NewListCommand(f.nb, "skilling").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sections != 1 || res.Notes != 1 {
		t.Errorf("expected 1 section and 1 note, got %d and %d", res.Sections, res.Notes)
	}
}

func TestExportCommand(t *testing.T) {
	f := newFixture(t)

	res, err := NewExportCommand(f.nb, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Format != application.FormatJSON {
		t.Errorf("expected json by default, got %s", res.Format)
	}

	var snap application.Snapshot
	if err := json.Unmarshal(res.Data, &snap); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(snap.Sections) != 2 {
		t.Errorf("expected 2 sections, got %d", len(snap.Sections))
	}

	res, err = NewExportCommand(f.nb, "yaml").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(string(res.Data), "unassigned_notes:") {
		t.Errorf("unexpected yaml output:\n%s", res.Data)
	}

	_, err = NewExportCommand(f.nb, "csv").Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
