package commands

import (
	"context"
	"strings"
	"testing"

	"betternotes/internal/application"
)

func TestWriteTree(t *testing.T) {
	f := newFixture(t)
	if err := f.nb.SetSectionExpanded(false, f.skilling.ID); err != nil {
		t.Fatal(err)
	}
	if err := f.nb.SetNoteItemIcon(f.vorkath.ID, 1); err != nil {
		t.Fatal(err)
	}

	res, err := NewListCommand(f.nb, "").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	glyph := func(i application.Icon) string {
		if i.HasIcon() {
			return "*"
		}
		return ""
	}
	if err := WriteTree(&sb, res.Tree, TreeOptions{Glyph: glyph}); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"▾ Bosses (2)",
		"  • * Vorkath",
		"  • Zulrah",
		"▸ Skilling (1)",
		"  • Agility",
		"▾ Unassigned notes (1)",
		"  • loose",
		"",
	}, "\n")
	if sb.String() != want {
		t.Errorf("unexpected tree:\n%s\nwant:\n%s", sb.String(), want)
	}

	sb.Reset()
	if err := WriteTree(&sb, res.Tree, TreeOptions{ShowIDs: true}); err != nil {
		t.Fatal(err)
	}
	if !contains(sb.String(), f.zulrah.ID) {
		t.Errorf("expected ids in output:\n%s", sb.String())
	}
}
