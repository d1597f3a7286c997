package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewNote_Defaults(t *testing.T) {
	n := NewNote("")

	if n.Name != DefaultNoteName {
		t.Errorf("expected name %q, got %q", DefaultNoteName, n.Name)
	}
	if n.ID == "" {
		t.Error("expected an id")
	}
	if n.Content != "" {
		t.Errorf("expected empty content, got %q", n.Content)
	}
	if n.HasIcon() {
		t.Error("new note must have no icon")
	}
	if !n.IsMaximized || !n.IsNew {
		t.Errorf("expected maximized new note, got %+v", n)
	}
}

func TestNewNote_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := NewNote("x").ID
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestNote_UnmarshalLegacyPayload(t *testing.T) {
	// written before sprites and collapse existed
	payload := `{"id":"n1","name":"Herbs","content":"<b>ranarr</b>","itemId":257}`

	var n Note
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if n.SpriteID != NoIcon {
		t.Errorf("expected missing spriteId to decode as %d, got %d", NoIcon, n.SpriteID)
	}
	if n.ItemID != 257 {
		t.Errorf("expected itemId 257, got %d", n.ItemID)
	}
	if !n.IsMaximized {
		t.Error("expected missing isMaximized to default to true")
	}
	if n.Content != "<b>ranarr</b>" {
		t.Errorf("content changed: %q", n.Content)
	}
}

func TestNote_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(NewNote("a"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, field := range []string{`"id"`, `"name"`, `"content"`, `"itemId"`, `"spriteId"`, `"isMaximized"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("expected field %s in %s", field, data)
		}
	}
	if strings.Contains(string(data), "IsNew") || strings.Contains(string(data), "isNew") {
		t.Errorf("transient field leaked: %s", data)
	}
}
