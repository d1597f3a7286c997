package domain

import (
	"encoding/json"
	"testing"
)

func TestIcon_Predicates(t *testing.T) {
	tests := []struct {
		name      string
		icon      Icon
		hasItem   bool
		hasSprite bool
	}{
		{name: "unset", icon: NoIcons(), hasItem: false, hasSprite: false},
		{name: "item only", icon: Icon{ItemID: 4151, SpriteID: NoIcon}, hasItem: true, hasSprite: false},
		{name: "sprite only", icon: Icon{ItemID: NoIcon, SpriteID: 42}, hasItem: false, hasSprite: true},
		{name: "both persisted", icon: Icon{ItemID: 1, SpriteID: 2}, hasItem: true, hasSprite: true},
		{name: "zero is a valid id", icon: Icon{ItemID: 0, SpriteID: NoIcon}, hasItem: true, hasSprite: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.icon.HasItemIcon(); got != tt.hasItem {
				t.Errorf("HasItemIcon() = %v, want %v", got, tt.hasItem)
			}
			if got := tt.icon.HasSpriteIcon(); got != tt.hasSprite {
				t.Errorf("HasSpriteIcon() = %v, want %v", got, tt.hasSprite)
			}
			if got := tt.icon.HasIcon(); got != (tt.hasItem || tt.hasSprite) {
				t.Errorf("HasIcon() = %v", got)
			}
		})
	}
}

func TestIcon_SettersAreExclusive(t *testing.T) {
	icon := NoIcons()

	icon.SetItem(995)
	if icon.ItemID != 995 || icon.SpriteID != NoIcon {
		t.Fatalf("after SetItem got %+v", icon)
	}

	icon.SetSprite(7)
	if icon.ItemID != NoIcon || icon.SpriteID != 7 {
		t.Fatalf("after SetSprite got %+v", icon)
	}

	icon.Clear()
	if icon.HasIcon() {
		t.Fatalf("after Clear got %+v", icon)
	}
}

func TestIcon_Active(t *testing.T) {
	kind, id := Icon{ItemID: 10, SpriteID: 20}.Active()
	if kind != IconKindItem || id != 10 {
		t.Errorf("expected item 10, got %s %d", kind, id)
	}

	kind, id = Icon{ItemID: NoIcon, SpriteID: 20}.Active()
	if kind != IconKindSprite || id != 20 {
		t.Errorf("expected sprite 20, got %s %d", kind, id)
	}

	kind, _ = NoIcons().Active()
	if kind != IconKindNone {
		t.Errorf("expected none, got %s", kind)
	}
}

func TestNote_SentinelRoundTrip(t *testing.T) {
	note := NewNote("Slayer")
	note.Icon = Icon{ItemID: NoIcon, SpriteID: 42}

	data, err := json.Marshal(note)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Note
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ItemID != NoIcon || got.SpriteID != 42 {
		t.Errorf("icon did not round-trip: %+v", got.Icon)
	}
	if !got.HasIcon() || got.HasItemIcon() || !got.HasSpriteIcon() {
		t.Errorf("unexpected predicates for %+v", got.Icon)
	}
	if got.IsNew {
		t.Error("transient IsNew must not persist")
	}
}
