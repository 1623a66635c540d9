package registry

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Register(Variant{ID: "effects", Title: "Effects", Rules: Rules{Effects: true, WallPass: true}})
	Register(Variant{ID: "classic", Title: "Classic"})

	if !Exists("classic") {
		t.Error("classic should exist")
	}
	if Exists("missing") {
		t.Error("missing should not exist")
	}

	v, err := Lookup("effects")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !v.Rules.Effects || !v.Rules.WallPass {
		t.Errorf("effects rules = %+v", v.Rules)
	}

	if _, err := Lookup("missing"); err == nil {
		t.Error("expected error for unknown variant")
	}

	list := List()
	if len(list) != 2 {
		t.Fatalf("List len = %d, want 2", len(list))
	}
	if list[0].ID != "classic" || list[1].ID != "effects" {
		t.Errorf("List not sorted: %v, %v", list[0].ID, list[1].ID)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Register(Variant{ID: "classic"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Variant{ID: "classic"})
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	reset()
	t.Cleanup(reset)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty ID")
		}
	}()
	Register(Variant{})
}
