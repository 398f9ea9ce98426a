package core

import "testing"

func TestControlSchemeLookup(t *testing.T) {
	s := NewControlScheme("space", "up", "right", "down", "left")

	tests := []struct {
		key      string
		expected Action
		ok       bool
	}{
		{"space", ActionFire, true},
		{" ", ActionFire, true},
		{"up", ActionUp, true},
		{"ArrowLeft", ActionLeft, true},
		{"x", ActionNone, false},
		{"", ActionNone, false},
	}

	for _, tc := range tests {
		got, ok := s.Lookup(tc.key)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("Lookup(%q) = %v, %v, expected %v, %v", tc.key, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestControlSchemeUnboundAndKeys(t *testing.T) {
	s := NewControlScheme("F", "w", "d", "s", "")
	if _, ok := s.Lookup("a"); ok {
		t.Error("empty binding should leave the action unbound")
	}
	if a, ok := s.Lookup("f"); !ok || a != ActionFire {
		t.Errorf("Lookup(f) = %v, %v, expected Fire", a, ok)
	}
	keys := s.Keys()
	if keys[ActionUp] != "w" || keys[ActionFire] != "f" {
		t.Errorf("Keys() = %v", keys)
	}
	if _, ok := keys[ActionLeft]; ok {
		t.Errorf("Keys() should not list unbound Left")
	}
}
