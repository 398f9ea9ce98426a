package core

import "strings"

// ControlScheme maps key names to one player's actions. Key names are
// frontend-neutral: "up", "down", "left", "right", "space", "enter" and
// single lower-case letters or digits.
type ControlScheme map[string]Action

// NewControlScheme builds a scheme from the five gameplay bindings.
// Empty names are left unbound.
func NewControlScheme(fire, up, right, down, left string) ControlScheme {
	s := make(ControlScheme, 5)
	for key, a := range map[string]Action{
		fire:  ActionFire,
		up:    ActionUp,
		right: ActionRight,
		down:  ActionDown,
		left:  ActionLeft,
	} {
		if key != "" {
			s[NormalizeKey(key)] = a
		}
	}
	return s
}

// Lookup returns the action bound to key. Unbound keys report ok=false.
func (s ControlScheme) Lookup(key string) (Action, bool) {
	a, ok := s[NormalizeKey(key)]
	return a, ok
}

// Keys returns the key bound to each action.
func (s ControlScheme) Keys() map[Action]string {
	out := make(map[Action]string, len(s))
	for k, a := range s {
		out[a] = k
	}
	return out
}

// NormalizeKey folds frontend spellings into scheme key names.
func NormalizeKey(key string) string {
	switch key {
	case " ":
		return "space"
	case "arrowup":
		return "up"
	case "arrowdown":
		return "down"
	case "arrowleft":
		return "left"
	case "arrowright":
		return "right"
	}
	k := strings.ToLower(key)
	if k != key {
		return NormalizeKey(k)
	}
	return k
}
