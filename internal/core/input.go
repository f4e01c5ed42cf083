// Package core provides fundamental types shared by the simulation and the
// platform layer: semantic actions, the terminal cell buffer and runtime
// configuration. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "sort"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ActionSet is the de-duplicated set of actions active during one frame.
// The zero value is an empty set ready to use.
type ActionSet struct {
	actions map[Action]bool
}

// NewActionSet creates a set holding the given actions.
func NewActionSet(actions ...Action) ActionSet {
	s := ActionSet{actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		s.Set(a)
	}
	return s
}

// Set marks an action as active. ActionNone is ignored.
func (s *ActionSet) Set(a Action) {
	if a == ActionNone {
		return
	}
	if s.actions == nil {
		s.actions = make(map[Action]bool)
	}
	s.actions[a] = true
}

// Unset removes an action from the set.
func (s *ActionSet) Unset(a Action) {
	delete(s.actions, a)
}

// Has returns true if the given action is active.
func (s ActionSet) Has(a Action) bool {
	return s.actions[a]
}

// Len returns the number of active actions.
func (s ActionSet) Len() int {
	return len(s.actions)
}

// Clear removes every action.
func (s *ActionSet) Clear() {
	for k := range s.actions {
		delete(s.actions, k)
	}
}

// Clone creates a copy of this set.
func (s ActionSet) Clone() ActionSet {
	clone := ActionSet{actions: make(map[Action]bool, len(s.actions))}
	for k, v := range s.actions {
		clone.actions[k] = v
	}
	return clone
}

// List returns the active actions in ascending order.
func (s ActionSet) List() []Action {
	out := make([]Action, 0, len(s.actions))
	for a := range s.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
