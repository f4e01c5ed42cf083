// Package input turns terminal key presses into the per-frame action set the
// simulation consumes.
//
// Terminals report key presses (and autorepeat) but never releases, so a key
// counts as held until its hold window elapses without a fresh press. Hosts
// that do see releases can call KeyRelease to drop a key immediately.
package input

import (
	"time"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

// DefaultHold is the hold window used when none is configured. It covers the
// initial autorepeat delay of common terminals.
const DefaultHold = 250 * time.Millisecond

// DefaultBindings returns the movement bindings: WASD, vim keys and arrows.
func DefaultBindings() map[string]core.Action {
	return map[string]core.Action{
		"w": core.ActionUp, "k": core.ActionUp, "up": core.ActionUp,
		"s": core.ActionDown, "j": core.ActionDown, "down": core.ActionDown,
		"a": core.ActionLeft, "h": core.ActionLeft, "left": core.ActionLeft,
		"d": core.ActionRight, "l": core.ActionRight, "right": core.ActionRight,
	}
}

// Controller tracks held keys and reports the actions they map to.
type Controller struct {
	hold     time.Duration
	bindings map[string]core.Action
	held     map[string]time.Time // Key -> last press
}

// NewController creates a controller with the default bindings. A hold of
// zero or less means keys stay held until released.
func NewController(hold time.Duration) *Controller {
	return &Controller{
		hold:     hold,
		bindings: DefaultBindings(),
		held:     make(map[string]time.Time),
	}
}

// Bind maps key to action, replacing any previous binding for key.
// Binding to ActionNone removes the key.
func (c *Controller) Bind(key string, action core.Action) {
	if action == core.ActionNone {
		delete(c.bindings, key)
		delete(c.held, key)
		return
	}
	c.bindings[key] = action
}

// Hold returns the hold window.
func (c *Controller) Hold() time.Duration {
	return c.hold
}

// KeyPress records a press (or autorepeat) of key at now.
// It reports whether the key is bound to an action.
func (c *Controller) KeyPress(key string, now time.Time) bool {
	if _, ok := c.bindings[key]; !ok {
		return false
	}
	c.held[key] = now
	return true
}

// KeyRelease drops key from the held set.
func (c *Controller) KeyRelease(key string) {
	delete(c.held, key)
}

// Clear releases every key.
func (c *Controller) Clear() {
	clear(c.held)
}

// Actions returns the de-duplicated actions held at now. Keys whose hold
// window has elapsed are released. Opposite directions cancel each other.
func (c *Controller) Actions(now time.Time) core.ActionSet {
	var set core.ActionSet
	for key, pressed := range c.held {
		if c.hold > 0 && now.Sub(pressed) > c.hold {
			delete(c.held, key)
			continue
		}
		set.Set(c.bindings[key])
	}

	cancel(&set, core.ActionUp, core.ActionDown)
	cancel(&set, core.ActionLeft, core.ActionRight)
	return set
}

func cancel(set *core.ActionSet, a, b core.Action) {
	if set.Has(a) && set.Has(b) {
		set.Unset(a)
		set.Unset(b)
	}
}
