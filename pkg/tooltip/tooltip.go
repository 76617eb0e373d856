// Package tooltip coordinates tooltip visibility across the dial.
//
// At most one tooltip, whether a session arc's or an event marker's, is
// visible at a time. The coordinator is an explicit mediator handed to whichever
// components open tooltips; there is no ambient global.
package tooltip

import (
	"fmt"
	"sync"
)

// Kind distinguishes the two tooltip families.
type Kind int

const (
	// KindSession is a tooltip anchored to a session arc.
	KindSession Kind = iota
	// KindEvent is a tooltip anchored to an event marker.
	KindEvent
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindEvent:
		return "event"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Coordinator enforces the single-visible-tooltip invariant.
// The zero value is ready to use. Safe for concurrent use.
type Coordinator struct {
	mu       sync.Mutex
	open     bool
	kind     Kind
	id       string
	onChange func()
}

// SetOnChange registers a callback fired after every visibility change.
// The callback runs without the coordinator's lock held.
func (c *Coordinator) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Open shows the tooltip for (kind, id), implicitly closing whichever
// tooltip of either kind was previously open.
func (c *Coordinator) Open(kind Kind, id string) {
	c.mu.Lock()
	if c.open && c.kind == kind && c.id == id {
		c.mu.Unlock()
		return
	}
	c.open = true
	c.kind = kind
	c.id = id
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Close hides the active tooltip only if its kind matches. A stale async
// close from one kind can therefore never hide a newer tooltip of the
// other kind.
func (c *Coordinator) Close(kind Kind) {
	c.mu.Lock()
	if !c.open || c.kind != kind {
		c.mu.Unlock()
		return
	}
	c.open = false
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// CloseAll unconditionally hides the active tooltip, used when the pointer
// leaves the canvas entirely.
func (c *Coordinator) CloseAll() {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return
	}
	c.open = false
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// IsActive reports whether the tooltip for (kind, id) is currently open.
func (c *Coordinator) IsActive(kind Kind, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open && c.kind == kind && c.id == id
}

// Active returns the open tooltip, if any.
func (c *Coordinator) Active() (kind Kind, id string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return 0, "", false
	}
	return c.kind, c.id, true
}
