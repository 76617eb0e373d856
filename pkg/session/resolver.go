package session

import (
	"fmt"
	"time"

	"github.com/go-dial/dial/pkg/errors"
)

// TieBreak selects the winner when overlapping sessions are simultaneously
// active.
type TieBreak int

const (
	// TieBreakConfigOrder picks the first active session in configuration
	// order. This matches the legacy behavior most deployments rely on.
	TieBreakConfigOrder TieBreak = iota
	// TieBreakEarliestEnd picks the active session that ends soonest,
	// falling back to configuration order on equal ends.
	TieBreakEarliestEnd
)

// ResolvedState is the resolver output for one instant. Exactly one of
// Active or Next drives a countdown label; both are nil only for an empty
// calendar. SecondsToEnd is meaningful only when Active is non-nil, and
// SecondsToStart only when Next is non-nil.
type ResolvedState struct {
	Active         *Session
	SecondsToEnd   int
	Next           *Session
	SecondsToStart int
}

// Resolver computes session state from wall-clock time. The zero value
// resolves in time.Local with configuration-order tie-breaking.
//
// Malformed sessions (start or end not parseable as HH:MM) are reported once
// per session and otherwise treated as absent, so one bad configuration
// entry never blanks the whole clock.
type Resolver struct {
	// TieBreak selects among overlapping active sessions.
	TieBreak TieBreak
	// Location is the clock's reference timezone. Nil means time.Local.
	Location *time.Location

	badConfig errors.Once
}

// NewResolver returns a resolver for the given timezone.
// A nil location means time.Local.
func NewResolver(loc *time.Location) *Resolver {
	return &Resolver{Location: loc}
}

// window is a session's parsed span in seconds since midnight.
// End may exceed SecondsPerDay for midnight-crossing windows.
type window struct {
	session  *Session
	start    int
	end      int
	toEnd    int // seconds until the window closes, when active
	toStart  int // seconds until the next opening
	isActive bool
}

// Resolve computes the active and upcoming session for the given instant.
// The returned pointers alias entries of the sessions slice.
func (r *Resolver) Resolve(sessions []Session, now time.Time) ResolvedState {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	nowSec := now.Hour()*3600 + now.Minute()*60 + now.Second()

	var active *window
	var next *window
	for i := range sessions {
		w, ok := r.parse(&sessions[i], nowSec)
		if !ok {
			continue
		}
		if w.isActive && better(r.TieBreak, w, active) {
			active = w
		}
		if next == nil || w.toStart < next.toStart {
			next = w
		}
	}

	state := ResolvedState{}
	if active != nil {
		state.Active = active.session
		state.SecondsToEnd = active.toEnd
	}
	if next != nil {
		state.Next = next.session
		state.SecondsToStart = next.toStart
	}
	return state
}

// parse evaluates one session against the current second of day.
func (r *Resolver) parse(s *Session, nowSec int) (*window, bool) {
	start, end, err := s.Window()
	if err != nil {
		r.badConfig.Report(s.Name+"|"+s.Start+"|"+s.End, &errors.DialError{
			Op:   "session.Resolver",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("skipping session: %w", err),
		})
		return nil, false
	}

	w := &window{session: s, start: start.Seconds(), end: end.Seconds()}
	if w.end <= w.start {
		w.end += SecondsPerDay
	}

	switch {
	case nowSec >= w.start && nowSec < w.end:
		w.isActive = true
		w.toEnd = w.end - nowSec
	case nowSec+SecondsPerDay < w.end:
		// Early-morning continuation of a midnight-crossing window.
		w.isActive = true
		w.toEnd = w.end - nowSec - SecondsPerDay
	}

	w.toStart = (w.start - nowSec) % SecondsPerDay
	if w.toStart <= 0 {
		w.toStart += SecondsPerDay
	}
	return w, true
}

// better reports whether candidate should replace the incumbent active
// window under the given tie-break rule.
func better(rule TieBreak, candidate, incumbent *window) bool {
	if incumbent == nil {
		return true
	}
	if rule == TieBreakEarliestEnd {
		return candidate.toEnd < incumbent.toEnd
	}
	return false
}
