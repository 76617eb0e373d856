// Package session models named daily trading windows and resolves which
// window is active at a given instant.
//
// A session is a recurring wall-clock window such as "London 08:00-16:30".
// Windows whose end precedes their start wrap past midnight into the next
// day. Session values are plain configuration data; all derived state lives
// in [ResolvedState] and is recomputed from scratch on every tick.
package session

import (
	"fmt"
)

const (
	// MinutesPerDay is the number of minutes in a wall-clock day.
	MinutesPerDay = 24 * 60
	// SecondsPerDay is the number of seconds in a wall-clock day.
	SecondsPerDay = 24 * 60 * 60
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight,
// in the range [0, MinutesPerDay).
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("time of day %q: want HH:MM", s)
	}
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time of day %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Seconds returns the time as seconds since midnight.
func (t TimeOfDay) Seconds() int { return int(t) * 60 }

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Session is one named daily window. Start and End are wall-clock times of
// day, not dates; End lexicographically before Start means the window wraps
// past midnight. Color is an "#RRGGBB" hex string left unparsed here so that
// configuration round-trips exactly.
type Session struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Color string `yaml:"color,omitempty"`
}

// Window parses the session's start and end times.
func (s Session) Window() (start, end TimeOfDay, err error) {
	start, err = ParseTimeOfDay(s.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("session %q start: %w", s.Name, err)
	}
	end, err = ParseTimeOfDay(s.End)
	if err != nil {
		return 0, 0, fmt.Errorf("session %q end: %w", s.Name, err)
	}
	return start, end, nil
}

// CrossesMidnight reports whether the window wraps into the next day.
// Malformed sessions report false.
func (s Session) CrossesMidnight() bool {
	start, end, err := s.Window()
	if err != nil {
		return false
	}
	return end <= start
}

// Duration returns the window length in seconds. A window with End equal to
// Start spans a full day.
func (s Session) Duration() (int, error) {
	start, end, err := s.Window()
	if err != nil {
		return 0, err
	}
	d := end.Seconds() - start.Seconds()
	if d <= 0 {
		d += SecondsPerDay
	}
	return d, nil
}

// FormatCountdown renders a second count as a compact human-readable
// countdown, e.g. "3h 12m 05s". Negative input is clamped to zero.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
