// Package config loads and validates the dial.yaml session calendar.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-dial/dial/pkg/dial"
	"github.com/go-dial/dial/pkg/errors"
	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
)

// defaultSize is the rendered canvas size in CSS pixels when dial.yaml
// does not set one.
const defaultSize = 300.0

// Config represents the dial.yaml file.
type Config struct {
	Timezone  string            `yaml:"timezone,omitempty"`
	Style     string            `yaml:"style,omitempty"`
	Size      float64           `yaml:"size,omitempty"`
	HandColor string            `yaml:"hand_color,omitempty"`
	TieBreak  string            `yaml:"tie_break,omitempty"`
	Sessions  []session.Session `yaml:"sessions"`
	Events    []Event           `yaml:"events,omitempty"`
}

// Event is one configured event marker.
type Event struct {
	ID    string `yaml:"id"`
	Time  string `yaml:"time"`
	Color string `yaml:"color,omitempty"`
}

// Resolved contains resolved configuration values ready for the engine.
type Resolved struct {
	Location  *time.Location
	Style     dial.ClockStyle
	Size      float64
	HandColor rendering.Color
	TieBreak  session.TieBreak
	Sessions  []session.Session
	Markers   []dial.EventMarker
}

// Load reads a dial.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve validates the configuration and resolves defaults. Structural
// mistakes fail here; per-entry mistakes inside the session list are left
// to the resolver, which reports them once and keeps the clock running.
func (c *Config) Resolve() (*Resolved, error) {
	loc := time.Local
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone: %w", err)
		}
	}

	style, err := dial.ParseClockStyle(strings.TrimSpace(c.Style))
	if err != nil {
		return nil, err
	}

	size := c.Size
	if size == 0 {
		size = defaultSize
	}
	if size < 0 {
		return nil, fmt.Errorf("size must be positive (got %v)", c.Size)
	}

	var handColor rendering.Color
	if hc := strings.TrimSpace(c.HandColor); hc != "" {
		handColor, err = rendering.ParseColor(hc)
		if err != nil {
			return nil, fmt.Errorf("invalid hand_color: %w", err)
		}
	}

	tieBreak, err := parseTieBreak(c.TieBreak)
	if err != nil {
		return nil, err
	}

	if err := validateSessionNames(c.Sessions); err != nil {
		return nil, err
	}

	return &Resolved{
		Location:  loc,
		Style:     style,
		Size:      size,
		HandColor: handColor,
		TieBreak:  tieBreak,
		Sessions:  c.Sessions,
		Markers:   resolveEvents(c.Events),
	}, nil
}

func parseTieBreak(s string) (session.TieBreak, error) {
	switch strings.TrimSpace(s) {
	case "", "config_order":
		return session.TieBreakConfigOrder, nil
	case "earliest_end":
		return session.TieBreakEarliestEnd, nil
	default:
		return 0, fmt.Errorf("tie_break %q: want config_order or earliest_end", s)
	}
}

// validateSessionNames rejects duplicates and empty names. Animation state
// and tooltips are keyed by name, so duplicates would silently share state.
func validateSessionNames(sessions []session.Session) error {
	seen := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("session with start %q has no name", s.Start)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate session name %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// resolveEvents converts configured events to markers, skipping entries
// with unparseable times so one bad event never hides the rest.
func resolveEvents(events []Event) []dial.EventMarker {
	var markers []dial.EventMarker
	for _, e := range events {
		when, err := session.ParseTimeOfDay(e.Time)
		if err != nil {
			errors.Report(&errors.DialError{
				Op:   "config.resolveEvents",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("event %q: %w", e.ID, err),
			})
			continue
		}
		var color rendering.Color
		if e.Color != "" {
			color, err = rendering.ParseColor(e.Color)
			if err != nil {
				errors.Report(&errors.DialError{
					Op:   "config.resolveEvents",
					Kind: errors.KindConfig,
					Err:  fmt.Errorf("event %q: %w", e.ID, err),
				})
				color = 0
			}
		}
		markers = append(markers, dial.EventMarker{ID: e.ID, Time: when, Color: color})
	}
	return markers
}
