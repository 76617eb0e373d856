package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-dial/dial/pkg/dial"
	"github.com/go-dial/dial/pkg/session"
)

const sampleYAML = `
timezone: Europe/London
style: aesthetic
size: 420
hand_color: "#E8EDF6"
tie_break: earliest_end
sessions:
  - name: London
    start: "08:00"
    end: "16:30"
    color: "#2F6FB2"
  - name: NewYork
    start: "13:30"
    end: "20:00"
events:
  - id: cpi
    time: "13:30"
  - id: broken
    time: "25:99"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dial.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndResolve(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	res, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if res.Location.String() != "Europe/London" {
		t.Errorf("location = %v", res.Location)
	}
	if res.Style != dial.StyleAesthetic {
		t.Errorf("style = %v", res.Style)
	}
	if res.Size != 420 {
		t.Errorf("size = %v", res.Size)
	}
	if res.TieBreak != session.TieBreakEarliestEnd {
		t.Errorf("tie break = %v", res.TieBreak)
	}
	if len(res.Sessions) != 2 || res.Sessions[0].Name != "London" {
		t.Errorf("sessions = %v", res.Sessions)
	}
	// The broken event is skipped, not fatal.
	if len(res.Markers) != 1 || res.Markers[0].ID != "cpi" {
		t.Errorf("markers = %v", res.Markers)
	}
}

func TestResolveDefaults(t *testing.T) {
	res, err := (&Config{}).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Style != dial.StyleNormal {
		t.Errorf("style = %v, want normal", res.Style)
	}
	if res.Size != defaultSize {
		t.Errorf("size = %v, want %v", res.Size, defaultSize)
	}
	if res.TieBreak != session.TieBreakConfigOrder {
		t.Errorf("tie break = %v, want config order", res.TieBreak)
	}
}

func TestResolveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"timezone", Config{Timezone: "Mars/Olympus"}},
		{"style", Config{Style: "fancy"}},
		{"size", Config{Size: -1}},
		{"hand color", Config{HandColor: "blue"}},
		{"tie break", Config{TieBreak: "coin_flip"}},
		{"unnamed session", Config{Sessions: []session.Session{{Start: "08:00", End: "10:00"}}}},
		{"duplicate session", Config{Sessions: []session.Session{
			{Name: "London", Start: "08:00", End: "10:00"},
			{Name: "London", Start: "11:00", End: "12:00"},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Resolve(); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}
