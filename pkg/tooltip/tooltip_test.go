package tooltip

import "testing"

func TestOpenReplacesPrevious(t *testing.T) {
	var c Coordinator

	c.Open(KindSession, "London")
	c.Open(KindEvent, "nfp-2026-03")

	if c.IsActive(KindSession, "London") {
		t.Error("opening an event tooltip must close the session tooltip")
	}
	if !c.IsActive(KindEvent, "nfp-2026-03") {
		t.Error("event tooltip should be the single open tooltip")
	}

	kind, id, ok := c.Active()
	if !ok || kind != KindEvent || id != "nfp-2026-03" {
		t.Errorf("Active() = %v %q %v", kind, id, ok)
	}
}

func TestCloseRequiresKindMatch(t *testing.T) {
	var c Coordinator

	c.Open(KindEvent, "nfp-2026-03")
	c.Close(KindSession) // stale close from the session path
	if !c.IsActive(KindEvent, "nfp-2026-03") {
		t.Error("kind-mismatched close must be a no-op")
	}

	c.Close(KindEvent)
	if _, _, ok := c.Active(); ok {
		t.Error("matching close should hide the tooltip")
	}
}

func TestCloseWhenNothingOpen(t *testing.T) {
	var c Coordinator
	c.Close(KindSession) // must not panic or open anything
	if _, _, ok := c.Active(); ok {
		t.Error("nothing should be open")
	}
}

func TestCloseAll(t *testing.T) {
	var c Coordinator
	c.Open(KindSession, "London")
	c.CloseAll()
	if _, _, ok := c.Active(); ok {
		t.Error("CloseAll should hide any tooltip")
	}
}

func TestOnChangeFires(t *testing.T) {
	var c Coordinator
	changes := 0
	c.SetOnChange(func() { changes++ })

	c.Open(KindSession, "London")  // change 1
	c.Open(KindSession, "London")  // same tooltip, no change
	c.Open(KindSession, "NewYork") // change 2
	c.Close(KindEvent)             // mismatched, no change
	c.Close(KindSession)           // change 3
	c.CloseAll()                   // already closed, no change

	if changes != 3 {
		t.Errorf("onChange fired %d times, want 3", changes)
	}
}
