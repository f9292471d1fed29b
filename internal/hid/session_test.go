package hid

import (
	"testing"

	"github.com/prefiks/crown-controller/internal/event"
)

func TestSessionClickSuppression(t *testing.T) {
	s := newSession()

	// Plain press and release clicks.
	out, _ := s.handle(Event{Type: Press})
	if len(out) != 0 {
		t.Fatalf("press emitted %v", out)
	}
	out, _ = s.handle(Event{Type: Release})
	if len(out) != 1 || out[0].Kind != event.CrownClicked {
		t.Fatalf("release emitted %v, want CrownClicked", out)
	}

	// A detent rotation between press and release swallows the click.
	s.handle(Event{Type: Press})
	s.handle(Event{Type: Rotate, Amount: 1, NotchAmount: 1})
	out, _ = s.handle(Event{Type: Release})
	if len(out) != 0 {
		t.Fatalf("release after rotation emitted %v", out)
	}

	// In ratcheted mode a detent-free wiggle is not a rotation.
	s.handle(Event{Type: Press})
	s.handle(Event{Type: Rotate, Amount: 1, NotchAmount: 0})
	out, _ = s.handle(Event{Type: Release})
	if len(out) != 1 || out[0].Kind != event.CrownClicked {
		t.Fatalf("release after wiggle emitted %v, want CrownClicked", out)
	}
}

func TestSessionRotationForwarding(t *testing.T) {
	s := newSession()

	// Ratcheted: only detent steps go out.
	out, _ := s.handle(Event{Type: Rotate, Amount: 2, NotchAmount: 0})
	if len(out) != 0 {
		t.Fatalf("ratcheted wiggle forwarded %v", out)
	}
	out, _ = s.handle(Event{Type: Rotate, Amount: 2, NotchAmount: 1})
	if len(out) != 1 || out[0].Kind != event.CrownRotated {
		t.Fatalf("detent step not forwarded: %v", out)
	}

	// Free: every nonzero amount goes out.
	s.ratchet = false
	out, _ = s.handle(Event{Type: Rotate, Amount: -1, NotchAmount: 0, Pressed: true})
	if len(out) != 1 {
		t.Fatalf("free rotation not forwarded: %v", out)
	}
	if out[0].Amount != -1 || !out[0].Pressed {
		t.Fatalf("rotation payload mangled: %+v", out[0])
	}

	// Zero amount never goes out, detent or not.
	out, _ = s.handle(Event{Type: Rotate, Amount: 0, NotchAmount: 1})
	if len(out) != 0 {
		t.Fatalf("zero amount forwarded %v", out)
	}
}

func TestSessionModifiers(t *testing.T) {
	s := newSession()
	out, _ := s.handle(Event{Type: Modifiers, Mask: 0x22})
	if len(out) != 1 || out[0].Kind != event.ModifiersChanged || out[0].Modifiers != 0x22 {
		t.Fatalf("modifiers frame emitted %v", out)
	}

	// The cached mask rides along on every gesture.
	out, _ = s.handle(Event{Type: Touch})
	if len(out) != 1 || out[0].Kind != event.CrownTouched || out[0].Modifiers != 0x22 {
		t.Fatalf("touch emitted %v", out)
	}
	out, _ = s.handle(Event{Type: Leave})
	if len(out) != 1 || out[0].Kind != event.CrownReleased || out[0].Modifiers != 0x22 {
		t.Fatalf("leave emitted %v", out)
	}
}

func TestSessionReassertOnReconnect(t *testing.T) {
	s := newSession()
	out, reassert := s.handle(Event{Type: Connected})
	if !reassert {
		t.Fatal("reconnect did not request mode reassert")
	}
	if len(out) != 0 {
		t.Fatalf("reconnect emitted %v", out)
	}
	if _, reassert = s.handle(Event{Type: Touch}); reassert {
		t.Fatal("touch requested mode reassert")
	}
}
