// Package event defines the state-change messages flowing from the device
// and display goroutines into the router.
package event

// Kind discriminates StateChange messages.
type Kind int

const (
	// FocusChanged reports a new focused window, resolved to its owning
	// process where possible.
	FocusChanged Kind = iota
	// ModifiersChanged reports a new raw modifier bitmask from the keyboard.
	ModifiersChanged
	// CrownTouched fires when a finger lands on the crown surface.
	CrownTouched
	// CrownReleased fires when the finger leaves the crown surface.
	CrownReleased
	// CrownClicked fires on a press-and-release without rotation in between.
	CrownClicked
	// CrownRotated reports crown rotation, continuous and detent-aligned.
	CrownRotated
)

func (k Kind) String() string {
	switch k {
	case FocusChanged:
		return "FocusChanged"
	case ModifiersChanged:
		return "ModifiersChanged"
	case CrownTouched:
		return "CrownTouched"
	case CrownReleased:
		return "CrownReleased"
	case CrownClicked:
		return "CrownClicked"
	case CrownRotated:
		return "CrownRotated"
	}
	return "Unknown"
}

// StateChange is one message on the router's inbound channel. Ordering is
// FIFO per producer only. Every crown gesture carries the raw modifier
// bitmask that was current when the frame was decoded.
type StateChange struct {
	Kind Kind

	// PID and Program identify the focused application for FocusChanged.
	// Program is the executable path and may be empty when resolution
	// partially failed.
	PID     uint32
	Program string

	// Modifiers is the raw keyboard modifier bitmask.
	Modifiers uint8

	// Rotation payload for CrownRotated. Amount is the continuous signed
	// rotation, NotchAmount the detent-aligned steps, Pressed whether the
	// crown was held down while turning.
	Amount      int16
	NotchAmount int16
	Pressed     bool
}
