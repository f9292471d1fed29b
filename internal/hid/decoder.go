package hid

// EventType classifies a decoded crown frame.
type EventType int

const (
	// Unknown frames are dropped.
	Unknown EventType = iota
	// Connected fires when the device (re)announces itself. The crown
	// forgets its ratchet mode across reconnects, so the last commanded
	// mode must be re-asserted.
	Connected
	// Touch and Leave track a finger on the crown surface.
	Touch
	Leave
	// Press and Release track the crown being pushed down.
	Press
	Release
	// Rotate carries continuous and detent-aligned rotation amounts.
	Rotate
	// Modifiers reports the keyboard's current modifier bitmask.
	Modifiers
)

func (t EventType) String() string {
	switch t {
	case Connected:
		return "Connected"
	case Touch:
		return "Touch"
	case Leave:
		return "Leave"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Rotate:
		return "Rotate"
	case Modifiers:
		return "Modifiers"
	}
	return "Unknown"
}

// Event is one decoded frame from the crown's hidraw node.
type Event struct {
	Type EventType

	// Rotate payload. Amount is the continuous rotation as a signed 8-bit
	// delta widened to 16 bits, NotchAmount the detent steps, Pressed
	// whether the crown was held down while turning.
	Amount      int16
	NotchAmount int16
	Pressed     bool

	// Modifiers payload: the raw bitmask.
	Mask uint8
}

// DecodeFrame classifies one raw frame. The crown speaks an undocumented
// HID++ dialect; patterns below were captured from a Craft keyboard.
// Order matters: press/release frames share the rotation header with a
// zeroed payload.
func DecodeFrame(data []byte) Event {
	rotHeader := len(data) >= 9 && data[0] == 0x11 && data[2] == 0x12 && data[3] == 0x00
	zeroPayload := rotHeader && data[4] == 0x00 && data[5] == 0x00 && data[6] == 0x00

	switch {
	case rotHeader && len(data) >= 11 && data[4] != 0x00:
		return Event{
			Type:        Rotate,
			Amount:      int16(int8(data[5])),
			NotchAmount: int16(int8(data[6])),
			Pressed:     data[10] != 0x00,
		}
	case zeroPayload && len(data) >= 11 && data[10] == 0x01:
		return Event{Type: Press}
	case zeroPayload && len(data) >= 11 && data[10] == 0x05:
		return Event{Type: Release}
	case zeroPayload && data[8] == 0x01:
		return Event{Type: Touch}
	case zeroPayload && data[8] == 0x03:
		return Event{Type: Leave}
	case len(data) >= 4 && data[0] == 0x20 && data[2] == 0x01:
		return Event{Type: Modifiers, Mask: data[3]}
	case len(data) >= 2 && data[0] == 0x01:
		return Event{Type: Modifiers, Mask: data[1]}
	case len(data) >= 3 && data[0] == 0x10 && data[2] == 0x41:
		return Event{Type: Connected}
	}
	return Event{Type: Unknown}
}
