package hid

import (
	"github.com/prefiks/crown-controller/internal/event"
)

// session holds the decoder-owned device state: the last commanded ratchet
// mode, the cached modifier bitmask, and whether the current press has
// seen a significant rotation (which suppresses the click on release).
// It is only ever touched from the device loop goroutine.
type session struct {
	ratchet     bool
	modifiers   uint8
	hadRotation bool
}

func newSession() session {
	return session{ratchet: true}
}

// handle steps the state machine for one decoded frame. It returns the
// messages to forward to the router and whether the last commanded
// ratchet mode must be re-asserted on the device.
//
// A rotation is significant when ratchet mode is off and the continuous
// amount is nonzero, or when the detent amount is nonzero. Only
// significant rotations are forwarded; an insignificant one does not
// suppress the click either.
func (s *session) handle(ev Event) (out []event.StateChange, reassert bool) {
	switch ev.Type {
	case Connected:
		// The device reverts to ratcheted mode on reconnect.
		return nil, true
	case Modifiers:
		s.modifiers = ev.Mask
		out = append(out, event.StateChange{Kind: event.ModifiersChanged, Modifiers: s.modifiers})
	case Touch:
		out = append(out, event.StateChange{Kind: event.CrownTouched, Modifiers: s.modifiers})
	case Leave:
		out = append(out, event.StateChange{Kind: event.CrownReleased, Modifiers: s.modifiers})
	case Press:
		s.hadRotation = false
	case Release:
		if !s.hadRotation {
			out = append(out, event.StateChange{Kind: event.CrownClicked, Modifiers: s.modifiers})
		}
	case Rotate:
		if (!s.ratchet && ev.Amount != 0) || ev.NotchAmount != 0 {
			s.hadRotation = true
		}
		if ev.Amount != 0 && (ev.NotchAmount != 0 || !s.ratchet) {
			out = append(out, event.StateChange{
				Kind:        event.CrownRotated,
				Modifiers:   s.modifiers,
				Amount:      ev.Amount,
				NotchAmount: ev.NotchAmount,
				Pressed:     ev.Pressed,
			})
		}
	}
	return out, false
}
