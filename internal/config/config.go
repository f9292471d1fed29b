// Package config maps applications to crown gesture actions.
//
// A configuration file is a map from program name (or "global") to an
// application mapping; each application mapping holds per-modifier
// button mappings, and each button mapping holds the operation lists
// for the seven crown gestures plus an optional ratchet-mode override.
package config

// RatchetMode selects between detent-aligned and continuous rotation.
type RatchetMode int

const (
	ModeRatcheted RatchetMode = iota
	ModeFree
)

func (m RatchetMode) String() string {
	if m == ModeFree {
		return "Free"
	}
	return "Ratcheted"
}

// Modifier is the held keyboard modifier a mapping is keyed on. The
// crown reports a raw bitmask; only one modifier is honored at a time.
type Modifier int

const (
	ModNone Modifier = iota
	ModShift
	ModAlt
	ModCtrl
)

func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "Shift"
	case ModAlt:
		return "Alt"
	case ModCtrl:
		return "Ctrl"
	}
	return "None"
}

// ModifierFromMask reduces the keyboard's modifier bitmask to a single
// mapping key. Alt wins over Shift, Shift over Ctrl. Both left and
// right variants of each modifier count.
func ModifierFromMask(mask uint8) Modifier {
	switch {
	case mask&0x44 != 0:
		return ModAlt
	case mask&0x22 != 0:
		return ModShift
	case mask&0x11 != 0:
		return ModCtrl
	}
	return ModNone
}

// Gesture is one of the crown interactions an operation list can be
// bound to.
type Gesture int

const (
	GestureTouch Gesture = iota
	GestureRelease
	GestureClick
	GestureLeft
	GestureRight
	GestureLeftPressed
	GestureRightPressed

	gestureCount
)

func (g Gesture) String() string {
	switch g {
	case GestureTouch:
		return "touch"
	case GestureRelease:
		return "release"
	case GestureClick:
		return "click"
	case GestureLeft:
		return "left"
	case GestureRight:
		return "right"
	case GestureLeftPressed:
		return "left_pressed"
	case GestureRightPressed:
		return "right_pressed"
	}
	return "unknown"
}

// OpKind discriminates the operation variants.
type OpKind int

const (
	OpKeyPress OpKind = iota
	OpExecute
)

// Operation is one action bound to a gesture: a synthetic keystroke
// (keysym plus a modifier bitmask, resolved at load time) or a command
// line to spawn.
type Operation struct {
	Kind OpKind

	Keysym    uint32
	Modifiers uint8

	Command string
}

// ButtonMapping binds the crown gestures for one modifier key.
type ButtonMapping struct {
	// Mode, when set, overrides the application's ratchet mode while
	// this modifier is held.
	Mode *RatchetMode
	Ops  [gestureCount][]Operation
}

// AppMapping is the configuration for one program (or the global
// fallback).
type AppMapping struct {
	Mode    RatchetMode
	Buttons map[Modifier]*ButtonMapping
}

// Config is a parsed configuration file.
type Config struct {
	Apps map[string]*AppMapping

	// byBase indexes applications by the final path segment of their
	// key, so a binary installed at a different path still matches an
	// entry keyed by full path. Ambiguous basenames resolve to the
	// lexicographically first key.
	byBase map[string]*AppMapping
}
