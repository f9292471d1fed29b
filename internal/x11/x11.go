// Package x11 connects the daemon to the X server: it reports focus
// changes of the active window and injects synthetic key events through
// the XTEST extension.
//
// All X traffic happens on one goroutine. A pump goroutine moves server
// events onto a channel so the loop can select between them and key
// commands without blocking on either.
package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"

	"github.com/prefiks/crown-controller/internal/event"
	"github.com/prefiks/crown-controller/internal/logging"
)

type keyCommand struct {
	keysym    uint32
	modifiers uint8
}

type modKeycode struct {
	code xproto.Keycode
	mask uint8
}

type keyAction struct {
	code  xproto.Keycode
	event byte
}

// Bridge owns the X connection.
type Bridge struct {
	conn     *xgb.Conn
	out      chan<- event.StateChange
	commands chan keyCommand
	log      *logging.Logger

	keymap      map[uint32]xproto.Keycode
	modKeycodes []modKeycode

	atomActiveWindow xproto.Atom
	atomWMPid        xproto.Atom
}

// New connects to the display, snapshots the keyboard and modifier
// mappings, subscribes to property changes on the root window and
// starts the event loop. Without a display there is nothing this
// daemon can do, so any failure here is returned for main to treat as
// fatal.
func New(out chan<- event.StateChange, log *logging.Logger) (*Bridge, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: xtest: %w", err)
	}

	b := &Bridge{
		conn:     conn,
		out:      out,
		commands: make(chan keyCommand, 16),
		log:      log.WithComponent("x11"),
	}

	setup := xproto.Setup(conn)
	if err := b.snapshotKeymap(setup); err != nil {
		conn.Close()
		return nil, err
	}

	b.atomActiveWindow, err = internAtom(conn, "_NET_ACTIVE_WINDOW")
	if err == nil {
		b.atomWMPid, err = internAtom(conn, "_NET_WM_PID")
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: intern atoms: %w", err)
	}

	root := setup.DefaultScreen(conn).Root
	xproto.ChangeWindowAttributes(conn, root,
		xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange})

	xevents := make(chan xgb.Event, 16)
	go b.pump(xevents)
	go b.run(xevents)
	return b, nil
}

// SendKey asks the X loop to inject one synthetic keystroke.
func (b *Bridge) SendKey(keysym uint32, modifiers uint8) {
	b.commands <- keyCommand{keysym: keysym, modifiers: modifiers}
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}

// snapshotKeymap loads the keysym table and the keycodes backing each
// modifier bit. Both are read once at startup.
func (b *Bridge) snapshotKeymap(setup *xproto.SetupInfo) error {
	count := byte(setup.MaxKeycode - setup.MinKeycode)
	reply, err := xproto.GetKeyboardMapping(b.conn, setup.MinKeycode, count).Reply()
	if err != nil {
		return fmt.Errorf("x11: keyboard mapping: %w", err)
	}
	per := int(reply.KeysymsPerKeycode)
	b.keymap = make(map[uint32]xproto.Keycode)
	for i, ks := range reply.Keysyms {
		if ks == 0 {
			continue
		}
		b.keymap[uint32(ks)] = setup.MinKeycode + xproto.Keycode(i/per)
	}

	modReply, err := xproto.GetModifierMapping(b.conn).Reply()
	if err != nil {
		// No modifier map just means synthetic keys go out unmodified.
		b.log.Warn("modifier mapping unavailable", "error", err)
		return nil
	}
	per = int(modReply.KeycodesPerModifier)
	for i, code := range modReply.Keycodes {
		if code == 0 {
			continue
		}
		b.modKeycodes = append(b.modKeycodes, modKeycode{code: code, mask: uint8(1) << (i / per)})
	}
	return nil
}

// pump blocks on the X connection and forwards events. WaitForEvent
// returning a double nil means the connection is gone.
func (b *Bridge) pump(xevents chan<- xgb.Event) {
	for {
		ev, err := b.conn.WaitForEvent()
		if ev == nil && err == nil {
			close(xevents)
			return
		}
		if err != nil {
			b.log.Debug("x event error", "error", err)
			continue
		}
		xevents <- ev
	}
}

func (b *Bridge) run(xevents <-chan xgb.Event) {
	for {
		select {
		case cmd := <-b.commands:
			b.sendKey(cmd.keysym, cmd.modifiers)
		case ev, ok := <-xevents:
			if !ok {
				b.log.Error("x connection closed")
				return
			}
			if prop, isProp := ev.(xproto.PropertyNotifyEvent); isProp {
				b.propertyChanged(prop)
			}
		}
	}
}

// propertyChanged reports the newly focused program when the root
// window's active-window property flips. A window without a PID
// property still produces a focus change, with an empty program.
func (b *Bridge) propertyChanged(prop xproto.PropertyNotifyEvent) {
	if prop.Atom != b.atomActiveWindow {
		return
	}
	win, ok := b.windowProperty(prop.Window, b.atomActiveWindow, xproto.AtomWindow)
	if !ok {
		return
	}
	pid, ok := b.windowProperty(xproto.Window(win), b.atomWMPid, xproto.AtomCardinal)
	if !ok {
		b.out <- event.StateChange{Kind: event.FocusChanged}
		return
	}
	program := ""
	if path, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid)); err == nil {
		program = path
	}
	b.out <- event.StateChange{Kind: event.FocusChanged, PID: pid, Program: program}
}

func (b *Bridge) windowProperty(win xproto.Window, prop, typ xproto.Atom) (uint32, bool) {
	reply, err := xproto.GetProperty(b.conn, false, win, prop, typ, 0, 1).Reply()
	if err != nil || len(reply.Value) < 4 {
		return 0, false
	}
	return xgb.Get32(reply.Value), true
}

// sendKey injects press and release of the keycode backing the keysym,
// arranging the requested modifiers around it and replaying the
// recorded actions afterwards. A keysym with no keycode in the current
// layout is dropped.
func (b *Bridge) sendKey(keysym uint32, modifiers uint8) {
	code, ok := b.keymap[keysym]
	if !ok {
		b.log.Debug("keysym not in layout", "keysym", fmt.Sprintf("%#x", keysym))
		return
	}
	held := func(xproto.Keycode) bool { return false }
	if reply, err := xproto.QueryKeymap(b.conn).Reply(); err == nil {
		held = func(kc xproto.Keycode) bool {
			return reply.Keys[kc/8]&(1<<(kc&7)) != 0
		}
	}
	press, restore := planModifiers(modifiers, held, b.modKeycodes)
	b.log.Debug("send key", "keycode", code, "modifiers", modifiers)
	for _, kc := range press {
		b.fake(xproto.KeyPress, kc)
	}
	b.fake(xproto.KeyPress, code)
	b.fake(xproto.KeyRelease, code)
	for _, a := range restore {
		b.fake(a.event, a.code)
	}
}

// planModifiers compares the requested modifier mask with the keys
// currently held. Requested modifiers nobody holds get pressed first
// and released afterwards; held modifier keys outside the request get a
// press replayed afterwards so their state survives the synthetic key.
func planModifiers(requested uint8, held func(xproto.Keycode) bool, mods []modKeycode) (press []xproto.Keycode, restore []keyAction) {
	var heldMask uint8
	for _, m := range mods {
		if held(m.code) {
			if m.mask&requested == 0 {
				restore = append(restore, keyAction{code: m.code, event: xproto.KeyPress})
			}
			heldMask |= m.mask
		}
	}
	toPress := requested &^ heldMask
	for _, m := range mods {
		if m.mask&toPress != 0 {
			press = append(press, m.code)
			restore = append(restore, keyAction{code: m.code, event: xproto.KeyRelease})
			toPress &^= m.mask
		}
	}
	return press, restore
}

func (b *Bridge) fake(typ byte, code xproto.Keycode) {
	xtest.FakeInput(b.conn, typ, byte(code), xproto.TimeCurrentTime, xproto.WindowNone, 0, 0, 0)
}
