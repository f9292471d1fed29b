// Package router is the daemon's single event consumer: it folds crown
// and focus messages into the held-modifier and ratchet-mode state,
// resolves gestures against the configuration and runs the bound
// operations.
package router

import (
	"os/exec"
	"strings"

	"github.com/prefiks/crown-controller/internal/config"
	"github.com/prefiks/crown-controller/internal/event"
	"github.com/prefiks/crown-controller/internal/logging"
)

// KeySender injects synthetic keystrokes.
type KeySender interface {
	SendKey(keysym uint32, modifiers uint8)
}

// ModeSwitcher flips the crown between ratcheted and free rotation.
type ModeSwitcher interface {
	EnableRatchet()
	DisableRatchet()
}

// Launcher starts an external command line.
type Launcher func(command string) error

// Router holds the dispatch state. It is driven from a single
// goroutine via Run.
type Router struct {
	conf   *config.File
	keys   KeySender
	crown  ModeSwitcher
	launch Launcher
	log    *logging.Logger

	mode config.RatchetMode
	mod  config.Modifier
}

// New wires a router. A nil launcher defaults to Spawn.
func New(conf *config.File, keys KeySender, crown ModeSwitcher, launch Launcher, log *logging.Logger) *Router {
	if launch == nil {
		launch = Spawn
	}
	return &Router{
		conf:   conf,
		keys:   keys,
		crown:  crown,
		launch: launch,
		log:    log.WithComponent("router"),
		mode:   config.ModeRatcheted,
		mod:    config.ModNone,
	}
}

// Run consumes the event channel until it is closed.
func (r *Router) Run(events <-chan event.StateChange) {
	for ev := range events {
		r.Handle(ev)
	}
}

// Handle processes one state change.
func (r *Router) Handle(ev event.StateChange) {
	r.log.Debug("processing", "event", ev.Kind.String(),
		"modifiers", ev.Modifiers, "amount", ev.Amount, "notch", ev.NotchAmount)
	switch ev.Kind {
	case event.FocusChanged:
		r.conf.SelectApp(ev.Program)
		r.applyMode()
	case event.ModifiersChanged:
		mod := config.ModifierFromMask(ev.Modifiers)
		if mod != r.mod {
			r.mod = mod
			r.applyMode()
		}
	case event.CrownTouched:
		r.dispatch(ev.Modifiers, config.GestureTouch)
	case event.CrownReleased:
		r.dispatch(ev.Modifiers, config.GestureRelease)
	case event.CrownClicked:
		r.dispatch(ev.Modifiers, config.GestureClick)
	case event.CrownRotated:
		g, ok := rotateGesture(ev.Amount, ev.Pressed)
		if !ok {
			return
		}
		// In ratcheted mode only detent steps count, whatever slipped
		// through upstream.
		if r.mode == config.ModeRatcheted && ev.NotchAmount == 0 {
			return
		}
		r.dispatch(ev.Modifiers, g)
	}
}

// applyMode re-resolves the ratchet mode for the current app and
// modifier and pushes it to the crown when it changed.
func (r *Router) applyMode() {
	mode := r.conf.RatchetModeFor(r.mod)
	if mode == r.mode {
		return
	}
	r.mode = mode
	r.log.Debug("ratchet mode change", "mode", mode.String())
	if mode == config.ModeRatcheted {
		r.crown.EnableRatchet()
	} else {
		r.crown.DisableRatchet()
	}
}

// rotateGesture picks the gesture for a rotation, by direction and
// whether the crown is held down. A zero amount maps to nothing.
func rotateGesture(amount int16, pressed bool) (config.Gesture, bool) {
	switch {
	case pressed && amount > 0:
		return config.GestureRightPressed, true
	case pressed && amount < 0:
		return config.GestureLeftPressed, true
	case amount > 0:
		return config.GestureRight, true
	case amount < 0:
		return config.GestureLeft, true
	}
	return 0, false
}

func (r *Router) dispatch(mask uint8, g config.Gesture) {
	mod := config.ModifierFromMask(mask)
	for _, op := range r.conf.ActionsFor(mod, g) {
		r.execute(op)
	}
}

func (r *Router) execute(op config.Operation) {
	switch op.Kind {
	case config.OpKeyPress:
		r.log.Debug("exec key", "keysym", op.Keysym, "modifiers", op.Modifiers)
		r.keys.SendKey(op.Keysym, op.Modifiers)
	case config.OpExecute:
		r.log.Debug("exec command", "command", op.Command)
		if err := r.launch(op.Command); err != nil {
			r.log.Warn("command failed to start", "command", op.Command, "error", err)
		}
	}
}

// Spawn starts a whitespace-split command line detached from the
// daemon. An empty command is a no-op.
func Spawn(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	cmd := exec.Command(fields[0], fields[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
