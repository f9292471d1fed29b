// Package hid drives the Craft keyboard's crown over its hidraw node.
//
// The device loop runs on its own goroutine and multiplexes the device
// fd with an eventfd used to wake it for mode-switch commands, so a
// blocked read never delays a ratchet toggle. Decoded gestures are
// forwarded as state changes on the channel given to New.
package hid

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/prefiks/crown-controller/internal/event"
	"github.com/prefiks/crown-controller/internal/logging"
)

// Crown mode-switch frames. The device acknowledges neither; it simply
// starts (or stops) snapping rotation to detents.
var (
	ratchetOn  = []byte{0x11, 0x03, 0x12, 0x21, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	ratchetOff = []byte{0x11, 0x03, 0x12, 0x2a, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
)

type command struct {
	ratchet bool
}

// Handler owns the device loop. Commands are delivered through a small
// channel paired with an eventfd write that unblocks the poll.
type Handler struct {
	out      chan<- event.StateChange
	commands chan command
	wakeFD   int
	log      *logging.Logger
}

// New starts the device loop. It fails only when the wake eventfd cannot
// be created. A missing or unopenable device is logged and the loop parks,
// so the rest of the daemon keeps running without crown input.
func New(out chan<- event.StateChange, log *logging.Logger) (*Handler, error) {
	wake, err := unix.Eventfd(0, unix.EFD_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("hid: eventfd: %w", err)
	}
	h := &Handler{
		out:      out,
		commands: make(chan command, 8),
		wakeFD:   wake,
		log:      log.WithComponent("hid"),
	}
	go h.run()
	return h, nil
}

// EnableRatchet switches the crown to detent-aligned rotation.
func (h *Handler) EnableRatchet() { h.send(command{ratchet: true}) }

// DisableRatchet switches the crown to continuous rotation.
func (h *Handler) DisableRatchet() { h.send(command{ratchet: false}) }

func (h *Handler) send(cmd command) {
	select {
	case h.commands <- cmd:
	default:
		// The loop is behind by 8 commands; the newest mode wins anyway
		// once it drains, so dropping is harmless.
		return
	}
	one := [8]byte{0: 1}
	unix.Write(h.wakeFD, one[:])
}

func (h *Handler) run() {
	path, err := Discover(VendorID, ProductID)
	if err != nil {
		h.log.Error("device discovery failed", "error", err)
	} else if path == "" {
		h.log.Error("no crown device found",
			"vendor", fmt.Sprintf("%04x", VendorID),
			"product", fmt.Sprintf("%04x", ProductID))
	}
	if err != nil || path == "" {
		select {}
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		h.log.Error("cannot open device", "path", path, "error", err)
		select {}
	}
	h.log.Info("crown device opened", "path", path)

	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		h.log.Error("epoll setup failed", "error", err)
		select {}
	}
	for _, f := range []int{fd, h.wakeFD} {
		ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(f)}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, f, &ev); err != nil {
			h.log.Error("epoll registration failed", "fd", f, "error", err)
			select {}
		}
	}

	sess := newSession()
	h.switchRatchet(fd, sess.ratchet)

	events := make([]unix.EpollEvent, 4)
	for {
		n, err := unix.EpollWait(epfd, events, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			h.log.Error("epoll wait failed", "error", err)
			select {}
		}
		for _, ep := range events[:n] {
			switch int(ep.Fd) {
			case fd:
				h.drainDevice(fd, &sess)
			case h.wakeFD:
				h.drainWake(fd, &sess)
			}
		}
	}
}

// drainDevice reads frames until the device would block, pushing decoded
// gestures downstream.
func (h *Handler) drainDevice(fd int, sess *session) {
	buf := make([]byte, 64)
	for {
		n, err := unix.Read(fd, buf)
		if err == unix.EAGAIN {
			return
		}
		if err != nil {
			h.log.Error("device read failed", "error", err)
			select {}
		}
		if n <= 0 {
			return
		}
		ev := DecodeFrame(buf[:n])
		h.log.Debug("frame", "type", ev.Type.String(),
			"amount", ev.Amount, "notch", ev.NotchAmount)
		msgs, reassert := sess.handle(ev)
		if reassert {
			h.switchRatchet(fd, sess.ratchet)
		}
		for _, msg := range msgs {
			h.out <- msg
		}
	}
}

// drainWake consumes the eventfd and applies any queued mode commands.
func (h *Handler) drainWake(fd int, sess *session) {
	var buf [8]byte
	unix.Read(h.wakeFD, buf[:])
	for {
		select {
		case cmd := <-h.commands:
			if cmd.ratchet != sess.ratchet {
				sess.ratchet = cmd.ratchet
				h.switchRatchet(fd, sess.ratchet)
			}
		default:
			return
		}
	}
}

func (h *Handler) switchRatchet(fd int, on bool) {
	frame := ratchetOff
	if on {
		frame = ratchetOn
	}
	if _, err := unix.Write(fd, frame); err != nil {
		h.log.Error("mode switch write failed", "ratchet", on, "error", err)
	}
}
