// Package notify delivers best-effort desktop notifications over D-Bus.
package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	method     = "org.freedesktop.Notifications.Notify"

	expireMs = 5000
)

// Send shows a transient notification on the session bus. Notifications
// are advisory; every failure is swallowed so a headless or notification-
// less session never disturbs the daemon.
func Send(summary, body string) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return
	}
	obj := conn.Object(busName, objectPath)
	_ = obj.Call(method, 0,
		"crown-controller", // app name
		uint32(0),          // replaces id
		"",                 // icon
		summary,
		body,
		[]string{},               // actions
		map[string]dbus.Variant{}, // hints
		int32(expireMs),
	).Err
}
