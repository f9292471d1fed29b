package hid

import (
	"strconv"
	"strings"

	"github.com/jochenvg/go-udev"
)

// Logitech Craft keyboard. The crown speaks on the hidraw node of the
// vendor-specific interface.
const (
	VendorID  = 0x046d
	ProductID = 0x4066
)

// Discover returns the devnode of the hidraw device whose HID parent
// carries the given vendor/product pair, or "" when no such device is
// present.
func Discover(vendor, product uint32) (string, error) {
	u := udev.Udev{}
	e := u.NewEnumerate()
	if err := e.AddMatchSubsystem("hidraw"); err != nil {
		return "", err
	}
	devices, err := e.Devices()
	if err != nil {
		return "", err
	}
	for _, dev := range devices {
		parent := dev.ParentWithSubsystemDevtype("hid", "")
		if parent == nil {
			continue
		}
		v, p, ok := parseHIDID(parent.PropertyValue("HID_ID"))
		if ok && v == vendor && p == product {
			return dev.Devnode(), nil
		}
	}
	return "", nil
}

// parseHIDID splits a HID_ID property value ("0003:0000046D:00004066")
// into its vendor and product parts.
func parseHIDID(id string) (vendor, product uint32, ok bool) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	p, err := strconv.ParseUint(parts[2], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(v), uint32(p), true
}
