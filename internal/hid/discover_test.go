package hid

import "testing"

func TestParseHIDID(t *testing.T) {
	v, p, ok := parseHIDID("0003:0000046D:00004066")
	if !ok || v != VendorID || p != ProductID {
		t.Fatalf("got %#x %#x %v", v, p, ok)
	}

	for _, bad := range []string{"", "0003", "0003:046d", "0003:xxxx:4066", "a:b:c:d"} {
		if _, _, ok := parseHIDID(bad); ok {
			t.Fatalf("%q parsed", bad)
		}
	}
}
