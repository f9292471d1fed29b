package keysym

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		name string
		want uint32
	}{
		{"t", 0x0074},
		{"return", 0xff0d},
		{"page_up", 0xff55},
		{"prior", 0xff55}, // alias from a distinct header define
		{"next", 0xff56},
		{"f12", 0xffc9},
		{"audioraisevolume", 0x1008ff13},
	}
	for _, tc := range cases {
		got, ok := Lookup(tc.name)
		if !ok {
			t.Fatalf("%q not found", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%q = %#x, want %#x", tc.name, got, tc.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("nosuchkey"); ok {
		t.Fatal("nosuchkey resolved")
	}
	// Lookups are exact; callers lowercase beforehand.
	if _, ok := Lookup("Page_Up"); ok {
		t.Fatal("mixed case resolved")
	}
}
