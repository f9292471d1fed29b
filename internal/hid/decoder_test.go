package hid

import "testing"

func frame(bytes ...byte) []byte { return bytes }

func TestDecodeRotate(t *testing.T) {
	cases := []struct {
		name    string
		data    []byte
		amount  int16
		notch   int16
		pressed bool
	}{
		{
			name:   "free spin right",
			data:   frame(0x11, 0x01, 0x12, 0x00, 0x01, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00),
			amount: 3,
		},
		{
			name:   "free spin left",
			data:   frame(0x11, 0x01, 0x12, 0x00, 0x01, 0xfd, 0x00, 0x00, 0x00, 0x00, 0x00),
			amount: -3,
		},
		{
			name:   "detent step",
			data:   frame(0x11, 0x01, 0x12, 0x00, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00),
			amount: 1,
			notch:  1,
		},
		{
			name:    "pressed rotation",
			data:    frame(0x11, 0x01, 0x12, 0x00, 0x01, 0xff, 0xff, 0x00, 0x00, 0x00, 0x01),
			amount:  -1,
			notch:   -1,
			pressed: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := DecodeFrame(tc.data)
			if ev.Type != Rotate {
				t.Fatalf("got %v, want Rotate", ev.Type)
			}
			if ev.Amount != tc.amount || ev.NotchAmount != tc.notch || ev.Pressed != tc.pressed {
				t.Fatalf("got amount=%d notch=%d pressed=%v, want %d %d %v",
					ev.Amount, ev.NotchAmount, ev.Pressed, tc.amount, tc.notch, tc.pressed)
			}
		})
	}
}

func TestDecodeButtonsAndTouch(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want EventType
	}{
		{"press", frame(0x11, 0x01, 0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01), Press},
		{"release", frame(0x11, 0x01, 0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05), Release},
		{"touch", frame(0x11, 0x01, 0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01), Touch},
		{"leave", frame(0x11, 0x01, 0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03), Leave},
		{"connected", frame(0x10, 0x01, 0x41), Connected},
		{"short garbage", frame(0x11), Unknown},
		{"empty", nil, Unknown},
		{"wrong header", frame(0x12, 0x01, 0x12, 0x00, 0x01, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00), Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if ev := DecodeFrame(tc.data); ev.Type != tc.want {
				t.Fatalf("got %v, want %v", ev.Type, tc.want)
			}
		})
	}
}

// Touch frames are 9 bytes in the wild but the press pattern shares
// their header; a long frame with both markers must decode as press.
func TestDecodePressWinsOverTouch(t *testing.T) {
	data := frame(0x11, 0x01, 0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01)
	if ev := DecodeFrame(data); ev.Type != Press {
		t.Fatalf("got %v, want Press", ev.Type)
	}
}

func TestDecodeModifiers(t *testing.T) {
	long := frame(0x20, 0x00, 0x01, 0x22)
	if ev := DecodeFrame(long); ev.Type != Modifiers || ev.Mask != 0x22 {
		t.Fatalf("long form: got %v mask %#x", ev.Type, ev.Mask)
	}
	short := frame(0x01, 0x44)
	if ev := DecodeFrame(short); ev.Type != Modifiers || ev.Mask != 0x44 {
		t.Fatalf("short form: got %v mask %#x", ev.Type, ev.Mask)
	}
}
