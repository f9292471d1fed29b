// Package keysym maps key names from the configuration file to X11
// key-symbol codes.
//
// Names follow the X header convention with the XK_/XF86XK_ prefix
// stripped and the rest lowercased, so "Page_Up" becomes "page_up" and
// "XF86AudioMute" becomes "audiomute". The table is regenerated from the
// system headers by tools/keysym-gen.
package keysym

//go:generate go run github.com/prefiks/crown-controller/tools/keysym-gen -o table.go

// Lookup resolves a lowercase key name to its key-symbol code.
func Lookup(name string) (uint32, bool) {
	sym, ok := table[name]
	return sym, ok
}
