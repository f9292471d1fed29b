package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prefiks/crown-controller/internal/logging"
	"github.com/prefiks/crown-controller/internal/notify"
)

// File tracks a configuration file on disk and resolves gesture lookups
// against it. The file is re-read lazily: every lookup may check the
// modification time, but at most once per second, so a busy crown never
// hammers the filesystem.
//
// File is not safe for concurrent use; the router owns it.
type File struct {
	path string
	log  *logging.Logger

	mtime     time.Time
	lastCheck time.Time

	conf      *Config
	global    *AppMapping
	active    *AppMapping
	activeApp string
}

// DefaultPath returns the per-user configuration file location,
// $XDG_CONFIG_HOME/crown-controller/config.yaml on most systems.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crown-controller", "config.yaml"), nil
}

// Open sets up a resolver for the given path and attempts an initial
// load. A missing or broken file is not an error; the resolver simply
// has no mappings until the file appears.
func Open(path string, log *logging.Logger) *File {
	f := &File{
		path:  path,
		log:   log.WithComponent("config"),
		mtime: time.Now(),
	}
	f.maybeReload()
	return f
}

// SelectApp records the currently focused program. Lookups resolve
// against its mapping first, the global one second.
func (f *File) SelectApp(app string) {
	f.activeApp = app
	f.maybeReload()
	f.updateActive()
}

// ActionsFor returns the operations bound to the gesture under the
// given modifier, preferring the active application's mapping and
// falling back to the global one. An empty list in the application
// mapping does not shadow the global binding.
func (f *File) ActionsFor(mod Modifier, g Gesture) []Operation {
	f.maybeReload()
	if ops := actionsFrom(f.active, mod, g); ops != nil {
		return ops
	}
	return actionsFrom(f.global, mod, g)
}

// RatchetModeFor resolves the crown mode for the given modifier: the
// active application's button override, then its application default,
// then the same pair from the global mapping, then Ratcheted.
func (f *File) RatchetModeFor(mod Modifier) RatchetMode {
	f.maybeReload()
	if m, ok := modeFrom(f.active, mod); ok {
		return m
	}
	if m, ok := modeFrom(f.global, mod); ok {
		return m
	}
	return ModeRatcheted
}

func actionsFrom(app *AppMapping, mod Modifier, g Gesture) []Operation {
	if app == nil {
		return nil
	}
	btn := app.Buttons[mod]
	if btn == nil || len(btn.Ops[g]) == 0 {
		return nil
	}
	return btn.Ops[g]
}

func modeFrom(app *AppMapping, mod Modifier) (RatchetMode, bool) {
	if app == nil {
		return ModeRatcheted, false
	}
	btn := app.Buttons[mod]
	if btn == nil {
		return ModeRatcheted, false
	}
	if btn.Mode != nil {
		return *btn.Mode, true
	}
	return app.Mode, true
}

// maybeReload re-reads the file when its mtime changed, rate limited to
// one stat per second. A parse failure drops all mappings until the
// file is fixed; a read failure keeps the previous ones. A failed stat
// stores the current time as mtime so the next check retries.
func (f *File) maybeReload() {
	if f.path == "" || time.Since(f.lastCheck) <= time.Second {
		return
	}
	mtime := time.Now()
	if fi, err := os.Stat(f.path); err == nil {
		mtime = fi.ModTime()
	}
	if !mtime.Equal(f.mtime) {
		if data, err := os.ReadFile(f.path); err != nil {
			f.log.Warn("cannot read config file", "path", f.path, "error", err)
		} else if conf, err := Parse(data, filepath.Ext(f.path)); err != nil {
			f.log.Error("cannot load config", "path", f.path, "error", err)
			notify.Send("crown-controller", fmt.Sprintf("Cannot load %s: %v", f.path, err))
			f.conf = nil
			f.global = nil
			f.active = nil
		} else {
			f.log.Info("config loaded", "path", f.path, "apps", len(conf.Apps))
			f.conf = conf
			f.global = conf.Apps["global"]
			f.updateActive()
		}
		f.mtime = mtime
	}
	f.lastCheck = time.Now()
}

// updateActive re-resolves the active application mapping: the full
// program path first, its basename as a literal key second, then any
// key whose own final path segment matches the basename. An identifier
// that matches nothing clears the active mapping, so a focus change
// whose process resolution failed falls back to global-only.
func (f *File) updateActive() {
	if f.conf == nil {
		return
	}
	app := f.conf.Apps[f.activeApp]
	base := f.activeApp
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if app == nil {
		app = f.conf.Apps[base]
	}
	if app == nil {
		app = f.conf.byBase[base]
	}
	f.active = app
}
