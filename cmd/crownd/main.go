// crownd - Logitech Craft crown daemon for X11
//
// crownd listens on the Craft keyboard's hidraw node, tracks the
// focused X11 window and turns crown gestures into synthetic key
// events or spawned commands according to a per-application
// configuration file.
//
//	crownd                Run with the default configuration file
//	crownd -d             Run with verbose tracing to stdout
//	crownd --config PATH  Use an alternative configuration file
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/prefiks/crown-controller/internal/config"
	"github.com/prefiks/crown-controller/internal/event"
	"github.com/prefiks/crown-controller/internal/hid"
	"github.com/prefiks/crown-controller/internal/logging"
	"github.com/prefiks/crown-controller/internal/router"
	"github.com/prefiks/crown-controller/internal/x11"
)

const version = "0.2.0"

func main() {
	var (
		debug       bool
		configPath  string
		logFormat   string
		showVersion bool
	)
	flag.BoolVar(&debug, "d", false, "enable verbose tracing")
	flag.BoolVar(&debug, "debug", false, "enable verbose tracing")
	flag.StringVar(&configPath, "config", "", "configuration file (default: per-user config dir)")
	flag.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("crownd %s\n", version)
		return
	}

	log := newLogger(debug, logFormat)

	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			log.Error("cannot determine config directory", "error", err)
			os.Exit(1)
		}
		configPath = path
	}

	events := make(chan event.StateChange, 64)

	bridge, err := x11.New(events, log)
	if err != nil {
		log.Error("x11 setup failed", "error", err)
		os.Exit(1)
	}

	crown, err := hid.New(events, log)
	if err != nil {
		log.Error("hid setup failed", "error", err)
		os.Exit(1)
	}

	conf := config.Open(configPath, log)

	log.Info("crownd started", "version", version, "config", configPath)
	router.New(conf, bridge, crown, nil, log).Run(events)
}

// newLogger builds the daemon logger. Debug mode traces everything to
// stdout; the normal mode only reports problems on stderr.
func newLogger(debug bool, format string) *logging.Logger {
	f, err := logging.ParseFormat(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crownd: %v\n", err)
		os.Exit(1)
	}
	cfg := logging.Config{
		Level:  slog.LevelWarn,
		Format: f,
		Output: os.Stderr,
	}
	if debug {
		cfg.Level = slog.LevelDebug
		cfg.Output = os.Stdout
	}
	return logging.New(cfg)
}
