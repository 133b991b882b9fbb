package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/sceneforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values from a -config file are defaults; flags given explicitly win.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sceneforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
SceneForge - Incremental rebuilds of a parametric scene tree.

Usage:
  sceneforge [options] [SCENE_PATH]

Arguments:
  SCENE_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var overrides stringList
	sceneFlag := flagSet.String("scene", "", "Path to the scene file or directory.")
	sFlag := flagSet.String("s", "", "Path to the scene file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a TOML file with default settings.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	listenPortFlag := flagSet.Int("listen-port", 0, "Port for the HTTP server exposing /health and /ws. 0 is disabled.")
	notifyURLFlag := flagSet.String("notify-url", "", "socket.io server that receives a report after every pass.")
	notifyNSFlag := flagSet.String("notify-namespace", "/", "socket.io namespace for -notify-url.")
	watchFlag := flagSet.Bool("watch", false, "Keep running and rebuild when scene files change.")
	flagSet.Var(&overrides, "set", "Override a parameter, as path.param=value. Repeatable.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var cfg app.Config
	if *configFlag != "" {
		fileCfg, err := app.LoadConfigFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = fileCfg
		slog.Debug("Config file loaded.", "path", *configFlag)
	} else {
		cfg.LogFormat = *logFormatFlag
		cfg.LogLevel = *logLevelFlag
		cfg.NotifyNamespace = *notifyNSFlag
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "listen-port":
			cfg.ListenPort = *listenPortFlag
		case "notify-url":
			cfg.NotifyURL = *notifyURLFlag
		case "notify-namespace":
			cfg.NotifyNamespace = *notifyNSFlag
		case "watch":
			cfg.Watch = *watchFlag
		}
	})
	cfg.Overrides = append(cfg.Overrides, overrides...)

	switch {
	case *sceneFlag != "":
		cfg.ScenePath = *sceneFlag
	case *sFlag != "":
		cfg.ScenePath = *sFlag
	case flagSet.NArg() > 0:
		cfg.ScenePath = flagSet.Arg(0)
	}
	slog.Debug("Scene path determined.", "path", cfg.ScenePath)

	if cfg.ScenePath == "" {
		slog.Debug("No scene path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
