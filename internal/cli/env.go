package cli

import (
	"flag"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"quizzer/internal/config"
	"quizzer/internal/logging"
	"quizzer/internal/session"
	"quizzer/internal/shuffle"
)

// runtimeFlags are the options shared by commands that build sessions.
type runtimeFlags struct {
	configPath string
	uiMode     string
	noColor    bool
	verbose    bool
	logLevel   string
	seed       uint64
}

func (f *runtimeFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&f.configPath, "config", "", "Path to config file (default: search for .quizzer/config.yml)")
	flags.StringVar(&f.uiMode, "ui", "", "UI mode: auto|live|plain (default from config)")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&f.verbose, "verbose", false, "Log debug output to stderr")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: debug|info|warn|error (default from config)")
	flags.Uint64Var(&f.seed, "seed", 0, "Shuffle seed (default from config; 0 is random)")
}

// env is the resolved configuration for one command invocation.
type env struct {
	cfg     config.Config
	root    string
	verbose bool
	logger  *slog.Logger
	rng     *rand.Rand
}

// load resolves the config and applies flag overrides on top of it.
func (f *runtimeFlags) load(stderr io.Writer) (*env, error) {
	cfg, root, err := loadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.uiMode != "" {
		cfg.UI.Mode = f.uiMode
	}
	if f.noColor {
		cfg.UI.NoColor = true
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.seed != 0 {
		cfg.Quiz.Seed = f.seed
	}
	logger, err := logging.New(stderr, logging.Options{Level: cfg.Log.Level, Verbose: f.verbose})
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:     cfg,
		root:    root,
		verbose: f.verbose,
		logger:  logger,
		rng:     shuffle.New(cfg.Quiz.Seed),
	}, nil
}

func (e *env) sessionOptions() session.Options {
	return session.Options{Rand: e.rng, Logger: e.logger}
}

// resolve anchors a config-relative path at the config root.
func (e *env) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || e.root == "" {
		return path
	}
	return filepath.Join(e.root, path)
}
