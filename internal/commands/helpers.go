package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/logger"
	"github.com/gerunddev/docbridge/internal/styles"
	"github.com/gerunddev/docbridge/internal/tui"
)

// commonFlags are the flags shared by the converting commands
type commonFlags struct {
	force    bool
	verbose  bool
	noPrompt bool
	help     bool
	args     []string
}

// newFlagSet binds the common flags to f
func newFlagSet(name string, f *commonFlags) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&f.force, "force", "f", false, "Overwrite an existing destination without asking")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Log at debug level")
	flags.BoolVar(&f.noPrompt, "no-prompt", false, "Never prompt; rename on collision unless forced")
	flags.BoolVarP(&f.help, "help", "h", false, "Show help")
	flags.SetInterspersed(true)
	return flags
}

// parseFlags parses args for the named command. Parse failures wrap
// ErrUsage.
func parseFlags(name string, args []string) (*commonFlags, error) {
	f := &commonFlags{}
	flags := newFlagSet(name, f)
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.args = flags.Args()
	return f, nil
}

// flagHelp documents the common flags in usage text
func flagHelp() string {
	return "Flags:\n" + newFlagSet("", &commonFlags{}).FlagUsages()
}

// newConverter loads the configuration and builds a converter for one
// invocation. The returned cleanup closes the log file, if any.
func newConverter(f *commonFlags) (*Converter, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	l, cleanup := openLogger(cfg, f.verbose)
	l.ConfigLoaded(config.ConfigPath(), cfg.FontName, cfg.FontSize, cfg.Overwrite)

	conv := &Converter{
		Config: cfg,
		Logger: l,
		Force:  f.force,
	}
	if !f.noPrompt && isTerminal(os.Stdin) && isTerminal(os.Stderr) {
		conv.Prompter = &tui.ConfirmPrompter{Output: os.Stderr}
	}
	return conv, cleanup, nil
}

// openLogger logs to the configured file, falling back to stderr. On the
// terminal only warnings and errors are shown unless verbose is set, since
// the command prints its own summary line.
func openLogger(cfg *config.Config, verbose bool) (*logger.Logger, func()) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}

	if cfg.LogFile != "" {
		l, cleanup, err := logger.NewFileLogger(cfg.LogFile, level)
		if err == nil {
			return l, cleanup
		}
		fmt.Fprintln(os.Stderr, styles.Warning(fmt.Sprintf("Cannot open log file, logging to stderr: %v", err)))
	}

	if !verbose && level < log.WarnLevel {
		level = log.WarnLevel
	}
	return logger.NewWithLevel(os.Stderr, level), func() {}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// fail prints err and exits with status 1
func fail(err error) {
	fmt.Fprintln(os.Stderr, styles.Failure(err.Error()))
	os.Exit(1)
}

// usageError prints err, if any, and the usage text, then exits with
// status 1
func usageError(usage string, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Failure(err.Error()))
		fmt.Fprintln(os.Stderr)
	}
	fmt.Fprint(os.Stderr, usage)
	os.Exit(1)
}
