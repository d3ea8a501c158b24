package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agenthands/strscript/pkg/config"
	"github.com/agenthands/strscript/pkg/diagnostics"
	"github.com/agenthands/strscript/pkg/source"
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flagConfig         string
	flagLogLevel       string
	flagNoColor        bool
	flagGas            int
	flagMaxSourceBytes int64

	cfg    config.Config
	logger zerolog.Logger
	diag   *diagnostics.Printer
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "strscript",
		Short:         "Interpreter for a tiny string-only language",
		Version:       cliToolVersion,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.flagConfig, "config", "",
		"YAML config file (default ./"+config.DefaultFileName+" when present)")
	flags.StringVar(&a.flagLogLevel, "log-level", "",
		"log level: trace, debug, info, warn, error")
	flags.BoolVar(&a.flagNoColor, "no-color", false,
		"disable colored diagnostics")
	flags.IntVar(&a.flagGas, "gas", 0,
		"maximum number of executed statements, 0 for unlimited")
	flags.Int64Var(&a.flagMaxSourceBytes, "max-source-bytes", 0,
		"reject source files larger than this, 0 for unlimited")

	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		return a.setup(root)
	}

	root.AddCommand(
		newRunCommand(a),
		newCheckCommand(a),
		newTokensCommand(a),
		newVersionCommand(),
	)
	return root
}

// setup merges the config file with explicitly set flags.
func (a *app) setup(root *cobra.Command) error {
	path, required := a.flagConfig, true
	if path == "" {
		path, required = config.DefaultFileName, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}

	flags := root.PersistentFlags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if flags.Changed("no-color") {
		cfg.Color = !a.flagNoColor
	}
	if flags.Changed("gas") {
		cfg.Gas = a.flagGas
	}
	if flags.Changed("max-source-bytes") {
		cfg.MaxSourceBytes = a.flagMaxSourceBytes
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	colored := cfg.Color && !color.NoColor
	a.cfg = cfg
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: !colored}).
		Level(level).
		With().Timestamp().Logger()
	a.diag = diagnostics.NewPrinter(a.stderr, colored)

	a.logger.Debug().
		Str("config", path).
		Int("gas", cfg.Gas).
		Int64("max_source_bytes", cfg.MaxSourceBytes).
		Msg("configured")
	return nil
}

func (a *app) load(path string) (string, error) {
	loader := source.NewLoader(a.cfg.MaxSourceBytes)
	loader.Stdin = a.stdin
	src, err := loader.Load(path)
	if err != nil {
		a.diag.PrintError("", "", err)
		return "", errReported
	}
	return src, nil
}
