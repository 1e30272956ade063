package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graeme-hill/loxfront-go/lib"
	logger "github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		a.printError(err)
		os.Exit(1)
	}
}

type app struct {
	cfg     Config
	verbose bool
	log     *logger.Logger
	out     io.Writer
	errOut  io.Writer
	styles  styles
}

func newApp() *app {
	cfg := DefaultConfig()
	return &app{
		cfg:    cfg,
		log:    newLogger(os.Stderr, false),
		out:    os.Stdout,
		errOut: os.Stderr,
		styles: newStyles(cfg.Color),
	}
}

func newLogger(dst logger.SyncWriter, verbose bool) *logger.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   dst,
		IncludeDebug: verbose,
	})
}

// syncWriter adapts a plain writer for the logger. Sync is forwarded when the
// writer has one.
type syncWriter struct {
	io.Writer
}

func (w syncWriter) Sync() error {
	if s, ok := w.Writer.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	var (
		cfgFile  string
		verbose     bool
		maxDepth    int
		mode        string
		historyFile string
	)

	rootCmd := &cobra.Command{
		Use:   "lox [FILE]",
		Short: "Scan and parse Lox expressions",
		Long: `lox scans and parses Lox expressions and prints the resulting tree.

With no arguments it starts an interactive prompt; with a FILE it parses
the whole file and exits non-zero on the first error.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-depth") {
				cfg.MaxDepth = maxDepth
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if cmd.Flags().Changed("history-file") {
				cfg.HistoryFile = historyFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.out = cmd.OutOrStdout()
			a.errOut = cmd.ErrOrStderr()
			a.styles = newStyles(cfg.Color)
			a.verbose = verbose
			a.log = newLogger(syncWriter{a.errOut}, verbose)
			a.log.Debugf("config: mode=%s max_depth=%d file=%q", cfg.Mode, cfg.MaxDepth, cfgFile)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.repl(cmd.InOrStdin())
			}
			return a.runFile(args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	flags.IntVar(&maxDepth, "max-depth", lib.DefaultMaxDepth, "maximum expression nesting")
	flags.StringVar(&mode, "mode", ModeTree, "output mode: tree or tokens")
	flags.StringVar(&historyFile, "history-file", DefaultHistoryFile, "REPL history file; empty disables it")

	rootCmd.AddCommand(
		newRunCmd(a),
		newTokensCmd(a),
		newCheckCmd(a),
	)
	return rootCmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Parse FILE and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFile(args[0])
		},
	}
}

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the tokens scanned from FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Mode = ModeTokens
			return a.runFile(args[0])
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check DIR",
		Short: "Parse every " + lib.ScriptExt + " file in DIR and report the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(args[0])
		},
	}
}

func (a *app) runFile(path string) error {
	script, err := lib.ReadScriptFromFile(path)
	if err != nil {
		return err
	}
	a.log.Debugf("read %s (%d bytes)", script.Path, len(script.Source))
	return a.process(a.out, script.Source)
}

func (a *app) check(dir string) error {
	scripts, err := lib.ReadScriptsFromDir(dir)
	if err != nil {
		return err
	}
	a.log.Debugf("checking %d scripts in %s", len(scripts), dir)

	failed, err := lib.WriteReport(a.out, scripts, a.cfg.ParseOptions())
	if err != nil {
		return errors.Wrap(err, "writing report")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d scripts failed", failed, len(scripts))
	}
	return nil
}

// process scans source and prints either its tokens or its tree, depending
// on the configured mode.
func (a *app) process(w io.Writer, source string) error {
	tokens, err := lib.Scan(source)
	if err != nil {
		return err
	}
	a.log.Debugf("scanned %d tokens", len(tokens))

	if a.cfg.Mode == ModeTokens {
		for _, tok := range tokens {
			fmt.Fprintln(w, tok)
		}
		return nil
	}

	expr, err := lib.ParseWithOptions(tokens, a.cfg.ParseOptions())
	if err != nil {
		return err
	}
	a.log.Debugf("parsed tree of depth %d", lib.Depth(expr))

	fmt.Fprintln(w, lib.Render(expr))
	return nil
}

func (a *app) printError(err error) {
	fmt.Fprintln(a.errOut, a.styles.err.Render(err.Error()))
}
