package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/petitions/internal/config"
	"github.com/idilsaglam/petitions/internal/feed"
	"github.com/idilsaglam/petitions/internal/logging"
	"github.com/idilsaglam/petitions/internal/ui"
)

// usageError marks bad invocations (exit code 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries flag values and resolved state for one Run.
type app struct {
	stdout, stderr io.Writer

	flags struct {
		config  string
		baseURL string
		logDir  string
		theme   string
		verbose bool
	}

	cfg      config.Config
	log      *slog.Logger
	closeLog func()
}

// Run executes args and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: slog.New(slog.DiscardHandler)}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.closeLog != nil {
		a.closeLog()
	}
	if err == nil {
		return 0
	}

	var ue usageError
	switch {
	case errors.As(err, &ue):
		ui.Fail(stderr, err.Error())
		fmt.Fprintln(stderr, ui.Current().Muted.Render("Run `petitions --help` for usage."))
		return 2
	case feed.IsLoadError(err):
		ui.Fail(stderr, ui.LoadingErrorTitle+": "+ui.LoadingErrorMessage)
		return 1
	}
	ui.Fail(stderr, err.Error())
	return 1
}

func (a *app) rootCommand() *cobra.Command {
	var (
		top     bool
		keyword string
	)
	root := &cobra.Command{
		Use:   "petitions",
		Short: "Browse and filter White House petitions",
		Long: `petitions lists petitions from the We the People feed, filters them by
keyword and shows their details. Without a subcommand it opens the
interactive browser.`,
		Args:              noArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd.Context(), modeFor(top), keyword)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.config, "config", "c", "", "config file path (default: petitions.yml in current directory)")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "feed base URL (env "+config.EnvBaseURL+")")
	pf.StringVar(&a.flags.logDir, "log-dir", "", "directory for log files (empty disables file logging)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable verbose (DEBUG) logging")
	pf.StringVar(&a.flags.theme, "theme", "", "color theme: classic, neon, mono")

	root.Flags().BoolVarP(&top, "top", "t", false, "start on the top rated tab")
	root.Flags().StringVarP(&keyword, "filter", "f", "", "initial filter keyword")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	root.AddCommand(
		a.listCommand(),
		a.creditsCommand(),
		a.versionCommand(),
		a.configCommand(),
	)
	return root
}

// setup resolves configuration, theme and logging before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	overrides := config.CLIOverrides{}
	f := cmd.Flags()
	if f.Changed("base-url") {
		overrides.BaseURL = &a.flags.baseURL
	}
	if f.Changed("log-dir") {
		overrides.LogDir = &a.flags.logDir
	}
	if f.Changed("verbose") {
		overrides.Verbose = &a.flags.verbose
	}
	if f.Changed("theme") {
		overrides.Theme = &a.flags.theme
	}
	cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)

	// The browser owns the terminal; it logs to the file only.
	a.log, a.closeLog = logging.Setup(logging.Config{
		LogDir:  cfg.LogDir,
		Verbose: cfg.Verbose,
		Quiet:   cmd == cmd.Root(),
	})
	if path != "" {
		a.log.Debug("config loaded", "path", path)
	}
	return nil
}

func (a *app) feedClient() *feed.Client {
	return feed.NewClient(feed.Options{
		BaseURL:        a.cfg.BaseURL,
		Limit:          a.cfg.Limit,
		SignatureFloor: a.cfg.SignatureFloor,
		Timeout:        a.cfg.Timeout.Duration,
		UserAgent:      a.cfg.UserAgent,
	}, a.log)
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Errorf("unknown subcommand: %s", args[0])}
	}
	return nil
}

func modeFor(top bool) feed.Mode {
	if top {
		return feed.ModeTopRated
	}
	return feed.ModeAll
}
