package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssc/config"
	"cssc/extract"
	"cssc/flatten"
	"cssc/misc"
	"cssc/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 && env.Log != nil {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()
	return nil
}

// Ignore urfave/cli default error handling - for me cli.Exit() looks
// non-transparent and unnesessary. I will return regular errors from
// subcommands.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	outFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write result to `DESTINATION` instead of STDOUT (a directory when multiple sources are given)"}
	}

	sourcesHelp := fmt.Sprintf(`%s
SOURCE:
    path to stylesheet file(s) to process; files with extensions listed in the
    html_extensions configuration key are treated as markup and contribute the
    content of their <style> elements instead
`, cli.CommandHelpTemplate)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "processing engine for stylesheets with nested rules",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, forces debug level console logging"},
		},
		Commands: []*cli.Command{
			{
				Name:               "flatten",
				Usage:              "Resolves nested rules producing flat standard CSS",
				OnUsageError:       usageErrorHandler,
				Action:             flatten.Run,
				Flags:              []cli.Flag{outFlag()},
				ArgsUsage:          "SOURCE...",
				CustomHelpTemplate: sourcesHelp,
			},
			{
				Name:               "min",
				Usage:              "Compacts stylesheet(s) without resolving nested rules",
				OnUsageError:       usageErrorHandler,
				Action:             flatten.RunMinify,
				Flags:              []cli.Flag{outFlag()},
				ArgsUsage:          "SOURCE...",
				CustomHelpTemplate: sourcesHelp,
			},
			{
				Name:               "dump",
				Usage:              "Prints parsed stylesheet structure, useful for troubleshooting",
				OnUsageError:       usageErrorHandler,
				Action:             flatten.RunDump,
				Flags:              []cli.Flag{outFlag()},
				ArgsUsage:          "SOURCE...",
				CustomHelpTemplate: sourcesHelp,
			},
			{
				Name:               "check",
				Usage:              "Verifies that stylesheet(s) conform to standard CSS grammar",
				OnUsageError:       usageErrorHandler,
				Action:             flatten.RunCheck,
				ArgsUsage:          "SOURCE...",
				CustomHelpTemplate: sourcesHelp,
			},
			{
				Name:         "extract",
				Usage:        "Extracts <style> blocks from HTML file(s)",
				OnUsageError: usageErrorHandler,
				Action:       extractStyles,
				ArgsUsage:    "SOURCE...",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values wich is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func extractStyles(ctx context.Context, cmd *cli.Command) (err error) {

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	if cmd.Args().Len() == 0 {
		return errors.New("no input source has been specified")
	}

	for _, src := range cmd.Args().Slice() {
		f, er := os.Open(src)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", src, er))
			continue
		}
		blocks, er := extract.StyleBlocks(f)
		f.Close()
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", src, er))
			continue
		}
		log.Debug("Extracted style blocks", zap.String("source", src), zap.Int("blocks", len(blocks)))
		for _, block := range blocks {
			fmt.Fprintln(os.Stdout, block)
		}
	}
	return err
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()

	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Dump(config.Default())
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
