package flatten

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssc/check"
	"cssc/config"
	"cssc/css"
	"cssc/extract"
	"cssc/state"
	"cssc/utils/enc"
)

// Run implements the "flatten" subcommand.
func Run(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, func(env *state.LocalEnv, log *zap.Logger, input string) (string, error) {
		return NewFlattener(log).Process(input)
	})
}

// RunMinify implements the "min" subcommand: parse and serialize without
// resolving nesting, which compacts the text and prunes empty constructs.
func RunMinify(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, func(env *state.LocalEnv, log *zap.Logger, input string) (string, error) {
		sheet, err := css.NewParser(log).Parse(input)
		if err != nil {
			return "", err
		}
		return css.Stringify(sheet), nil
	})
}

// RunDump implements the "dump" subcommand.
func RunDump(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, func(env *state.LocalEnv, log *zap.Logger, input string) (string, error) {
		sheet, err := css.NewParser(log).Parse(input)
		if err != nil {
			return "", err
		}
		return css.Dump(sheet), nil
	})
}

// RunCheck implements the "check" subcommand. It reports sources that a
// standards-conforming CSS consumer would reject; any finding makes the
// command fail.
func RunCheck(ctx context.Context, cmd *cli.Command) (err error) {
	if er := ctx.Err(); er != nil {
		return er
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() == 0 {
		return errors.New("no input source has been specified")
	}

	for _, src := range cmd.Args().Slice() {
		input, er := readSource(env, log, src)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", src, er))
			continue
		}
		for _, warn := range check.Stylesheet([]byte(input)) {
			log.Warn("Strict grammar complaint", zap.String("source", src), zap.String("warning", warn))
			err = multierr.Append(err, fmt.Errorf("%s: %s", src, warn))
		}
	}
	return err
}

type transformFunc func(env *state.LocalEnv, log *zap.Logger, input string) (string, error)

func run(ctx context.Context, cmd *cli.Command, transform transformFunc) (err error) {
	if er := ctx.Err(); er != nil {
		return er
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named(cmd.Name)

	srcs := cmd.Args().Slice()
	if len(srcs) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.String("out")
	toDir := len(srcs) > 1 && len(dst) > 0
	if toDir {
		if er := os.MkdirAll(dst, 0o755); er != nil {
			return fmt.Errorf("unable to prepare destination directory: %w", er)
		}
	}

	for _, src := range srcs {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}

		output, er := processSource(env, log, src, transform)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", src, er))
			continue
		}

		switch {
		case toDir:
			name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".css"
			er = os.WriteFile(filepath.Join(dst, config.CleanFileName(name)), []byte(output), 0o644)
		case len(dst) > 0:
			er = os.WriteFile(dst, []byte(output), 0o644)
		default:
			_, er = fmt.Fprintln(os.Stdout, output)
		}
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", src, er))
			continue
		}
		log.Info("Processed", zap.String("source", src), zap.Int("bytes", len(output)))
	}
	return err
}

func processSource(env *state.LocalEnv, log *zap.Logger, src string, transform transformFunc) (string, error) {
	input, err := readSource(env, log, src)
	if err != nil {
		return "", err
	}

	output, err := transform(env, log, input)
	if err != nil {
		return "", err
	}

	if env.Cfg.Process.StrictCheck {
		for _, warn := range check.Stylesheet([]byte(output)) {
			log.Warn("Output is not standard CSS", zap.String("source", src), zap.String("warning", warn))
		}
	}
	return output, nil
}

// readSource loads one input. HTML inputs contribute the concatenation of
// their <style> blocks, stylesheet inputs are transcoded to UTF-8 when a
// @charset rule asks for it.
func readSource(env *state.LocalEnv, log *zap.Logger, src string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(src))
	for _, htmlExt := range env.Cfg.Process.HTMLExtensions {
		if ext != htmlExt {
			continue
		}
		blocks, err := extract.StyleBlocks(strings.NewReader(string(data)))
		if err != nil {
			return "", fmt.Errorf("unable to extract styles: %w", err)
		}
		log.Debug("Extracted style blocks", zap.String("source", src), zap.Int("blocks", len(blocks)))
		return strings.Join(blocks, "\n"), nil
	}

	if !env.Cfg.Process.DecodeCharset {
		return string(data), nil
	}
	return enc.DecodeStylesheet(data)
}
