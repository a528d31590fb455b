package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/danielgatis/go-ansiwrap"
)

func main() {
	app := cli.New("ansiwrap").
		Description("Wrap text containing ANSI escape sequences by visible width").
		Version("0.1.0")

	app.Main().
		Flags(
			cli.String("file", "f").
				Default("").
				Help("Input file (defaults to stdin)"),
			cli.Int("width", "w").
				Default(ansiwrap.DefaultWidth).
				Env("ANSIWRAP_WIDTH").
				Help("Maximum visible width of a line"),
			cli.Int("indent", "i").
				Default(0).
				Help("Spaces to indent every line with"),
			cli.Int("max-lines", "").
				Default(0).
				Help("Truncate each paragraph to this many lines (0 for no limit)"),
			cli.Bool("proper", "p").
				Default(false).
				Help("Keep existing line breaks and reinsert escapes exactly"),
			cli.String("preview", "").
				Default("").
				Help("Also render the wrapped lines to this PNG file"),
			cli.Bool("verbose", "").
				Default(false).
				Help("Log debug details to stderr"),
		).
		Run(runWrap)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

func runWrap(ctx *cli.Context) error {
	level := slog.LevelInfo
	if ctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.Kitchen,
		Level:      level,
	}))

	opts := options{
		width:    ctx.Int("width"),
		indent:   ctx.Int("indent"),
		maxLines: ctx.Int("max-lines"),
		proper:   ctx.Bool("proper"),
		preview:  ctx.String("preview"),
	}

	in := os.Stdin
	if path := ctx.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	return run(logger, opts, in, os.Stdout)
}
