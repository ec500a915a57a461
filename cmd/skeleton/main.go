package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const successMessage = "Project structure generated successfully."

//nolint:gochecknoglobals
var Version string

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}

// execute runs the command line and logs any error it ends with, including
// flag and argument errors raised before a command runs.
func execute(args []string, stdout, stderr io.Writer) error {
	setupLogging(stderr, false)

	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		slog.Error("Failed to generate project structure.",
			"err", err,
		)

		return err
	}

	return nil
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
