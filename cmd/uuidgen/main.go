// uuidgen CLI entry point
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lzww0608/uuidgen"
)

const (
	exitFailure = 1
	exitUsage   = 2

	// 128 + SIGINT, the status a shell reports for an interrupted command
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, uuidgen.Options{})
	cancel()
	os.Exit(code)
}

// execute runs the command and maps its error to a process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts uuidgen.Options) int {
	cmd := newRootCommand(stdout, stderr, opts)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "error: %v\n\n%s", uerr.err, cmd.UsageString())
		return exitUsage
	}
	if errors.Is(err, context.Canceled) {
		newLogger(stderr, false).Warn("uuidgen interrupted", "err", err)
		return exitInterrupted
	}
	newLogger(stderr, false).Error("uuidgen failed", "err", err)
	return exitFailure
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "uuidgen"))
}
