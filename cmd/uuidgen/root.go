package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Lzww0608/uuidgen"
)

var (
	_ pflag.Value = (*uuidgen.Version)(nil)
	_ pflag.Value = (*uuidgen.Format)(nil)
)

// usageError marks failures caused by the command line rather than by the
// host. They exit with status 2 and nothing is generated.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// newRootCommand builds the CLI. opts supplies the random source and
// interface lister; its Logger is replaced per invocation.
func newRootCommand(stdout, stderr io.Writer, opts uuidgen.Options) *cobra.Command {
	cfg := uuidgen.DefaultConfig()
	var verbose bool

	cmd := &cobra.Command{
		Use:   "uuidgen -v {1,3,4,5} [-m] [-n count] [-1] [-F {BIN,STR,SIV}] [-o path]",
		Short: "Generate RFC 4122 UUIDs",
		Long: `Generate one or more UUIDs of version 1, 3, 4 or 5.

Version 1 embeds the host hardware address unless -m is given.
Versions 3 and 5 hash a fixed URL and always print the same value.

An interrupt (SIGINT or SIGTERM) stops generation before the next UUID;
records already written are kept and the exit status is 130.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return &usageError{err}
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), verbose)
			return uuidgen.Run(cmd.Context(), cfg, cmd.OutOrStdout(), opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.VarP(&cfg.Version, "uuid-version", "v", "UUID version")
	flags.BoolVarP(&cfg.RandomNode, "random-node", "m", false, "use a random node id instead of the hardware address")
	flags.IntVarP(&cfg.Count, "count", "n", cfg.Count, "number of UUIDs to generate")
	flags.BoolVarP(&cfg.ResetContext, "reset-context", "1", false, "reset the timestamp context between iterations")
	flags.VarP(&cfg.Format, "format", "F", "output format")
	flags.StringVarP(&cfg.Output, "output", "o", "", "output file, truncated or created (default stdout)")
	flags.BoolVar(&verbose, "verbose", false, "log debug diagnostics to stderr")

	return cmd
}
