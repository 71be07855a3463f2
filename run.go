package uuidgen

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Options carries the collaborators of Run. Zero values select the host
// defaults: crypto/rand, net.Interfaces and a discarding logger.
type Options struct {
	Rand       io.Reader
	Interfaces InterfaceLister
	Logger     *slog.Logger
}

// OpenSink opens the destination for a run. An empty path selects stdout,
// which is never closed by the returned WriteCloser.
func OpenSink(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkOpen, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Run validates cfg, then writes cfg.Count UUIDs to cfg.Output, or to stdout
// when no output path is set. Each record is written as soon as it is
// generated; on failure the records already written stay on the sink.
func Run(ctx context.Context, cfg Config, stdout io.Writer, opts Options) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}

	sink, err := OpenSink(cfg.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrSinkWrite, cerr)
		}
	}()

	// The node id is resolved for every version so a host without a
	// hardware address fails the same way regardless of -v.
	node, err := ResolveNode(cfg, r, opts.Interfaces)
	if err != nil {
		return err
	}
	logger.Debug("node resolved", "node", node.String(), "random", cfg.RandomNode)

	var tctx *Context
	if cfg.Version == VersionTimeBased {
		tctx = NewContextWithReader(node, r)
	}

	gen, err := NewGenerator(cfg.Version, tctx, r)
	if err != nil {
		return err
	}

	logger.Debug("generating",
		"version", cfg.Version.String(),
		"count", cfg.Count,
		"format", cfg.Format.String(),
		"reset_context", cfg.ResetContext,
		"output", cfg.Output,
	)

	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("generation interrupted", "written", i)
			return err
		}
		id, err := gen.Next()
		if err != nil {
			return fmt.Errorf("uuidgen: generate version %s: %w", cfg.Version, err)
		}
		if cfg.ResetContext && tctx != nil {
			tctx.Reset()
		}
		if err := cfg.Format.WriteRecord(sink, id); err != nil {
			return fmt.Errorf("%w: %w", ErrSinkWrite, err)
		}
	}
	return nil
}
