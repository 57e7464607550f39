package colordu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/colordu/colordu/internal/transform"
)

// ExitLaunchFailure is returned when the wrapped binary cannot be started,
// mirroring the shell's convention for "command not found".
const ExitLaunchFailure = 127

// Run executes the wrapped du and streams its recolored output to stdout.
//
// Lines are read, transformed and written one at a time, preserving du's
// ordering and its progressive output; the whole stream is never buffered.
// du's stderr goes to stderr untouched. The returned code is the wrapped
// process's exit code; a non-nil error is fatal and carries the reason.
func Run(ctx context.Context, opt Options, stdout, stderr io.Writer) (int, error) {
	if opt.DuPath == "" {
		opt.DuPath = "du"
	}

	tr := transform.New(opt.Scheme, opt.Ceiling, opt.BlockSize, humanReadableRequested(opt.Args))

	cmd := exec.CommandContext(ctx, opt.DuPath, opt.Args...)
	cmd.Stderr = stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return ExitLaunchFailure, fmt.Errorf("creating stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return ExitLaunchFailure, fmt.Errorf("starting %q: %w", opt.DuPath, err)
	}

	// Forward interrupts to the child; it decides when to die, and we follow
	// once its output stream closes.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	defer close(done)
	defer signal.Stop(signals)

	go func() {
		for {
			select {
			case sig := <-signals:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	if err := stream(pipe, tr, stdout); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()

		return 1, err
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return 1, fmt.Errorf("waiting for %q: %w", opt.DuPath, err)
	}

	return 0, nil
}

// stream copies the child's output line by line through the transformer.
// Line terminators are kept as read so output is byte-identical to the
// input outside the injected escape sequences. Write failures (e.g. a
// broken pipe downstream) are fatal, matching shell pipeline semantics.
func stream(r io.Reader, tr *transform.Transformer, w io.Writer) error {
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			var out string
			if body, ok := strings.CutSuffix(line, "\n"); ok {
				out = tr.Transform(body) + "\n"
			} else {
				out = tr.Transform(line)
			}

			if _, werr := io.WriteString(w, out); werr != nil {
				return fmt.Errorf("writing output: %w", werr)
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading du output: %w", err)
		}
	}
}

// humanReadableRequested reports whether the forwarded arguments ask du for
// human-readable sizes. This is a heuristic scan, not a parse of du's flag
// grammar: any single-dash cluster containing 'h', or --human-readable or
// --si, counts; the scan stops at "--". A miss only shifts colors, never
// the emitted bytes.
func humanReadableRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}

		if arg == "--human-readable" || arg == "--si" {
			return true
		}

		if len(arg) > 1 && arg[0] == '-' && arg[1] != '-' && strings.ContainsRune(arg, 'h') {
			return true
		}
	}

	return false
}
