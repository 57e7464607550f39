package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/colordu/colordu/internal/colordu"
)

func run(args []string) (int, error) {
	colorTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	cfg, warnings := colordu.ResolveConfig(os.Getenv, colorTerminal)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, warnLabel("warning:"), w)
	}

	return colordu.Run(context.Background(), colordu.Options{
		Args:      args,
		Scheme:    cfg.Scheme,
		Ceiling:   cfg.Ceiling,
		BlockSize: cfg.BlockSize,
		DuPath:    cfg.DuPath,
	}, os.Stdout, os.Stderr)
}
