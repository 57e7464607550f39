package colordu

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/colordu/colordu/internal/colorscheme"
)

// Options configures a single wrapped du run.
type Options struct {
	// Args are forwarded verbatim to the wrapped binary. colordu defines no
	// flags of its own.
	Args []string
	// Scheme is the active colorscheme.
	Scheme colorscheme.Scheme
	// Ceiling is the normalization ceiling in bytes (0 = default).
	Ceiling uint64
	// BlockSize is the byte value of one block for plain counts (0 = default).
	BlockSize uint64
	// DuPath is the binary to wrap (empty = "du" from PATH).
	DuPath string
}

// Config captures the environment-derived settings, resolved exactly once at
// startup and read-only afterwards.
type Config struct {
	// Scheme is the selected colorscheme.
	Scheme colorscheme.Scheme
	// Ceiling is the normalization ceiling in bytes.
	Ceiling uint64
	// BlockSize is the byte value of one block.
	BlockSize uint64
	// DuPath is the binary to wrap.
	DuPath string
}

// ResolveConfig reads the COLORDU_* environment through getenv and returns
// the run configuration, plus warnings for values that were ignored.
//
// COLORDU_SCHEME selects the palette; unrecognized values silently fall back
// to the default. A non-empty NO_COLOR, or colorTerminal being false,
// downgrades the scheme to NONE so piped output stays free of escape codes.
// COLORDU_MAX and COLORDU_BLOCK_SIZE accept human-readable sizes ("1TB",
// "256GiB"); COLORDU_DU overrides the wrapped binary.
func ResolveConfig(getenv func(string) string, colorTerminal bool) (Config, []string) {
	var warnings []string

	cfg := Config{
		Scheme:    colorscheme.Lookup(getenv("COLORDU_SCHEME")),
		Ceiling:   0,
		BlockSize: 0,
		DuPath:    getenv("COLORDU_DU"),
	}

	if getenv("NO_COLOR") != "" || !colorTerminal {
		cfg.Scheme = colorscheme.None
	}

	if raw := getenv("COLORDU_MAX"); raw != "" {
		size, err := humanize.ParseBytes(raw)
		if err != nil || size == 0 {
			warnings = append(warnings, fmt.Sprintf("ignoring COLORDU_MAX=%q: not a size", raw))
		} else {
			cfg.Ceiling = size
		}
	}

	if raw := getenv("COLORDU_BLOCK_SIZE"); raw != "" {
		size, err := humanize.ParseBytes(raw)
		if err != nil || size == 0 {
			warnings = append(warnings, fmt.Sprintf("ignoring COLORDU_BLOCK_SIZE=%q: not a size", raw))
		} else {
			cfg.BlockSize = size
		}
	}

	return cfg, warnings
}
