// Package transform rewrites one line of du output at a time, wrapping the
// size field in a truecolor escape sequence whose color scales with the
// logarithm of the size. Everything outside the injected escape codes is
// preserved byte for byte; lines that do not parse pass through unmodified.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/colordu/colordu/internal/colorscheme"
)

const (
	// DefaultCeiling is the reference "very large directory" against which
	// sizes are log-scaled: 512 GiB. Sizes at or above it map to the hottest
	// color.
	DefaultCeiling uint64 = 512 << 30

	// DefaultBlockSize is the byte value of one block when du reports plain
	// block counts (GNU default).
	DefaultBlockSize uint64 = 1024
)

var (
	// ErrNoSeparator means the line has no whitespace to split size from path.
	ErrNoSeparator = errors.New("line has no whitespace separator")

	// ErrBadSize means the size token is not a number with an optional
	// binary-prefix suffix.
	ErrBadSize = errors.New("unparsable size token")
)

// Escape sequences injected around the size token. Truecolor foreground
// (38;2;R;G;B) plus a full reset.
const (
	fgFormat = "\x1b[38;2;%d;%d;%dm"
	reset    = "\x1b[0m"
)

// Transformer colors du output lines. Construct once per run via New;
// it is read-only afterwards.
type Transformer struct {
	scheme     colorscheme.Scheme
	blockSize  float64
	human      bool
	logCeiling float64
}

// New builds a Transformer for the given scheme and scale.
//
// ceiling is the magnitude (in bytes) that maps to normalized value 1;
// blockSize converts plain block counts to bytes. human indicates that the
// wrapped du was asked for human-readable output, so a bare number on a line
// is already in bytes rather than blocks.
func New(scheme colorscheme.Scheme, ceiling, blockSize uint64, human bool) *Transformer {
	if ceiling == 0 {
		ceiling = DefaultCeiling
	}

	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}

	return &Transformer{
		scheme:     scheme,
		blockSize:  float64(blockSize),
		human:      human,
		logCeiling: math.Log(float64(ceiling) + 1),
	}
}

// Transform returns line with its size token wrapped in color escape codes.
//
// Any line that cannot be parsed, and every line under the NONE scheme, is
// returned unchanged. One malformed line never affects the rest of the
// stream.
func (t *Transformer) Transform(line string) string {
	if !t.scheme.Enabled() {
		return line
	}

	token, sep, rest, err := splitLine(line)
	if err != nil {
		return line
	}

	magnitude, err := t.parseSize(token)
	if err != nil {
		return line
	}

	rgb, err := t.scheme.ColorFor(t.normalize(magnitude))
	if err != nil {
		return line
	}

	return fmt.Sprintf(fgFormat, rgb.R, rgb.G, rgb.B) + token + reset + sep + rest
}

// splitLine splits on the first run of spaces or tabs into the size token,
// the separator run itself, and the remainder of the line.
func splitLine(line string) (token, sep, rest string, err error) {
	idx := strings.IndexAny(line, " \t")
	if idx <= 0 {
		// No separator, or the line starts with whitespace and has no
		// size token at all.
		return "", "", "", ErrNoSeparator
	}

	end := idx
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}

	return line[:idx], line[idx:end], line[end:], nil
}

// parseSize converts a size token to its byte-equivalent magnitude.
//
// Tokens are either a bare number (block count, or bytes in human mode) or a
// number with a binary-prefix suffix ("12K", "3.4G"), where each prefix is a
// power of 1024.
func (t *Transformer) parseSize(token string) (float64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", ErrBadSize)
	}

	num := token
	multiplier := 1.0
	suffixed := false

	if last := token[len(token)-1]; last >= 'A' && last <= 'z' {
		power, ok := unitPower(last)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrBadSize, token)
		}

		num = token[:len(token)-1]
		multiplier = power
		suffixed = true
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil || value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q", ErrBadSize, token)
	}

	if !suffixed && !t.human {
		// Plain du prints block counts, not bytes.
		return value * t.blockSize, nil
	}

	return value * multiplier, nil
}

// unitPower maps a size-prefix letter to its power of 1024. The prefix order
// (K through Y) matches coreutils' human.c. Lowercase is accepted because
// du --si prints "k".
func unitPower(letter byte) (float64, bool) {
	const unit = 1024

	switch letter {
	case 'K', 'k':
		return unit, true
	case 'M', 'm':
		return unit * unit, true
	case 'G', 'g':
		return unit * unit * unit, true
	case 'T', 't':
		return unit * unit * unit * unit, true
	case 'P', 'p':
		return math.Pow(unit, 5), true
	case 'E', 'e':
		return math.Pow(unit, 6), true
	case 'Z', 'z':
		return math.Pow(unit, 7), true
	case 'Y', 'y':
		return math.Pow(unit, 8), true
	default:
		return 0, false
	}
}

// normalize log-scales a byte magnitude into [0, 1] against the ceiling.
// The +1 offset keeps magnitude 0 at exactly 0.
func (t *Transformer) normalize(magnitude float64) float64 {
	value := math.Log(magnitude+1) / t.logCeiling

	return math.Min(math.Max(value, 0), 1)
}
