package transform

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/colordu/colordu/internal/colorscheme"
)

var escapes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripEscapes(s string) string {
	return escapes.ReplaceAllString(s, "")
}

func TestParseSize(t *testing.T) {
	tr := New(colorscheme.Sunset, 0, 0, false)
	human := New(colorscheme.Sunset, 0, 0, true)

	tests := []struct {
		token string
		tr    *Transformer
		want  float64
	}{
		{"12K", tr, 12 * 1024},
		{"4.0K", tr, 4 * 1024},
		{"3.4G", tr, 3.4 * 1024 * 1024 * 1024},
		{"1.5T", tr, 1.5 * 1024 * 1024 * 1024 * 1024},
		{"2P", tr, 2 * math.Pow(1024, 5)},
		{"1Y", tr, math.Pow(1024, 8)},
		{"4.0k", tr, 4 * 1024}, // du --si prints lowercase k
		{"512", tr, 512 * 1024},
		{"0", tr, 0},
		{"512", human, 512},
		{"0", human, 0},
		{"12K", human, 12 * 1024},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := tt.tr.parseSize(tt.token)
			if err != nil {
				t.Fatalf("parseSize(%q) error: %v", tt.token, err)
			}

			if diff := math.Abs(got - tt.want); diff > tt.want*1e-12 {
				t.Errorf("parseSize(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseSizeErrors(t *testing.T) {
	tr := New(colorscheme.Sunset, 0, 0, false)

	for _, token := range []string{"", "garbage", "K", "-5", "-5K", "12X", "12KB", "nan", "inf", "..4"} {
		if _, err := tr.parseSize(token); !errors.Is(err, ErrBadSize) {
			t.Errorf("parseSize(%q) error = %v, want ErrBadSize", token, err)
		}
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line    string
		token   string
		sep     string
		rest    string
		wantErr bool
	}{
		{"4.0K\tfoo.txt", "4.0K", "\t", "foo.txt", false},
		{"12K  spaced path", "12K", "  ", "spaced path", false},
		{"8\t \tdir with\ttabs", "8", "\t \t", "dir with\ttabs", false},
		{"4.0K\t", "4.0K", "\t", "", false},
		{"noseparator", "", "", "", true},
		{"", "", "", "", true},
		{" leading", "", "", "", true},
		{"\tleading", "", "", "", true},
	}
	for _, tt := range tests {
		token, sep, rest, err := splitLine(tt.line)
		if tt.wantErr {
			if !errors.Is(err, ErrNoSeparator) {
				t.Errorf("splitLine(%q) error = %v, want ErrNoSeparator", tt.line, err)
			}

			continue
		}
		if err != nil {
			t.Fatalf("splitLine(%q) error: %v", tt.line, err)
		}
		if token != tt.token || sep != tt.sep || rest != tt.rest {
			t.Errorf("splitLine(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.line, token, sep, rest, tt.token, tt.sep, tt.rest)
		}
	}
}

func TestNormalizeBoundaries(t *testing.T) {
	tr := New(colorscheme.Sunset, 0, 0, false)

	if got := tr.normalize(0); got != 0 {
		t.Errorf("normalize(0) = %v, want exactly 0", got)
	}
	if got := tr.normalize(float64(DefaultCeiling)); got != 1 {
		t.Errorf("normalize(ceiling) = %v, want exactly 1", got)
	}
	if got := tr.normalize(float64(DefaultCeiling) * 100); got != 1 {
		t.Errorf("normalize(100*ceiling) = %v, want exactly 1", got)
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	tr := New(colorscheme.Sunset, 0, 0, false)

	magnitudes := []float64{0, 1, 512, 4096, 1 << 20, 1 << 30, 1 << 38, float64(DefaultCeiling)}
	prev := -1.0

	for _, m := range magnitudes {
		v := tr.normalize(m)
		if v < prev {
			t.Fatalf("normalize(%v) = %v < normalize of smaller magnitude %v", m, v, prev)
		}
		if v < 0 || v > 1 {
			t.Fatalf("normalize(%v) = %v outside [0,1]", m, v)
		}
		prev = v
	}
}

func TestTransformPassthrough(t *testing.T) {
	tr := New(colorscheme.Sunset, 0, 0, false)

	// Lines that fail parsing come back byte-identical, uncolored.
	lines := []string{
		"",
		"garbage line without size",
		"noseparator",
		" 4.0K\tleading whitespace",
		"total",
		"du: cannot access 'missing': No such file or directory",
	}
	for _, line := range lines {
		if got := tr.Transform(line); got != line {
			t.Errorf("Transform(%q) = %q, want unchanged", line, got)
		}
	}
}

func TestTransformNoneScheme(t *testing.T) {
	tr := New(colorscheme.None, 0, 0, false)

	for _, line := range []string{"4.0K\tfoo.txt", "2.1G\tbar/", "garbage", ""} {
		if got := tr.Transform(line); got != line {
			t.Errorf("Transform(%q) = %q, want unchanged under NONE", line, got)
		}
	}
}

func TestTransformVisibleLength(t *testing.T) {
	tr := New(colorscheme.SmoothRainbow, 0, 0, true)

	lines := []string{
		"4.0K\tfoo.txt",
		"2.1G\tbar/",
		"0\t./empty",
		"512\t./blocks",
		"128M  two  space  fields",
	}
	for _, line := range lines {
		got := tr.Transform(line)
		if stripped := stripEscapes(got); stripped != line {
			t.Errorf("Transform(%q) stripped = %q, want original bytes", line, stripped)
		}
	}
}

func TestTransformYlOrBrScenario(t *testing.T) {
	tr := New(colorscheme.YlOrBr, 0, 0, true)

	// 4.0K log-scales to bin 2 of the 8-bin YlOrBr palette, 2.1G to bin 6.
	small := tr.Transform("4.0K\tfoo.txt")
	if want := "\x1b[38;2;254;196;79m4.0K\x1b[0m\tfoo.txt"; small != want {
		t.Errorf("Transform(4.0K) = %q, want %q", small, want)
	}

	large := tr.Transform("2.1G\tbar/")
	if want := "\x1b[38;2;153;52;4m2.1G\x1b[0m\tbar/"; large != want {
		t.Errorf("Transform(2.1G) = %q, want %q", large, want)
	}
}

func TestTransformColorOrdering(t *testing.T) {
	tr := New(colorscheme.Sunset, 0, 0, true)

	// Growing magnitudes must never map to an earlier normalized value.
	prev := -1.0

	for _, token := range []string{"0", "512", "4.0K", "120M", "2.1G", "1.5T"} {
		m, err := tr.parseSize(token)
		if err != nil {
			t.Fatalf("parseSize(%q) error: %v", token, err)
		}

		v := tr.normalize(m)
		if v < prev {
			t.Fatalf("normalized value decreased at %q: %v < %v", token, v, prev)
		}
		prev = v
	}
}

func TestTransformPreservesStructure(t *testing.T) {
	tr := New(colorscheme.Sunset, 0, 0, true)

	line := "3.4G   some dir/with  spaces"
	got := tr.Transform(line)

	if !strings.HasPrefix(got, "\x1b[38;2;") {
		t.Fatalf("Transform(%q) = %q, missing truecolor prefix", line, got)
	}
	if !strings.HasSuffix(got, "\x1b[0m   some dir/with  spaces") {
		t.Errorf("Transform(%q) = %q, separator or rest not preserved", line, got)
	}
	if !strings.Contains(got, fmt.Sprintf("m%s\x1b[0m", "3.4G")) {
		t.Errorf("Transform(%q) = %q, size token reformatted", line, got)
	}
}
