package cli

import "github.com/fatih/color"

// Diagnostic prefixes for stderr. Colored only when stderr is a terminal;
// fatih/color handles that and NO_COLOR itself.
//
//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// errLabel formats the fatal error prefix in red.
	errLabel = color.New(color.FgRed).SprintFunc()

	// warnLabel formats warning prefixes in yellow.
	warnLabel = color.New(color.FgYellow).SprintFunc()
)
