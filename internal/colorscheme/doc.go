// Package colorscheme holds the named color palettes and maps normalized
// magnitudes in [0, 1] onto 24-bit RGB colors.
//
// Schemes are either discrete (the range is partitioned into equal bins,
// one per color) or continuous (channels are linearly interpolated between
// the two stops bracketing the value). Palette values follow the colour
// schemes published by Paul Tol (SRON).
package colorscheme
