// Package colordu wraps the du command and recolors its size column.
//
// It spawns du with a forwarded argument list, streams stdout through the
// line transformer one line at a time, passes stderr and interrupt signals
// through, and propagates du's exit code.
package colordu
