// Package sampling evaluates a spectrum over a frequency grid, tracks its
// peak and normalizes the result.
//
// Run wires the synchrotron components together from a Config and is the
// entry point used by the command-line tool. Engine and Normalize work on
// any PowerSpectrum and Density and can be used on their own.
package sampling
