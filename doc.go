// Package colorkey makes a solid white or black background transparent.
//
// Each pixel is tested against a fixed per-channel threshold for the chosen
// key color. Matched pixels are replaced with the key color at zero alpha;
// every other pixel is copied unchanged. Any image format registered with the
// image package can be read, and results are always written as PNG. The
// package works entirely in memory apart from the file helpers.
package colorkey
