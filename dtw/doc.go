// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with an optional alignment path.
//
// DTW finds the best match between two sequences by warping the time axis
// to minimize the cumulative absolute difference. Epinet uses it to compare
// the infected curve of a stochastic network run with the mean-field
// compartmental curve, where the two may peak at different times.
//
// Key features:
//   - full-matrix mode: O(N·M) memory, path recovery
//   - rolling mode: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w), widened to |N−M| when narrower
//   - slope penalty to discourage excessive stretching
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//	opts.MemoryMode = dtw.FullMatrix
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Errors:
//   - ErrEmptyInput       if either sequence is empty
//   - ErrBadInput         for invalid options or non-finite samples
//   - ErrPathNeedsMatrix  if ReturnPath is set without FullMatrix
package dtw
