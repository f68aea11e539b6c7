// Package dtw defines options and modes for Dynamic Time Warping.
package dtw

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix   - keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - RollingArray - only keep two rows (current and previous).
//     Memory O(m), but cannot recover the path.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// RollingArray mode: keep only two rows, no path recovery.
	RollingArray
)

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       - maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     NoWindow (-1) means no constraint. The band is widened to |n-m| when
//     narrower, so a warping path always exists.
//   - SlopePenalty - extra cost (≥ 0) for insertion/deletion steps.
//   - ReturnPath   - if true, DTW backtracks and returns the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   - FullMatrix or RollingArray storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unconstrained, penalty-free, distance-only options
// with rolling storage.
func DefaultOptions() Options {
	return Options{
		Window:     NoWindow,
		MemoryMode: RollingArray,
	}
}
