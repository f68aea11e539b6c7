package dtw

import (
	"errors"
	"fmt"
	"math"
)

// DTW: Dynamic Time Warping
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). D is the (n+1)x(m+1) DP matrix.
//  2. Initialize D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  3. For i = 1..n, j = 1..m with |i-j| ≤ w:
//     cost    = |a[i-1] - b[j-1]|
//     D[i][j] = cost + min(D[i-1][j-1], D[i-1][j] + SlopePenalty, D[i][j-1] + SlopePenalty)
//  4. distance = D[n][m].
//  5. With ReturnPath, backtrack from (n,m) to (1,1) through the minimizing predecessor.
//
// Complexity:
//
//	Time   = O(n·m), or O(n·w) inside a band
//	Memory = O(n·m) (FullMatrix) or O(m) (RollingArray)
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option or a non-finite sample.
	ErrBadInput = errors.New("dtw: invalid input")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the Dynamic Time Warping distance between a and b.
// A nil opts means DefaultOptions(). The path, when requested, lists
// 0-based index pairs (i, j) from (0,0) to (n-1,m-1).
func DTW(a, b []float64, opts *Options) (distance float64, path [][2]int, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = validate(a, b, o); err != nil {
		return 0, nil, err
	}

	n, m := len(a), len(b)
	window := n + m
	if o.Window != NoWindow {
		window = max(o.Window, abs(n-m))
	}
	inf := math.Inf(1)

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}
	distance = row(n)[m]

	if o.ReturnPath {
		path = backtrack(dp, n, m, o.SlopePenalty)
	}

	return distance, path, nil
}

// Distance is DTW with default options, returning only the distance.
func Distance(a, b []float64) (float64, error) {
	d, _, err := DTW(a, b, nil)
	return d, err
}

func validate(a, b []float64, o Options) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if o.Window < NoWindow {
		return fmt.Errorf("%w: Window=%d (use %d for no window)", ErrBadInput, o.Window, NoWindow)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return fmt.Errorf("%w: SlopePenalty=%g must be ≥ 0", ErrBadInput, o.SlopePenalty)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != RollingArray {
		return fmt.Errorf("%w: unknown MemoryMode %d", ErrBadInput, o.MemoryMode)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}
	for _, s := range [2][]float64{a, b} {
		for i, x := range s {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: sample %d is %g", ErrBadInput, i, x)
			}
		}
	}

	return nil
}

// backtrack walks the full matrix from (n,m) to (1,1), preferring the
// diagonal on ties.
func backtrack(dp [][]float64, n, m int, penalty float64) [][2]int {
	path := make([][2]int, 0, n+m)
	i, j := n, m
	for {
		path = append(path, [2]int{i - 1, j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
