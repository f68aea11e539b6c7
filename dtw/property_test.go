package dtw_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/epinet/dtw"
)

// TestDTW_Properties checks identity, symmetry and agreement of the two
// memory modes on random curves.
func TestDTW_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	curve := gen.SliceOf(gen.Float64Range(-50, 50))

	properties.Property("distance to itself is zero", prop.ForAll(
		func(a []float64) bool {
			if len(a) == 0 {
				return true
			}
			d, err := dtw.Distance(a, a)
			return err == nil && d == 0
		},
		curve,
	))

	properties.Property("symmetric without penalty", prop.ForAll(
		func(a, b []float64) bool {
			if len(a) == 0 || len(b) == 0 {
				return true
			}
			ab, err1 := dtw.Distance(a, b)
			ba, err2 := dtw.Distance(b, a)
			return err1 == nil && err2 == nil && math.Abs(ab-ba) <= 1e-9*(1+ab)
		},
		curve, curve,
	))

	properties.Property("rolling and full matrix agree", prop.ForAll(
		func(a, b []float64, w int) bool {
			if len(a) == 0 || len(b) == 0 {
				return true
			}
			o := dtw.DefaultOptions()
			o.Window = w
			o.SlopePenalty = 0.5
			rolling, _, err1 := dtw.DTW(a, b, &o)
			o.MemoryMode = dtw.FullMatrix
			o.ReturnPath = true
			full, path, err2 := dtw.DTW(a, b, &o)
			if err1 != nil || err2 != nil || math.IsInf(rolling, 0) {
				return false
			}
			last := path[len(path)-1]
			return rolling == full && path[0] == [2]int{0, 0} && last == [2]int{len(a) - 1, len(b) - 1}
		},
		curve, curve, gen.IntRange(dtw.NoWindow, 10),
	))

	properties.TestingRun(t)
}
