package spline

import (
	"fmt"
	"math/cmplx"

	"github.com/npillmayer/smoothpath"
)

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []smoothpath.Pair, i int, deflt smoothpath.Pair) []smoothpath.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]smoothpath.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []smoothpath.Pair, i int, deflt smoothpath.Pair) smoothpath.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

// Split a list of pairs into its x- and y-coordinates.
func axes(points []smoothpath.Pair) ([]float64, []float64) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.F()
	}
	return xs, ys
}

func ptstring(p smoothpath.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
