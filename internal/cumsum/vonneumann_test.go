package cumsum

import "testing"

// TestWindowSumMatchesHandTracedDiamond builds the small precalc band
// directly (the same shape cumulativeVNCounts2/getCount2L in the source
// build, staying entirely inside rows [0, ccht) so no periodic-folding
// branch of ReadDiamond needs to kick in) and checks WindowSum against a
// hand-traced Manhattan-distance brute force, the diamond analogue of
// TestBuildMooreCornerDifference (spec.md §8). The source never subtracts
// the queried cell's own contribution, so the window sum here is
// self-inclusive — this test pins that down.
func TestWindowSumMatchesHandTracedDiamond(t *testing.T) {
	const stride = 8
	const nrows = 3
	colour := make([]byte, nrows*stride)
	isAlive := func(c byte) bool { return c != 0 }

	set := func(x, y int) { colour[y*stride+x] = 1 }
	set(2, 0)
	set(1, 1)
	set(3, 1)
	set(2, 2)

	xrange, yrange := 2, 2
	ccht := yrange + 1
	ncols := 6
	d := Descriptor{
		Counts:      make([]int32, nrows*stride),
		CountsWidth: stride,
		NCols:       ncols,
		CCHT:        ccht,
		HalfCCWidth: xrange,
	}
	BuildVonNeumannCumulative(d, colour, stride, 0, 0, nrows, isAlive)

	got := WindowSum(0, 2, xrange, yrange, d)

	var want int32
	cx, cy := 2, 0
	for dy := -yrange; dy <= yrange; dy++ {
		half := yrange - abs(dy)
		for dx := -half; dx <= half; dx++ {
			nx, ny := cx+dx, cy+dy
			if nx < 0 || nx >= stride || ny < 0 || ny >= nrows {
				continue
			}
			if isAlive(colour[ny*stride+nx]) {
				want++
			}
		}
	}
	if got != want {
		t.Errorf("WindowSum = %d, want %d", got, want)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
