package cumsum

import (
	"math/rand"
	"testing"
)

func TestBuildMooreCornerDifference(t *testing.T) {
	const width, height = 32, 32
	colour := make([]byte, width*height)
	src := rand.New(rand.NewSource(7))
	for i := range colour {
		if src.Intn(3) == 0 {
			colour[i] = 1
		}
	}
	isAlive := func(c byte) bool { return c != 0 }

	counts := make([]int32, width*height)
	BuildMoore(counts, colour, width, 0, 0, width-1, height-1, isAlive)

	// Spec.md §8: C[y2][x2] - C[y1-1][x2] - C[y2][x1-1] + C[y1-1][x1-1]
	// equals the live count in the (w+1)x(h+1) window.
	x1, y1, x2, y2 := 5, 5, 15, 20
	got := Query(counts, width, 0, 0, x1, y1, x2, y2)

	var want int32
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if isAlive(colour[y*width+x]) {
				want++
			}
		}
	}
	if got != want {
		t.Errorf("windowed count = %d, want %d", got, want)
	}
}
