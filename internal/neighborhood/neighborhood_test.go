package neighborhood

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/grid"
)

func aliveByte(c byte) bool { return c != 0 }

func TestMooreMatchesBruteForce(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	for _, xy := range [][2]int{{10, 10}, {11, 10}, {10, 11}} {
		g.Row(xy[1])[xy[0]] = 1
	}

	counts := make([]int32, 32*32)
	r := Region{LeftX: 9, BottomY: 9, RightX: 12, TopY: 12}
	Moore(g, counts, r, 1, 1, aliveByte)

	if got := counts[10*32+10]; got != 2 {
		t.Errorf("Moore count at (10,10) = %d, want 2", got)
	}
}

func TestCrossExcludesDiagonals(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.Row(9)[10] = 1  // directly above
	g.Row(9)[9] = 1   // diagonal, must not count

	counts := make([]int32, 32*32)
	r := Region{LeftX: 10, BottomY: 10, RightX: 10, TopY: 10}
	Cross(g, counts, r, 1, aliveByte)

	if got := counts[10*32+10]; got != 1 {
		t.Errorf("Cross count at (10,10) = %d, want 1 (diagonal excluded)", got)
	}
}

func TestCheckerboardSubLattice(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	for y := 8; y <= 12; y++ {
		row := g.Row(y)
		for x := 8; x <= 12; x++ {
			row[x] = 1
		}
	}

	counts := make([]int32, 32*32)
	r := Region{LeftX: 10, BottomY: 10, RightX: 10, TopY: 10}
	Checkerboard(g, counts, r, 2, 2, 0)

	// Only cells with (x+y)&1==0 in the 5x5 window around (10,10)
	// contribute; count them by hand.
	var want int32
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			x, y := 10+dx, 10+dy
			if (x+y)&1 == 0 {
				want++
			}
		}
	}
	if got := counts[10*32+10]; got != want {
		t.Errorf("Checkerboard count = %d, want %d", got, want)
	}
}

func TestCornerEdgeIncludesCentre(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.Row(10)[10] = 1 // centre/survival term

	counts := make([]int32, 32*32)
	r := Region{LeftX: 10, BottomY: 10, RightX: 10, TopY: 10}
	CornerEdge(g, counts, r, 2, 1, aliveByte)

	if got := counts[10*32+10]; got != 1 {
		t.Errorf("CornerEdge count = %d, want 1 (centre only)", got)
	}
}
