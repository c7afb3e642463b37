package bounded

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/grid"
)

func TestWrapTorusCopiesOppositeEdge(t *testing.T) {
	const xrange, yrange = 1, 1
	lx, by, rx, ty := xrange+1, yrange+1, 8+xrange, 8+yrange
	size := ty + yrange + 2

	g := grid.New(roundUp16(size), size, 16, 16)
	g.Row(by)[lx] = 42 // bottom-left corner of the live rectangle

	WrapTorus(g, lx, by, rx, ty, xrange, yrange)

	if got := g.Row(ty + 1)[lx]; got != 42 {
		t.Errorf("bottom row not copied above top border: got %d", got)
	}
}

func roundUp16(n int) int {
	return (n + 15) / 16 * 16
}
