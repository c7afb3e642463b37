package occupancy

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/grid"
)

func TestHashTwoStateIsStable(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.Row(5)[5] = 64
	g.Row(6)[7] = 64

	box := Box{Left: 0, Bottom: 0, Right: 31, Top: 31}
	h1 := HashTwoState(g, box, 64)
	h2 := HashTwoState(g, box, 64)

	if h1 != h2 {
		t.Errorf("hash not stable across identical planes: %d != %d", h1, h2)
	}
}

func TestHashTwoStateChangesOnTranslation(t *testing.T) {
	g1 := grid.New(32, 32, 16, 16)
	g1.Row(5)[5] = 64

	g2 := grid.New(32, 32, 16, 16)
	g2.Row(6)[6] = 64

	box := Box{Left: 0, Bottom: 0, Right: 31, Top: 31}
	if HashTwoState(g1, box, 64) == HashTwoState(g2, box, 64) {
		t.Errorf("translated pattern produced the same hash")
	}
}

func TestPoolMax2x2(t *testing.T) {
	g := grid.New(16, 16, 16, 16)
	g.SetTile(0, 0)
	g.Row(0)[0] = 5
	g.Row(0)[1] = 9
	g.Row(1)[0] = 2
	g.Row(1)[1] = 1

	dst := make([]byte, 8*8)
	PoolMax(g, dst, 2, false)

	if dst[0] != 9 {
		t.Errorf("pool-max of top-left 2x2 block = %d, want 9", dst[0])
	}
}
