package super

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/grid"
)

func TestLoneCellDiesIntoHistory(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.Row(10)[10] = 1 // alive, no neighbours

	bits := make([]uint16, (g.Width/16)*g.Height) // no bit set: rule says not alive

	Step(g, bits)

	if got := g.Row(10)[10]; got != 2 {
		t.Errorf("lone alive cell state = %d, want 2 (first decay step)", got)
	}
	if g.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", g.Deaths)
	}
}

func TestDeadCellStaysDeadWithNoHistory(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	bits := make([]uint16, (g.Width/16)*g.Height)

	Step(g, bits)

	if got := g.Row(5)[5]; got != 0 {
		t.Errorf("empty cell state = %d, want 0", got)
	}
}

func TestBirthFromThreeNeighbours(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	// Three live (state 1) neighbours around (10,10), none alive itself.
	g.Row(9)[9] = 1
	g.Row(9)[10] = 1
	g.Row(9)[11] = 1

	bits := make([]uint16, (g.Width/16)*g.Height)
	bits[10*(g.Width/16)] = 1 << uint(15-10) // bit-grid says (10,10) is born

	Step(g, bits)

	if got := g.Row(10)[10]; got != 1 {
		t.Errorf("born cell state = %d, want 1", got)
	}
	if g.Births != 1 {
		t.Errorf("births = %d, want 1", g.Births)
	}
}
