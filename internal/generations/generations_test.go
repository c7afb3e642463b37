package generations

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/grid"
)

// TestLoneCellDies reproduces spec.md §8 scenario 4 (Generations 345/2/4):
// a single live cell with no neighbours dies next generation.
func TestLoneCellDies(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.ResetAggregates()

	p := Params{DeadState: 0, MaxGenState: 3, MinDeadState: 0}
	g.Row(20)[20] = p.MaxGenState

	// Bit-grid from a prior Life-like pass: no neighbours means the
	// birth/survival rule (345/2) says "not alive" for this cell.
	bits := make([]uint16, (g.Width/16)*g.Height)

	Promote(g, bits, p)

	if g.Row(20)[20] != p.MaxGenState-1 {
		t.Errorf("cell state = %d, want %d (decaying into the ladder)", g.Row(20)[20], p.MaxGenState-1)
	}
	if g.Population != 0 {
		t.Errorf("population = %d, want 0", g.Population)
	}
	if g.Births != 0 {
		t.Errorf("births = %d, want 0", g.Births)
	}
	if g.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", g.Deaths)
	}
}

func TestBirthFromDead(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.ResetAggregates()

	p := Params{DeadState: 0, MaxGenState: 3, MinDeadState: 0}
	bits := make([]uint16, (g.Width/16)*g.Height)
	bits[20*(g.Width/16)] = 1 << 15 // cell (0, 20) born

	Promote(g, bits, p)

	if g.Row(20)[0] != p.MaxGenState {
		t.Errorf("cell state = %d, want %d", g.Row(20)[0], p.MaxGenState)
	}
	if g.Births != 1 || g.Deaths != 0 {
		t.Errorf("births=%d deaths=%d, want 1/0", g.Births, g.Deaths)
	}
}
