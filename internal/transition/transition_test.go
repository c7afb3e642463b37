package transition

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/grid"
)

// comboList for B3/S23: bit0 = survival, bit1 = birth.
func conwayCombo() []byte {
	c := make([]byte, 10)
	c[2] = 1 // survive on 2
	c[3] = 1 | 2 // survive or born on 3
	return c
}

func TestApply2StatePopulationInvariant(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.ResetAggregates()

	// 3x3 solid block, neighbour counts computed by hand for a block's
	// interior/edges under Moore-8 (not including self).
	live := map[[2]int]bool{
		{10, 10}: true, {11, 10}: true, {12, 10}: true,
		{10, 11}: true, {11, 11}: true, {12, 11}: true,
		{10, 12}: true, {11, 12}: true, {12, 12}: true,
	}
	for k := range live {
		g.Row(k[1])[k[0]] = 1
	}

	counts := make([]int32, 32*32)
	for y := 9; y <= 13; y++ {
		for x := 9; x <= 13; x++ {
			var n int32
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if live[[2]int{x + dx, y + dy}] {
						n++
					}
				}
			}
			counts[y*32+x] = n
		}
	}

	p := Params2State{AliveStart: 1, AliveMax: 1, DeadStart: 0, DeadMin: 0}
	popBefore := 9
	Apply2State(g, counts, conwayCombo(), Region{LeftX: 9, BottomY: 9, RightX: 13, TopY: 13}, p)

	if g.Population != popBefore-g.Deaths+g.Births {
		t.Errorf("population %d != popBefore(%d) - deaths(%d) + births(%d)", g.Population, popBefore, g.Deaths, g.Births)
	}
}

func TestApplyNStateMidLadderDecaysUnconditionally(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.ResetAggregates()

	// A mid-ladder cell (neither <= deadState nor == maxGenState) must
	// decay by one regardless of its neighbour count, spec.md §4.D.
	g.Row(5)[5] = 10
	counts := []int32{}
	counts = make([]int32, 32*32)
	counts[5*32+5] = 3 // a count that would "survive" if checked

	p := ParamsNState{DeadState: 0, MaxGenState: 20, MinDeadState: 0}
	combo := make([]byte, 10)
	combo[3] = 1 | 2

	ApplyNState(g, counts, combo, Region{LeftX: 5, BottomY: 5, RightX: 5, TopY: 5}, p)

	if g.Row(5)[5] != 9 {
		t.Errorf("mid-ladder cell = %d, want 9 (unconditional decay)", g.Row(5)[5])
	}
}
