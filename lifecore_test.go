package lifecore

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/generations"
	"github.com/nlm-sim/lifecore/internal/grid"
	"github.com/nlm-sim/lifecore/internal/lifelike"
	"github.com/nlm-sim/lifecore/internal/transition"
)

// setBit flips on the bit for cell (x, y) in a Life-like bit-plane word.
func setBit(g *grid.Grid, plane []uint16, x, y int) {
	row := g.BitRow(plane, y)
	row[x/16] |= 1 << uint(15-x%16)
}

// standardLife is ruleset B3/S23, used only to drive the bit-grid; the
// tests below care about the colour plane Generations/Super produce from
// it, not this rule's own dynamics.
func standardLife() (lifelike.Ruleset, lifelike.Ruleset) {
	var b, s lifelike.Ruleset
	b[3] = true
	s[2], s[3] = true, true
	return b, s
}

// TestStepGenerationsDoesNotCorruptColourPlane guards the fix for the
// review comment that StepGenerations must not let the Life-like engine
// write 2-state AliveStart/DeadStart bytes into g.Colour before
// generations.Promote reads it: every cell must stay within
// [0, MaxGenState] afterward, even though lp's 2-state thresholds
// (AliveStart=64, DeadStart=200) fall entirely outside that range.
func TestStepGenerationsDoesNotCorruptColourPlane(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.MarkAllDirty()

	cur := g.Bits.Current()
	setBit(g, cur, 15, 16)
	setBit(g, cur, 16, 16)
	setBit(g, cur, 17, 16)

	gp := generations.Params{DeadState: 0, MaxGenState: 5, MinDeadState: 0}
	row := g.Row(16)
	row[15], row[16], row[17] = gp.MaxGenState, gp.MaxGenState, gp.MaxGenState

	lp := lifelike.Params{AliveStart: 64, AliveMax: 255, DeadStart: 200, DeadMin: 201}
	b, s := standardLife()
	engine := NewLifeLikeEngine(b, s)

	shared := make([]int32, 7)
	engine.StepGenerations(g, lp, gp, shared)

	for i, c := range g.Colour {
		if c > gp.MaxGenState {
			t.Fatalf("colour[%d] = %d, want <= MaxGenState %d (2-state bytes leaked into the Generations colour plane)", i, c, gp.MaxGenState)
		}
	}
}

// TestSuperStepDoesNotCorruptColourPlane is the Super-engine counterpart:
// SuperEngine.Step must leave g.Colour entirely within the 0-25 Super
// state range, never the 2-state AliveStart/DeadStart bytes lp carries.
func TestSuperStepDoesNotCorruptColourPlane(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.MarkAllDirty()

	cur := g.Bits.Current()
	setBit(g, cur, 15, 16)
	setBit(g, cur, 16, 16)
	setBit(g, cur, 17, 16)

	row := g.Row(16)
	row[15], row[16], row[17] = 9, 9, 9

	lp := lifelike.Params{AliveStart: 64, AliveMax: 255, DeadStart: 200, DeadMin: 201}
	b, s := standardLife()
	engine := NewSuperEngine(b, s)

	shared := make([]int32, 7)
	engine.Step(g, lp, shared)

	for i, c := range g.Colour {
		if c > 25 {
			t.Fatalf("colour[%d] = %d, want <= 25 (2-state bytes leaked into the Super colour plane)", i, c)
		}
	}
}

func TestWriteSharedHROTLayout(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.ResetAggregates()
	g.ExpandOccupied(1, 2)
	g.ExpandOccupied(10, 12)
	g.ExpandLive(3, 4)
	g.Population, g.Births, g.Deaths = 7, 2, 1

	shared := make([]int32, 11)
	WriteSharedHROT(g, shared)

	want := []int32{1, 10, 2, 12, 3, 3, 4, 4, 7, 2, 1}
	for i, w := range want {
		if shared[i] != w {
			t.Errorf("shared[%d] = %d, want %d", i, shared[i], w)
		}
	}
}

// TestHROTMooreBlockSurvives exercises spec.md §8 scenario 5's rule family
// (HROT Moore, a solid block) with a B6-8/S4-7-style combo list over an
// r=2 neighbourhood: a large enough solid block should remain a still
// life in the interior.
func TestHROTMooreBlockSurvives(t *testing.T) {
	g := grid.New(32, 32, 16, 16)
	g.ResetAggregates()

	for y := 8; y <= 12; y++ {
		row := g.Row(y)
		for x := 8; x <= 12; x++ {
			row[x] = 64
		}
	}

	// Combo list for r=2 Moore (max neighbour count, self excluded,
	// = (2*2+1)^2-1 = 24): survive on any count from 4 up, so the
	// fully-packed interior of the block (24 alive neighbours) holds.
	combo := make([]byte, 25)
	for n := 4; n <= 24; n++ {
		combo[n] |= 1
	}

	p := HROTMooreParams{
		Region:    transition.Region{LeftX: 8, BottomY: 8, RightX: 12, TopY: 12},
		XRange:    2, YRange: 2,
		ComboList: combo,
	}
	tp := transition.Params2State{AliveStart: 64, AliveMax: 255, DeadStart: 0, DeadMin: 0}
	shared := make([]int32, 11)

	StepHROTMoore2State(g, p, tp, 64, shared)

	if g.Row(10)[10] < 64 {
		t.Errorf("interior block cell died unexpectedly: colour = %d", g.Row(10)[10])
	}
}
