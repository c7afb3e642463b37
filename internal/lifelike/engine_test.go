package lifelike

import (
	"testing"

	"github.com/nlm-sim/lifecore/internal/grid"
)

func newConwayGrid(t *testing.T, size int, live [][2]int) *grid.Grid {
	t.Helper()
	g := grid.New(size, size, 16, 16)
	g.MarkAllDirty()
	bits := g.Bits.Current()
	for _, xy := range live {
		x, y := xy[0], xy[1]
		row := g.Row(y)
		row[x] = 1
		bitRow := g.BitRow(bits, y)
		bitRow[x/16] |= 1 << uint(15-(x%16))
	}
	return g
}

func conwayParams() (Ruleset, Ruleset, Params) {
	b := Ruleset{3: true}
	s := Ruleset{2: true, 3: true}
	p := Params{AliveStart: 1, AliveMax: 1, DeadStart: 0, DeadMin: 0}
	return b, s, p
}

func aliveCells(g *grid.Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	bits := g.Bits.Current()
	for y := 0; y < g.Height; y++ {
		row := g.BitRow(bits, y)
		for x := 0; x < g.Width; x++ {
			if row[x/16]&(1<<uint(15-(x%16))) != 0 {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestBlinkerPeriodTwo(t *testing.T) {
	b, s, p := conwayParams()
	g := newConwayGrid(t, 64, [][2]int{{10, 10}, {11, 10}, {12, 10}})
	e := NewEngine(b, s)

	e.Step(g, p)

	want := map[[2]int]bool{{11, 9}: true, {11, 10}: true, {11, 11}: true}
	got := aliveCells(g)
	if len(got) != len(want) {
		t.Fatalf("generation 1: got %v, want %v", got, want)
	}
	for k := range want {
		if !got[k] {
			t.Errorf("generation 1: expected %v alive", k)
		}
	}
	if g.Population != 3 {
		t.Errorf("population = %d, want 3", g.Population)
	}
	if g.Births != 2 || g.Deaths != 2 {
		t.Errorf("births=%d deaths=%d, want births=2 deaths=2", g.Births, g.Deaths)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	b, s, p := conwayParams()
	g := newConwayGrid(t, 64, [][2]int{{10, 10}, {11, 10}, {10, 11}, {11, 11}})
	e := NewEngine(b, s)

	e.Step(g, p)

	want := map[[2]int]bool{{10, 10}: true, {11, 10}: true, {10, 11}: true, {11, 11}: true}
	got := aliveCells(g)
	if len(got) != 4 {
		t.Fatalf("block changed shape: %v", got)
	}
	for k := range want {
		if !got[k] {
			t.Errorf("expected %v alive", k)
		}
	}
	if g.Births != 0 || g.Deaths != 0 {
		t.Errorf("births=%d deaths=%d, want 0/0", g.Births, g.Deaths)
	}
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	b, s, p := conwayParams()
	g := newConwayGrid(t, 64, [][2]int{{10, 10}, {11, 11}, {12, 11}, {10, 12}, {11, 12}})
	e := NewEngine(b, s)

	for i := 0; i < 4; i++ {
		e.Step(g, p)
		if g.Population != 5 {
			t.Fatalf("generation %d: population = %d, want 5", i+1, g.Population)
		}
	}

	want := map[[2]int]bool{{11, 11}: true, {12, 12}: true, {13, 12}: true, {11, 13}: true, {12, 13}: true}
	got := aliveCells(g)
	if len(got) != len(want) {
		t.Fatalf("glider shape mismatch: %v", got)
	}
	for k := range want {
		if !got[k] {
			t.Errorf("expected %v alive after 4 generations", k)
		}
	}
}
