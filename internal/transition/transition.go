// Package transition is the state-transition applier (spec.md §4.D):
// given a neighbourhood-counts plane and a combo list, it updates the
// colour plane in place and accumulates population/births/deaths, both
// bounding boxes, and the tile-dirty mask. Two variants share one combo-
// list encoding: two-state (alive/dead with a fading history ladder) and
// N-state (Generations-style decay ladder).
package transition

import "github.com/nlm-sim/lifecore/internal/grid"

// Params2State holds the four state thresholds spec.md §3/§4.D define for
// two-state rules with history.
type Params2State struct {
	AliveStart, AliveMax byte
	DeadStart, DeadMin   byte
}

// ParamsNState holds the three thresholds for Generations-style rules.
type ParamsNState struct {
	DeadState, MaxGenState, MinDeadState byte
}

// Region bounds one application pass over the colour plane, in cell
// coordinates inclusive on all sides.
type Region struct {
	LeftX, BottomY, RightX, TopY int
}

// Apply2State runs the two-state transition (spec.md §4.D) over region r.
// counts is the neighbourhood-sum plane, indexed the same as g.Colour.
// comboList[count]&1 is survival, &2 is birth. The caller is responsible
// for calling g.ResetAggregates beforehand if this is the first (or only)
// region of the generation.
func Apply2State(g *grid.Grid, counts []int32, comboList []byte, r Region, p Params2State) {
	apply(g, r, func(y int) {
		row := g.Row(y)
		crow := counts[y*g.Width : (y+1)*g.Width]
		applyRowPrologueBodyEpilogue(r.LeftX, r.RightX, func(x int) {
			step2State(g, row, crow, x, y, comboList, p)
		})
	})
}

func step2State(g *grid.Grid, row []byte, crow []int32, x, y int, comboList []byte, p Params2State) {
	count := crow[x]
	cell := row[x]

	switch {
	case cell < p.AliveStart:
		if comboList[count]&2 != 0 {
			cell = p.AliveStart
			g.Births++
		} else if cell > p.DeadMin {
			cell--
		}
	default:
		if comboList[count]&1 == 0 {
			cell = p.DeadStart
			g.Deaths++
		} else if cell < p.AliveMax {
			cell++
		}
	}
	row[x] = cell

	if cell > p.DeadMin {
		g.ExpandOccupied(x, y)
		g.SetTile(g.TileRowOf(y), g.TileColOf(x))
		if cell >= p.AliveStart {
			g.Population++
			g.ExpandLive(x, y)
		}
	}
}

// ApplyNState runs the Generations-style transition (spec.md §4.D) over
// region r.
func ApplyNState(g *grid.Grid, counts []int32, comboList []byte, r Region, p ParamsNState) {
	apply(g, r, func(y int) {
		row := g.Row(y)
		crow := counts[y*g.Width : (y+1)*g.Width]
		applyRowPrologueBodyEpilogue(r.LeftX, r.RightX, func(x int) {
			stepNState(g, row, crow, x, y, comboList, p)
		})
	})
}

func stepNState(g *grid.Grid, row []byte, crow []int32, x, y int, comboList []byte, p ParamsNState) {
	count := crow[x]
	cell := row[x]

	switch {
	case cell <= p.DeadState:
		if comboList[count]&2 != 0 {
			cell = p.MaxGenState
			g.Births++
		} else if cell > p.MinDeadState {
			cell--
		}
	case cell == p.MaxGenState:
		if comboList[count]&1 == 0 {
			cell--
			g.Deaths++
		}
	default:
		cell--
	}
	row[x] = cell

	if cell > 0 {
		g.ExpandOccupied(x, y)
		g.SetTile(g.TileRowOf(y), g.TileColOf(x))
		if cell == p.MaxGenState {
			g.Population++
			g.ExpandLive(x, y)
		}
	}
}

func apply(g *grid.Grid, r Region, perRow func(y int)) {
	for y := r.BottomY; y <= r.TopY; y++ {
		perRow(y)
	}
	_ = g
}

// applyRowPrologueBodyEpilogue walks [left, right] as a scalar prologue up
// to the next 16-alignment boundary, a 16-wide vector body, and a scalar
// epilogue for the remainder — matching spec.md §4.D's required structure
// so that a genuine vector backend can replace the body without changing
// results (the prologue/epilogue already share identical per-cell
// semantics with it, satisfying the "scalarise everything" allowance of
// spec.md §9).
func applyRowPrologueBodyEpilogue(left, right int, perCell func(x int)) {
	x := left
	for x <= right && x%16 != 0 {
		perCell(x)
		x++
	}
	for x+15 <= right {
		for k := 0; k < 16; k++ {
			perCell(x + k)
		}
		x += 16
	}
	for x <= right {
		perCell(x)
		x++
	}
}
