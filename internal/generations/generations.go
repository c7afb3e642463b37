// Package generations implements the Generations engine (spec.md §4.F):
// it promotes the bit-grid a Life-like Engine pass already produced into
// the Generations colour plane (alive -> max state, everything else decays
// by one toward zero), reusing the Life-like bit plane as the "this
// generation's birth/survival decision" input.
package generations

import "github.com/nlm-sim/lifecore/internal/grid"

// Params holds the three Generations state thresholds (spec.md §3).
type Params struct {
	DeadState, MaxGenState, MinDeadState byte
}

// Promote walks the colour plane in 16-cell blocks driven by the bit
// plane bits []uint16 (1 = alive, produced by a prior lifelike.Engine
// pass over the same rule's birth/survival rectangle). For each alive
// bit whose colour is <= DeadState or == MaxGenState, colour becomes
// MaxGenState (a birth, or a refresh of an already-max cell). For every
// other cell, colour decays by one toward MinDeadState (saturating).
// Population/births/deaths and both bounding boxes accumulate into g.
func Promote(g *grid.Grid, bits []uint16, p Params) {
	wordsPerRow := g.Width / 16
	g.ResetAggregates()

	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		bitRow := bits[y*wordsPerRow : (y+1)*wordsPerRow]

		for wi, word := range bitRow {
			baseX := wi * 16
			for col := 0; col < 16; col++ {
				x := baseX + col
				if x >= g.Width {
					break
				}
				bit := (word >> uint(15-col)) & 1
				cell := row[x]

				if bit == 1 && (cell <= p.DeadState || cell == p.MaxGenState) {
					if cell != p.MaxGenState {
						g.Births++
					}
					cell = p.MaxGenState
				} else if cell > p.MinDeadState {
					if cell == p.MaxGenState {
						g.Deaths++
					}
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
		}
	}
}
