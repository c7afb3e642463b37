// Package lifelike implements the Life-like engine (spec.md §4.E): a
// single-pass bit-packed evaluator that combines neighbourhood counting
// and state transition for two-state Moore-8 rules, the innermost hot
// loop of the simulator. It reuses the teacher's (game.go) Ruleset type,
// but replaces the per-cell branch-and-count approach with the compiled
// lookup table in lut.go. Step runs single-threaded, and so does its
// caller in package lifecore.
package lifelike

import "github.com/nlm-sim/lifecore/internal/grid"

// Params carries the state thresholds and bounded-grid rectangle for one
// Step call (spec.md §4.D state thresholds, §4.E bounded-grid rule).
type Params struct {
	AliveStart, AliveMax byte
	DeadStart, DeadMin   byte

	Bounded                        bool
	LeftX, BottomY, RightX, TopY int
}

// Engine holds the compiled even/odd lookup tables and the generation
// parity that selects between them (spec.md §4.E / §9 "two tables may be
// installed, swapped on alternating generations... Encapsulate as a
// (current, next) pair with a post-step swap; callers never see the
// parity bit" — the same idiom applied here to LUT selection instead of
// buffers).
type Engine struct {
	lutEven, lutOdd []uint8
	gen             int
}

// NewEngine compiles the lookup tables for ruleset (b, s). When the
// ruleset has B0 (birth on zero neighbours), the odd-generation table is
// the rule's complement, implementing the alternating-inversion trick
// spec.md §4.E and §9 call for; otherwise both tables are identical.
func NewEngine(b, s Ruleset) *Engine {
	lut := BuildLUT(b, s)
	e := &Engine{lutEven: lut, lutOdd: lut}
	if b[0] {
		e.lutOdd = BuildComplementLUT(b, s)
	}
	return e
}

// Step advances the grid's bit plane and colour plane by one generation,
// evaluating only tiles marked dirty in g.TileMask (the set built by the
// previous Step), and writes the next generation's dirty set via
// g.MarkNext/g.CommitTileMask. g.TileX must be 16 — the bit-plane word
// width the tile/word mapping in this package assumes.
func (e *Engine) Step(g *grid.Grid, p Params) {
	e.step(g, p, true)
}

// StepBits advances the bit plane and the tile-dirty set exactly like
// Step, but never touches the colour plane or the aggregate counters.
// Rule families that reinterpret this bit-grid through their own colour
// semantics (Generations, Super) call this instead of Step, then drive
// their own colour-plane pass — generations.Promote/super.Step — against
// the *previous* generation's colour bytes, and accumulate their own
// population/births/deaths/bounding-box bookkeeping (spec.md §4.F/§4.G:
// "the bit-grid a Life-like Engine pass already produced" over an
// otherwise untouched colour plane). Calling Step here instead would
// overwrite the colour plane with two-state AliveStart/DeadStart bytes
// before Promote/Step ever reads it.
func (e *Engine) StepBits(g *grid.Grid, p Params) {
	e.step(g, p, false)
}

func (e *Engine) step(g *grid.Grid, p Params, writeColour bool) {
	if g.TileX != 16 {
		panic("lifelike: engine requires 16-cell tiles")
	}

	lut := e.lutEven
	if e.gen%2 == 1 {
		lut = e.lutOdd
	}
	e.gen++

	cur := g.Bits.Current()
	next := g.Bits.Next()
	wordsPerRow := g.Width / 16

	if writeColour {
		g.ResetAggregates()
	}
	g.ResetTileNext()

	for tileRow := 0; tileRow < g.TileRows; tileRow++ {
		y0 := tileRow * g.TileY
		y1 := grid.Min(y0+g.TileY-1, g.Height-1)

		for tc := 0; tc < g.TileCols; tc++ {
			if !g.TileBit(tileRow, tc) {
				continue
			}

			for y := y0; y <= y1; y++ {
				rowAbove := g.BitRow(cur, y-1)
				rowCur := g.BitRow(cur, y)
				rowBelow := g.BitRow(cur, y+1)

				val0 := extend18(wordAt(rowAbove, tc-1), wordAt(rowAbove, tc), wordAt(rowAbove, tc+1))
				val1 := extend18(wordAt(rowCur, tc-1), wordAt(rowCur, tc), wordAt(rowCur, tc+1))
				val2 := extend18(wordAt(rowBelow, tc-1), wordAt(rowBelow, tc), wordAt(rowBelow, tc+1))

				output := evalWord(lut, val0, val1, val2)

				nextRow := next[y*wordsPerRow : (y+1)*wordsPerRow]
				nextRow[tc] = output

				if writeColour {
					applyWordToColour(g, y, tc, wordAt(rowCur, tc), output, p)
				}

				propagateTile(g, tileRow, tc, wordAt(rowCur, tc), output, y == y0, y == y1)
			}
		}
	}

	if writeColour && p.Bounded {
		clampBoundingBox(g, p.LeftX, p.BottomY, p.RightX, p.TopY)
	}

	g.CommitTileMask()
	g.Bits.Swap()
}

func wordAt(row []uint16, tc int) uint16 {
	if tc < 0 || tc >= len(row) {
		return 0
	}
	return row[tc]
}

// extend18 builds the 18-bit extended window for one row: bit 17 is the
// single bit borrowed from the word to the left (its rightmost cell, bit
// 0 under our MSB-first convention), bits 16..1 are the current word's 16
// cells, bit 0 is the single bit borrowed from the word to the right (its
// leftmost cell, bit 15). Spec.md §4.E.
func extend18(left, cur, right uint16) uint32 {
	leftBit := uint32(left & 1)
	rightBit := uint32(right>>15) & 1
	return (leftBit << 17) | (uint32(cur) << 1) | rightBit
}

// evalWord computes the 16-cell output word as four 4-cell chunks, each
// resolved through the compiled LUT from a combined 18-bit index: bits
// 0-5 from the row above's window, 6-11 from the row itself, 12-17 from
// the row below (spec.md §4.E).
func evalWord(lut []uint8, val0, val1, val2 uint32) uint16 {
	var output uint16
	for c := 0; c < 4; c++ {
		shift := uint(12 - 4*c)
		idx := ((val0 >> shift) & 63) | (((val1 >> shift) & 63) << 6) | (((val2 >> shift) & 63) << 12)
		output |= uint16(lut[idx]) << shift
	}
	return output
}

// applyWordToColour folds the 16-cell bit-plane transition into the byte
// colour plane: newly-live cells jump to AliveStart and count a birth,
// newly-dead cells drop to DeadStart and count a death, and cells whose
// bit is unchanged age within [DeadMin, AliveMax] exactly as the generic
// two-state transition applier does (internal/transition) — the two
// engines must agree bit-for-bit on this bookkeeping.
func applyWordToColour(g *grid.Grid, y, tc int, oldWord, newWord uint16, p Params) {
	row := g.Row(y)
	baseX := tc * 16
	for col := 0; col < 16; col++ {
		x := baseX + col
		if x < 0 || x >= g.Width {
			continue
		}
		bitPos := uint(15 - col)
		oldBit := (oldWord >> bitPos) & 1
		newBit := (newWord >> bitPos) & 1
		cell := row[x]

		if newBit == 1 {
			if oldBit == 0 {
				cell = p.AliveStart
				g.Births++
			} else if cell < p.AliveMax {
				cell++
			}
		} else {
			if oldBit == 1 {
				cell = p.DeadStart
				g.Deaths++
			} else if cell > p.DeadMin {
				cell--
			}
		}
		row[x] = cell

		if cell > p.DeadMin {
			g.ExpandOccupied(x, y)
			if cell >= p.AliveStart {
				g.Population++
				g.ExpandLive(x, y)
			}
		}
	}
}

// propagateTile marks the tiles a changed 16-cell output word can affect
// next generation: its own tile whenever it holds a live cell either
// before or after this step (oldWord covers a tile that died to all-zero
// this generation — it still needs to be evaluated once more so the dead
// state actually lands in both ping-pong buffers, matching the source's
// `colOccupied || tileCells` gate); the tile to the left when the
// leftmost output bit is set; the tile to the right when the rightmost
// bit is set; the tile above/below when this is the tile's top/bottom
// row; and the corresponding diagonal tile when both conditions hold
// (spec.md §4.E "Tile propagation").
func propagateTile(g *grid.Grid, tileRow, tc int, oldWord, output uint16, isTopRow, isBottomRow bool) {
	if output != 0 || oldWord != 0 {
		g.MarkNext(tileRow, tc)
		if isTopRow {
			g.MarkNext(tileRow-1, tc)
		}
		if isBottomRow {
			g.MarkNext(tileRow+1, tc)
		}
	}
	if output&0x8000 != 0 {
		g.MarkNext(tileRow, tc-1)
		if isTopRow {
			g.MarkNext(tileRow-1, tc-1)
		}
		if isBottomRow {
			g.MarkNext(tileRow+1, tc-1)
		}
	}
	if output&0x0001 != 0 {
		g.MarkNext(tileRow, tc+1)
		if isTopRow {
			g.MarkNext(tileRow-1, tc+1)
		}
		if isBottomRow {
			g.MarkNext(tileRow+1, tc+1)
		}
	}
}

// clampBoundingBox restricts the occupied/live bounding boxes to the
// bounded-grid rectangle, preventing the blank-sentinel border from
// inflating the box (spec.md §4.E bounded-grid rule).
func clampBoundingBox(g *grid.Grid, leftX, bottomY, rightX, topY int) {
	if g.MaxX >= 0 {
		g.MinX, g.MaxX = grid.Clamp(g.MinX, leftX, rightX), grid.Clamp(g.MaxX, leftX, rightX)
		g.MinY, g.MaxY = grid.Clamp(g.MinY, bottomY, topY), grid.Clamp(g.MaxY, bottomY, topY)
	}
	if g.MaxX1 >= 0 {
		g.MinX1, g.MaxX1 = grid.Clamp(g.MinX1, leftX, rightX), grid.Clamp(g.MaxX1, leftX, rightX)
		g.MinY1, g.MaxY1 = grid.Clamp(g.MinY1, bottomY, topY), grid.Clamp(g.MaxY1, bottomY, topY)
	}
}
