// Package grid owns the tiled-plane substrate shared by every rule family:
// the bit-packed two-state plane, the byte colour plane, the int32 counts
// scratch plane, and the tile-dirty masks. Nothing outside this package
// allocates these buffers; other packages borrow mutable spans for the
// duration of one Step call and must not retain them across steps.
package grid

import "golang.org/x/exp/constraints"

// Debug is a package-level switch for debug-mode bounds checks. No code
// in this module reads it, so setting it has no effect.
var Debug = false

// BitPlanes is the Life-like engine's ping-pong pair of bit-packed planes.
// Cells pack MSB-first: bit 15 of a word is the leftmost of its 16 cells.
// This bit convention is a hard interface contract (spec.md §6, §9) —
// callers consulting the mask directly depend on it.
type BitPlanes struct {
	current []uint16
	next    []uint16
}

func newBitPlanes(words int) BitPlanes {
	return BitPlanes{current: make([]uint16, words), next: make([]uint16, words)}
}

// Current returns the plane read during this step.
func (b *BitPlanes) Current() []uint16 { return b.current }

// Next returns the plane written during this step.
func (b *BitPlanes) Next() []uint16 { return b.next }

// Swap promotes Next to Current after a completed step. Callers never see
// the underlying parity bit.
func (b *BitPlanes) Swap() { b.current, b.next = b.next, b.current }

// Grid is the shared substrate for one rule family's generation loop.
//
// Width must be a multiple of 16 (one bit-plane word per 16 cells). Height
// has no such constraint.
type Grid struct {
	Width, Height int

	// Colour is the byte-per-cell plane: age/history trace for two-state
	// and Generations rules, raw state 0..25 for Super rules. Row-major,
	// stride Width.
	Colour []byte

	// Overlay carries [R]History marker states (3..6) parallel to Colour,
	// nil unless the driver opted into History mode.
	Overlay []byte

	// Bits is the Life-like engine's bit-packed plane pair. New always
	// allocates both planes, whether or not the driver uses that engine.
	Bits BitPlanes

	// Counts is the int32 neighbourhood-sum scratch plane, parallel to
	// Colour, stride Width. Its meaning (raw counts, cumulative counts, or
	// free scratch) is owned by whichever pipeline stage is running.
	Counts []int32

	// TileX, TileY are the tile dimensions in cells (spec.md default 16x16).
	TileX, TileY       int
	TileCols, TileRows int

	// TileMask is the dirty-tile bitmask: bit 15-(tc&15) of word
	// row*tileWordCols+(tc>>4) is tile column tc of tile row `row`. For the
	// Life-like engine this is read at the start of a step (which tiles to
	// evaluate) and written for the following step via tileNext/CommitTileMask;
	// for the generic HROT applier it is write-only rendering output,
	// rebuilt fresh every step via ClearTileMask.
	TileMask     []uint16
	TileHistory  []uint16
	tileNext     []uint16
	tileWordCols int

	// BlankRow and BlankTileRow are read-only zero sentinels used to index
	// "row below the bottom" / "row above the top" without branching.
	BlankRow     []byte
	BlankTileRow []uint16

	Population, Births, Deaths int

	// Occupied bounding box: any non-dead cell (history included).
	MinX, MaxX, MinY, MaxY int
	// Live bounding box: live cells only. Invariant: contained in the
	// occupied box (spec.md §3).
	MinX1, MaxX1, MinY1, MaxY1 int
}

// New allocates a grid of the given cell dimensions with tileX x tileY
// tiles. width must be a multiple of 16.
func New(width, height, tileX, tileY int) *Grid {
	if width%16 != 0 {
		panic("grid: width must be a multiple of 16")
	}
	if tileX <= 0 {
		tileX = 16
	}
	if tileY <= 0 {
		tileY = 16
	}

	tileCols := ceilDiv(width, tileX)
	tileRows := ceilDiv(height, tileY)
	tileWordCols := ceilDiv(tileCols, 16)

	g := &Grid{
		Width:  width,
		Height: height,

		Colour: make([]byte, width*height),
		Counts: make([]int32, width*height),

		Bits: newBitPlanes((width / 16) * height),

		TileX:        tileX,
		TileY:        tileY,
		TileCols:     tileCols,
		TileRows:     tileRows,
		tileWordCols: tileWordCols,

		TileMask:    make([]uint16, tileWordCols*tileRows),
		TileHistory: make([]uint16, tileWordCols*tileRows),
		tileNext:    make([]uint16, tileWordCols*tileRows),

		BlankRow:     make([]byte, width),
		BlankTileRow: make([]uint16, tileWordCols),
	}
	return g
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Row returns the colour-plane slice for row y, or the read-only blank
// sentinel row when y is outside [0, Height).
func (g *Grid) Row(y int) []byte {
	if y < 0 || y >= g.Height {
		return g.BlankRow
	}
	return g.Colour[y*g.Width : (y+1)*g.Width]
}

// BitRow returns the bit-plane word slice for row y of the given plane
// (Current or Next), or the zero sentinel outside [0, Height).
func (g *Grid) BitRow(plane []uint16, y int) []uint16 {
	stride := g.Width / 16
	if y < 0 || y >= g.Height {
		return make([]uint16, stride)
	}
	return plane[y*stride : (y+1)*stride]
}

// CountsRow returns the counts-plane slice for row y.
func (g *Grid) CountsRow(y int) []int32 {
	return g.Counts[y*g.Width : (y+1)*g.Width]
}

// TileBit reports whether the tile at tile row tileRow, tile column tc is
// marked dirty in TileMask. Out-of-range coordinates report false.
func (g *Grid) TileBit(tileRow, tc int) bool {
	if tileRow < 0 || tileRow >= g.TileRows || tc < 0 || tc >= g.TileCols {
		return false
	}
	word := g.TileMask[tileRow*g.tileWordCols+(tc>>4)]
	return word&(1<<uint(15-(tc&15))) != 0
}

// SetTile marks the tile at (tileRow, tc) dirty, propagating into both the
// live mask and the OR-accumulated history mask. Out-of-range coordinates
// are silently dropped (edge propagation routinely walks one tile past the
// grid boundary).
func (g *Grid) SetTile(tileRow, tc int) {
	if tileRow < 0 || tileRow >= g.TileRows || tc < 0 || tc >= g.TileCols {
		return
	}
	idx := tileRow*g.tileWordCols + (tc >> 4)
	bit := uint16(1) << uint(15-(tc&15))
	g.TileMask[idx] |= bit
	g.TileHistory[idx] |= bit
}

// ClearTileMask zeroes the live dirty mask at the start of a step, leaving
// TileHistory (which OR-accumulates across generations for rendering)
// untouched. Used by the generic (HROT) transition applier, which
// rewrites TileMask from scratch every step rather than reading it.
func (g *Grid) ClearTileMask() {
	for i := range g.TileMask {
		g.TileMask[i] = 0
	}
}

// ResetTileNext zeroes the scratch mask the Life-like engine accumulates
// next-generation dirty bits into while it is still reading TileMask for
// this generation's evaluation scope.
func (g *Grid) ResetTileNext() {
	for i := range g.tileNext {
		g.tileNext[i] = 0
	}
}

// MarkNext sets the next-generation dirty bit (and OR-accumulates into
// TileHistory) for tile (tileRow, tc), silently dropping out-of-range
// coordinates — tile-edge propagation routinely targets one tile past the
// grid boundary.
func (g *Grid) MarkNext(tileRow, tc int) {
	if tileRow < 0 || tileRow >= g.TileRows || tc < 0 || tc >= g.TileCols {
		return
	}
	idx := tileRow*g.tileWordCols + (tc >> 4)
	bit := uint16(1) << uint(15-(tc&15))
	g.tileNext[idx] |= bit
	g.TileHistory[idx] |= bit
}

// CommitTileMask promotes the scratch next-mask built during this step to
// TileMask for the following step. Callers must ResetTileNext before the
// next step's propagation begins.
func (g *Grid) CommitTileMask() {
	g.TileMask, g.tileNext = g.tileNext, g.TileMask
}

// MarkAllDirty sets every tile bit in both TileMask and TileHistory —
// the seed a driver uses before the first Step call, when there is no
// previous generation's dirty set to inherit.
func (g *Grid) MarkAllDirty() {
	for tr := 0; tr < g.TileRows; tr++ {
		for tc := 0; tc < g.TileCols; tc++ {
			g.SetTile(tr, tc)
		}
	}
}

// TileRowOf maps a cell row to its tile row.
func (g *Grid) TileRowOf(y int) int { return y / g.TileY }

// TileColOf maps a cell column to its tile column.
func (g *Grid) TileColOf(x int) int { return x / g.TileX }

// ResetAggregates zeroes the per-generation scalar aggregates and resets
// the bounding boxes to the empty-box sentinel (Min > Max), ready for a
// transition applier to accumulate into.
func (g *Grid) ResetAggregates() {
	g.Population, g.Births, g.Deaths = 0, 0, 0
	g.MinX, g.MaxX, g.MinY, g.MaxY = g.Width, -1, g.Height, -1
	g.MinX1, g.MaxX1, g.MinY1, g.MaxY1 = g.Width, -1, g.Height, -1
}

// ExpandOccupied grows the occupied bounding box to include (x, y).
func (g *Grid) ExpandOccupied(x, y int) {
	g.MinX = Min(g.MinX, x)
	g.MaxX = Max(g.MaxX, x)
	g.MinY = Min(g.MinY, y)
	g.MaxY = Max(g.MaxY, y)
}

// ExpandLive grows the live bounding box to include (x, y).
func (g *Grid) ExpandLive(x, y int) {
	g.MinX1 = Min(g.MinX1, x)
	g.MaxX1 = Max(g.MaxX1, x)
	g.MinY1 = Min(g.MinY1, y)
	g.MaxY1 = Max(g.MaxY1, y)
}

// Min returns the lesser of two ordered values. Generic replacement for
// the per-type min helpers the teacher hand-rolled.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two ordered values.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
