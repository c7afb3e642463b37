// Package occupancy implements component I (spec.md §4.I): the rule-
// family hash functions used to detect oscillators/still-lifes, the
// bit-packed occupancy frame ring buffer, per-cell "seen alive" counters,
// and the pool-max small-colour-grid downsampler. Grounded on the
// original's getHash*/create*ColourGrid family (lvWasm.c); the SIMD
// 16-lane bitmask scan those use is scalarised here per spec.md §9's
// explicit allowance ("an implementation that scalarises everything must
// pass the same tests").
package occupancy

import "github.com/nlm-sim/lifecore/internal/grid"

const (
	hashSeed   = 31415962
	hashFactor = 1000003
)

// Box is an inclusive cell-coordinate rectangle, the same shape the hash
// and pool-max walks are scoped to.
type Box struct {
	Left, Bottom, Right, Top int
}

// HashTwoState hashes the colour plane for ordinary two-state (with
// fading history) rules: a cell is "alive" when colour >= aliveStart.
func HashTwoState(g *grid.Grid, b Box, aliveStart byte) uint32 {
	return walkHash(g, b, func(_, _ int, c byte) (bool, uint32) {
		return c >= aliveStart, 0
	})
}

// HashSuper hashes the colour plane for the Super engine: alive means an
// odd state, and state 6 (marker) additionally folds its own value into
// the hash (spec.md §4.I "For Super, also XOR in the state if it is 6").
func HashSuper(g *grid.Grid, b Box) uint32 {
	return walkHash(g, b, func(_, _ int, c byte) (bool, uint32) {
		if c == 6 {
			return true, 6
		}
		return c&1 != 0, 0
	})
}

// HashLifeHistory hashes the colour/overlay plane pair for [R]History
// rules: alive when colour >= aliveStart, or when the overlay marks state
// 6 at that cell (spec.md §4.I "For [R]History, consult the overlay plane
// for state 6").
func HashLifeHistory(g *grid.Grid, b Box, aliveStart, state6 byte) uint32 {
	return walkHash(g, b, func(x, y int, c byte) (bool, uint32) {
		overlay := g.Overlay[y*g.Width+x]
		return c >= aliveStart || overlay == state6, 0
	})
}

// HashRuleLoaderOrPCAOrExtended hashes the colour plane for RuleLoader,
// PCA, and Extended Generations rules: alive when colour > historyStates,
// XORing in the rule-specific state value (colour - historyStates).
func HashRuleLoaderOrPCAOrExtended(g *grid.Grid, b Box, historyStates byte) uint32 {
	return walkHash(g, b, func(_, _ int, c byte) (bool, uint32) {
		if c > historyStates {
			return true, uint32(c - historyStates)
		}
		return false, 0
	})
}

// HashGenerations hashes the colour plane for Generations-style rules:
// alive when colour > historyStates, XORing in the decay-ladder position.
func HashGenerations(g *grid.Grid, b Box, historyStates, numStates byte) uint32 {
	return walkHash(g, b, func(_, _ int, c byte) (bool, uint32) {
		if c > historyStates {
			return true, uint32(numStates) - (uint32(c) - uint32(historyStates))
		}
		return false, 0
	})
}

// walkHash runs the common hash accumulation loop: every (x, y) in b for
// which alive returns true contributes hash = hash*factor ^ yshift,
// hash = hash*factor ^ xshift, then hash = hash*factor ^ extra when
// extra != 0 (spec.md §4.I seed/factor constants).
func walkHash(g *grid.Grid, b Box, alive func(x, y int, c byte) (bool, uint32)) uint32 {
	hash := uint32(hashSeed)
	for y := b.Bottom; y <= b.Top; y++ {
		row := g.Row(y)
		yshift := uint32(y - b.Bottom)
		for x := b.Left; x <= b.Right; x++ {
			ok, extra := alive(x, y, row[x])
			if !ok {
				continue
			}
			hash = hash*hashFactor ^ yshift
			hash = hash*hashFactor ^ uint32(x-b.Left)
			if extra != 0 {
				hash = hash*hashFactor ^ extra
			}
		}
	}
	return hash
}

// OccupancyFrames is a ring buffer of bit-packed occupancy rows, one
// frame per recorded generation, used to reconstruct recent history for
// oscillator/period detection.
type OccupancyFrames struct {
	Width, Height int
	BitStart      int
	frameWords    int
	frames        [][]uint16
	next          int
}

// NewOccupancyFrames allocates a ring of `count` frames wide enough to
// hold width bits per row starting at bit offset bitStart within the
// first word (spec.md §4.I "bits packed left-to-right starting at
// bitStart... carrying into subsequent words").
func NewOccupancyFrames(width, height, bitStart, count int) *OccupancyFrames {
	words := (bitStart + width + 15) / 16
	f := &OccupancyFrames{Width: width, Height: height, BitStart: bitStart, frameWords: words}
	f.frames = make([][]uint16, count)
	for i := range f.frames {
		f.frames[i] = make([]uint16, words*height)
	}
	return f
}

// Record writes one generation's occupancy frame: bit 1 wherever
// colour[x,y] >= aliveStart, starting at BitStart within the row.
func (f *OccupancyFrames) Record(g *grid.Grid, aliveStart byte) {
	frame := f.frames[f.next]
	for i := range frame {
		frame[i] = 0
	}
	for y := 0; y < f.Height && y < g.Height; y++ {
		row := g.Row(y)
		dst := frame[y*f.frameWords : (y+1)*f.frameWords]
		for x := 0; x < f.Width && x < g.Width; x++ {
			if row[x] < aliveStart {
				continue
			}
			bitPos := f.BitStart + x
			word := bitPos / 16
			bit := uint(15 - bitPos%16)
			dst[word] |= 1 << bit
		}
	}
	f.next = (f.next + 1) % len(f.frames)
}

// Frame returns the frame recorded `generationsAgo` Record calls back (0
// = most recent).
func (f *OccupancyFrames) Frame(generationsAgo int) []uint16 {
	idx := (f.next - 1 - generationsAgo + len(f.frames)*2) % len(f.frames)
	return f.frames[idx]
}

// CellCounts accumulates, per cell, the number of generations it has been
// seen alive across a run — raw material for oscillator-period analysis
// (spec.md §4.I "Cell counts").
type CellCounts struct {
	Width, Height int
	Counts        []uint32
}

// NewCellCounts allocates a zeroed counter plane.
func NewCellCounts(width, height int) *CellCounts {
	return &CellCounts{Width: width, Height: height, Counts: make([]uint32, width*height)}
}

// Accumulate increments every cell currently alive (colour >= aliveStart).
func (c *CellCounts) Accumulate(g *grid.Grid, aliveStart byte) {
	for y := 0; y < c.Height && y < g.Height; y++ {
		row := g.Row(y)
		base := y * c.Width
		for x := 0; x < c.Width && x < g.Width; x++ {
			if row[x] >= aliveStart {
				c.Counts[base+x]++
			}
		}
	}
}

// PoolMax downsamples the colour plane by an N x N max reduction (N in
// {2,4,8,16,32}) into dst, restricted to occupied tiles. superLSB folds
// each source cell's LSB into bit 7 of the contributing max before
// reduction, the Super-engine variant that keeps the "odd = alive" signal
// visible after downsampling (spec.md §4.I "Super variants additionally
// OR each cell's LSB into a dedicated high bit before max-pool").
func PoolMax(g *grid.Grid, dst []byte, n int, superLSB bool) {
	if n <= 0 || g.Width%n != 0 || g.Height%n != 0 {
		panic("occupancy: pool size must evenly divide the grid")
	}
	dstWidth := g.Width / n

	for tileRow := 0; tileRow < g.TileRows; tileRow++ {
		y0 := tileRow * g.TileY
		y1 := grid.Min(y0+g.TileY, g.Height)
		for tc := 0; tc < g.TileCols; tc++ {
			if !g.TileBit(tileRow, tc) {
				continue
			}
			x0 := tc * g.TileX
			x1 := grid.Min(x0+g.TileX, g.Width)

			// Blocks align to multiples of n, so a pool wider than a tile
			// starts at the block enclosing the tile.
			for sy := y0 - y0%n; sy < y1; sy += n {
				for sx := x0 - x0%n; sx < x1; sx += n {
					var max byte
					for dy := 0; dy < n; dy++ {
						row := g.Row(sy + dy)
						for dx := 0; dx < n; dx++ {
							v := row[sx+dx]
							if superLSB && v&1 != 0 {
								v |= 0x80
							}
							if v > max {
								max = v
							}
						}
					}
					dst[(sy/n)*dstWidth+(sx/n)] = max
				}
			}
		}
	}
}
