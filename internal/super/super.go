// Package super implements the Super engine (spec.md §4.G): a 26-state
// (0-25) succession table layered on top of the ordinary alive/dead
// bit-grid a Life-like Engine pass already computed (odd states count as
// "alive" for birth/survival purposes). The table itself is reproduced
// verbatim from the original implementation's case analysis on states 6
// (markers) and 14-25 (coloured history) — it is data, not something to
// redesign, so this file stays close to its structure rather than trying
// to make it prettier.
package super

import "github.com/nlm-sim/lifecore/internal/grid"

// Neighbour-state masks used by the coloured-history case analysis
// (spec.md §4.G names these exact identifiers: aliveWith14, alive9to25,
// etc.).
const (
	maskAliveWith14 = 1<<1 | 1<<3 | 1<<5 | 1<<7 | 1<<9 | 1<<11 | 1<<13 | 1<<14 | 1<<15 | 1<<17 | 1<<19 | 1<<21 | 1<<23 | 1<<25
	maskAliveWith14or18 = maskAliveWith14 | 1<<18

	mask1or3or5or7 = 1<<1 | 1<<3 | 1<<5 | 1<<7
	mask9to25      = 1<<9 | 1<<11 | 1<<13 | 1<<15 | 1<<17 | 1<<19 | 1<<21 | 1<<23 | 1<<25

	mask1or3or5or9or11             = 1<<1 | 1<<3 | 1<<5 | 1<<9 | 1<<11
	mask7or13or15or17or19or21or23or25 = 1<<7 | 1<<13 | 1<<15 | 1<<17 | 1<<19 | 1<<21 | 1<<23 | 1<<25
	mask1or5or7or9or11              = 1<<1 | 1<<5 | 1<<7 | 1<<9 | 1<<11
	mask13or15or17or19or21or23or25  = 1<<13 | 1<<15 | 1<<17 | 1<<19 | 1<<21 | 1<<23 | 1<<25
	mask9or11                       = 1<<9 | 1<<11
	mask1or3or5or13or15or17or19or21or23or25 = 1<<1 | 1<<3 | 1<<5 | 1<<13 | 1<<15 | 1<<17 | 1<<19 | 1<<21 | 1<<23 | 1<<25
)

// Step advances the colour plane one generation. bits is the alive/dead
// bit-grid a Life-like Engine pass already produced over this rule's
// birth/survival neighbour counts (1 = birth-or-survival decision is
// "alive"), reinterpreted here the same way component F reinterprets it.
// g.Bits is not touched; Super keeps no bit-plane of its own — the colour
// plane (0-25) is both input and output, written into Colour in place
// after reading the previous generation's 3x3 neighbourhood from it.
func Step(g *grid.Grid, bits []uint16) {
	wordsPerRow := g.Width / 16
	g.ResetAggregates()

	prev := make([]byte, len(g.Colour))
	copy(prev, g.Colour)

	rowAt := func(y int) []byte {
		if y < 0 || y >= g.Height {
			return g.BlankRow
		}
		return prev[y*g.Width : (y+1)*g.Width]
	}

	for y := 0; y < g.Height; y++ {
		above, cur, below := rowAt(y-1), rowAt(y), rowAt(y+1)
		out := g.Colour[y*g.Width : (y+1)*g.Width]
		bitRow := bits[y*wordsPerRow : (y+1)*wordsPerRow]

		for x := 0; x < g.Width; x++ {
			c := cur[x]
			typeMask := neighbourMask(above, cur, below, x, g.Width)

			word := bitRow[x/16]
			aliveBit := (word>>uint(15-(x%16)))&1 != 0

			value, born, died := nextState(c, typeMask, aliveBit)
			out[x] = value

			if born {
				g.Births++
			}
			if died {
				g.Deaths++
			}
			if value > 0 {
				g.ExpandOccupied(x, y)
				g.SetTile(g.TileRowOf(y), g.TileColOf(x))
				if value&1 != 0 {
					g.Population++
					g.ExpandLive(x, y)
				}
			}
		}
	}
}

// neighbourMask computes typeMask = OR over the 3x3 neighbourhood of
// (1 << neighbourState), spec.md §4.G.
func neighbourMask(above, cur, below []byte, x, width int) uint32 {
	var mask uint32
	for _, row := range [3][]byte{above, cur, below} {
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= width {
				continue
			}
			mask |= 1 << uint(row[nx])
		}
	}
	// the centre cell of "cur" was included above (dx=0); that matches the
	// original's lcol/ccol/rcol construction, which folds the cell itself
	// into its own column triple.
	return mask
}

// nextState replicates the original's per-cell switch verbatim: c is the
// cell's current state (0-25), typeMask is its 3x3 neighbour-state OR
// mask, aliveBit is this generation's birth/survival decision from the
// ordinary Life-like bit-grid.
func nextState(c byte, typeMask uint32, aliveBit bool) (value byte, born, died bool) {
	value = c

	// State 6 (marker) case analysis runs first and can short-circuit the
	// rest of the table entirely.
	if typeMask&(1<<6) != 0 {
		process := false
		switch {
		case c == 7 || c == 8 || c >= 13:
			value = 0
		case c == 1:
			value = 2
		case c == 3 || c == 5:
			value = 4
		case c == 9:
			value = 10
		case c == 11:
			value = 12
		default:
			process = true
		}
		if !process {
			if c&1 != 0 {
				died = true
			}
			return value, born, died
		}
	}

	if aliveBit {
		if c&1 == 0 {
			// was dead, born now - except a state-6 marker, which refuses
			// the birth outright and stays a marker.
			switch c {
			case 4:
				value, born = 3, true
			case 6:
				value = 6
			case 8:
				value, born = 7, true
			default:
				value, born = resolveColouredHistory(typeMask), true
			}
		}
		// else: already alive (odd), holds its current historic value.
		return value, born, died
	}

	// aliveBit == false: dies or stays dead.
	if c&1 != 0 {
		// was alive, dies now
		died = true
		switch {
		case c == 5:
			value = 4
		case c <= 11:
			value = c + 1
		default:
			value = 0
		}
		return value, born, died
	}

	// already dead; states 14-25 may still shift along the coloured-
	// history chain even with no birth decision.
	if c >= 14 {
		switch c {
		case 14:
			value = 0
		case 16:
			if typeMask&maskAliveWith14 != 0 {
				value = 14
			}
		case 18:
			if typeMask&(1<<22) != 0 {
				value = 22
			}
		case 20:
			if typeMask&(1<<18) != 0 {
				value = 18
			}
		case 22:
			if typeMask&(1<<20) != 0 {
				value = 20
			}
		case 24:
			if typeMask&maskAliveWith14or18 != 0 {
				value = 18
			}
		}
	}
	return value, born, died
}

// resolveColouredHistory picks an odd (alive) state — 1, 9, 11 or one of
// 13-25 — for a freshly-born cell whose predecessor wasn't one of the simple cases
// (4, 6, 8) handled directly in nextState. Ported verbatim from the
// original's nested calc/popcount cascade.
func resolveColouredHistory(typeMask uint32) byte {
	value := byte(1)

	calc := typeMask & mask9to25
	if typeMask&mask1or3or5or7 == 0 && popcount(calc) == 1 {
		return byte(highBit(calc))
	}

	calc = typeMask & mask13or15or17or19or21or23or25
	if typeMask&(1<<3) != 0 && typeMask&mask1or5or7or9or11 == 0 && popcount(calc) == 1 {
		return byte(highBit(calc))
	}

	calc = typeMask & mask9or11
	if typeMask&(1<<7) != 0 && typeMask&mask1or3or5or13or15or17or19or21or23or25 == 0 && popcount(calc) == 1 {
		return byte(highBit(calc))
	}

	calc = typeMask & mask7or13or15or17or19or21or23or25
	if calc != 0 && typeMask&mask1or3or5or9or11 == 0 {
		return 13
	}

	return value
}

func popcount(v uint32) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// highBit returns the index of the highest set bit of v (31 - clz).
func highBit(v uint32) uint32 {
	n := uint32(0)
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
