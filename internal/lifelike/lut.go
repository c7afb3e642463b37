package lifelike

// Ruleset is a birth/survival table indexed by Moore-8 neighbour count
// (0..8): Ruleset[n] is true when a cell with n live neighbours is born
// (B-ruleset) or survives (S-ruleset). Adapted from the teacher's own
// `game.Ruleset` ([9]bool indexed the same way), generalized here to drive
// LUT compilation instead of a per-cell branch.
type Ruleset [9]bool

// lutBits is the compiled-table width: 6 bits per row window (top/mid/
// bottom) of the 6-column-wide slice needed to resolve 4 output cells.
const lutBits = 18
const lutSize = 1 << lutBits

// BuildLUT compiles the 2^18-entry lookup table spec.md §4.E calls
// indexLookup63: given an 18-bit index packing three 6-bit row windows
// (bits 0-5 = row above, 6-11 = row itself, 12-17 = row below; each
// 6-bit window covers relative columns -1..+4, MSB-first), it returns a
// 4-bit nibble holding the next states of the window's middle 4 columns
// (bit 3 = leftmost of the 4, bit 0 = rightmost).
//
// Building this table is a one-time, rule-install-time cost (spec.md §4.E:
// "two tables may be installed, swapped on alternating generations"), not
// part of the per-generation hot path.
func BuildLUT(b, s Ruleset) []uint8 {
	lut := make([]uint8, lutSize)
	for idx := 0; idx < lutSize; idx++ {
		w0 := uint32(idx) & 63          // row above
		w1 := (uint32(idx) >> 6) & 63   // row itself
		w2 := (uint32(idx) >> 12) & 63  // row below

		var nibble uint8
		for k := 0; k < 4; k++ {
			self := colBit(w1, k)
			count := colBit(w0, k-1) + colBit(w0, k) + colBit(w0, k+1) +
				colBit(w1, k-1) + colBit(w1, k+1) +
				colBit(w2, k-1) + colBit(w2, k) + colBit(w2, k+1)

			var alive bool
			if self == 1 {
				alive = s[count]
			} else {
				alive = b[count]
			}
			if alive {
				nibble |= 1 << uint(3-k)
			}
		}
		lut[idx] = nibble
	}
	return lut
}

// colBit reads the bit for relative column c (-1..4) out of a 6-bit
// window w (bit 5 = column -1, bit 0 = column 4).
func colBit(w uint32, c int) uint32 {
	return (w >> uint(4-c)) & 1
}

// BuildComplementLUT compiles the table for a rule's complement — used to
// support B0 rules (birth on zero neighbours), which require the whole
// grid's alive/dead meaning to invert every other generation (spec.md
// §4.E / §9: "support for B0 rules by pre-inverting"). The complement
// ruleset swaps birth and survival at the mirrored neighbour count: a dead
// cell's 8 neighbours under inversion are exactly its 8 live-complement
// neighbours, so complementB[n] = !s[8-n] and complementS[n] = !b[8-n].
func BuildComplementLUT(b, s Ruleset) []uint8 {
	var cb, cs Ruleset
	for n := 0; n <= 8; n++ {
		cb[n] = !s[8-n]
		cs[n] = !b[8-n]
	}
	return BuildLUT(cb, cs)
}
