// Package cumsum builds the prefix-sum tables that let HROT Moore and von
// Neumann neighbourhoods extract a rectangular or diamond live-cell count
// in O(1) via corner differences (spec.md §4.C).
package cumsum

import "github.com/nlm-sim/lifecore/internal/simd"

// BuildMoore fills counts (row-major, stride width) so that
// counts[y*width+x] holds the number of live cells in the rectangle
// [bottomY..y] x [leftX..x], for y in [bottomY, topY] and x in
// [leftX, rightX]. isAlive tests one colour-plane byte.
//
// This is the generic path: any colour-plane predicate, one cell at a
// time. BuildMooreFromBits below is the SIMD fast path used when the
// predicate reduces to "this bit is set" in a packed bit plane.
func BuildMoore(counts []int32, colour []byte, width int, leftX, bottomY, rightX, topY int, isAlive func(byte) bool) {
	for y := bottomY; y <= topY; y++ {
		running := int32(0)
		rowBase := y * width
		prevRowBase := (y - 1) * width
		for x := leftX; x <= rightX; x++ {
			if isAlive(colour[rowBase+x]) {
				running++
			}
			prev := int32(0)
			if y > bottomY {
				prev = counts[prevRowBase+x]
			}
			counts[rowBase+x] = prev + running
		}
	}
}

// BuildMooreFromBits is the SIMD fast path: when the packed bit plane
// shows an entire 16-cell block of a row has no alive bit, the whole
// block's cumulative value is just the running count broadcast across all
// 16 lanes (spec.md §4.C). Otherwise it falls back to a scalar per-cell
// increment for that block. bits is MSB-first per spec.md's bit
// convention; bitsStride is the word stride of one bit-plane row.
func BuildMooreFromBits(counts []int32, bits []uint16, bitsStride, width int, leftX, bottomY, rightX, topY int) {
	for y := bottomY; y <= topY; y++ {
		rowBase := y * width
		prevRowBase := (y - 1) * width
		bitRow := bits[y*bitsStride : (y+1)*bitsStride]

		running := int32(0)
		x := leftX
		for x <= rightX {
			wordIdx := x >> 4
			bitOff := x & 15
			word := uint16(0)
			if wordIdx < len(bitRow) {
				word = bitRow[wordIdx]
			}
			// How many cells remain in this word from bitOff onward.
			remaining := 16 - bitOff
			span := rightX - x + 1
			if span > remaining {
				span = remaining
			}

			// Mask covering [bitOff, bitOff+span) in MSB-first order.
			mask := spanMask(bitOff, span)
			if word&mask == 0 && span == 16 && bitOff == 0 && x+15 <= rightX && y > bottomY {
				// Whole aligned 16-cell block has no live cell: vector-add
				// the unchanged running count to the 16 previous cumulative
				// values in one shot.
				block := counts[prevRowBase+x : prevRowBase+x+16]
				dst := counts[rowBase+x : rowBase+x+16]
				copy(dst, block)
				simd.AddBroadcastInt32(dst, running)
				x += 16
				continue
			}

			for i := 0; i < span; i++ {
				cx := x + i
				bit := (word >> uint(15-(bitOff+i))) & 1
				if bit != 0 {
					running++
				}
				prev := int32(0)
				if y > bottomY {
					prev = counts[prevRowBase+cx]
				}
				counts[rowBase+cx] = prev + running
			}
			x += span
		}
	}
}

// spanMask builds a mask selecting [off, off+n) bits in MSB-first (bit 15
// = leftmost) order within a 16-bit word.
func spanMask(off, n int) uint16 {
	if n <= 0 {
		return 0
	}
	if n >= 16 {
		return 0xFFFF
	}
	full := uint16(0xFFFF) >> uint(16-n)
	return full << uint(16-off-n)
}

// Query returns the live-cell count within the inclusive rectangle
// (x1..x2, y1..y2) using the corner-difference identity (spec.md §3):
// C[y2][x2] - C[y1-1][x2] - C[y2][x1-1] + C[y1-1][x1-1].
// bottomY/leftX are the cumulative table's origin; queries outside the
// table read as zero (an empty region contributes nothing).
func Query(counts []int32, width, leftX, bottomY int, x1, y1, x2, y2 int) int32 {
	get := func(x, y int) int32 {
		if x < leftX || y < bottomY {
			return 0
		}
		return counts[y*width+x]
	}
	return get(x2, y2) - get(x2, y1-1) - get(x1-1, y2) + get(x1-1, y1-1)
}
