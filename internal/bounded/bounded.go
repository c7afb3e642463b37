// Package bounded implements the bounded-grid helpers (spec.md §4.H):
// torus wrap-around and clear-outside, both operating directly on the
// byte colour plane around a live rectangle [lx, rx] x [by, ty]. Ported
// from the original's wrapTorusHROT/clearHROTOutside, which address the
// plane through raw row/column offsets rather than the Grid.Row helper —
// this package keeps that same flat-slice indexing since the wrap copies
// read and write outside the normal [0, Height) bounds the Row sentinel
// would otherwise mask.
package bounded

import "github.com/nlm-sim/lifecore/internal/grid"

// WrapTorus copies the live rectangle's edges around to the border bands
// one xrange/yrange cell-neighbourhood beyond it, including the four
// corner blocks, so a cumulative-sum build can read those border cells as
// if they belonged to the opposite edge (spec.md §4.H torus wrap
// contract). lx, by, rx, ty and xrange, yrange are all in cells; the
// caller guarantees the border bands fit inside the allocated colour
// plane (the grid is over-allocated by xrange/yrange on each side for
// exactly this purpose).
func WrapTorus(g *grid.Grid, lx, by, rx, ty, xrange, yrange int) {
	stride := g.Width
	col := g.Colour
	rowSize := rx - lx + 1
	extended := xrange + 1

	for y := 0; y < yrange; y++ {
		src := col[(by+y)*stride+lx:]
		dst := col[(ty+y+1)*stride+lx:]
		copy(dst[:rowSize], src[:rowSize])
	}

	for y := 0; y < yrange; y++ {
		src := col[(ty-y)*stride+lx:]
		dst := col[(by-y-1)*stride+lx:]
		copy(dst[:rowSize], src[:rowSize])
	}

	for y := by; y <= ty; y++ {
		row := col[y*stride:]
		for i := 0; i < extended; i++ {
			row[rx+1+i] = row[lx+i]
		}
		for i := 0; i < extended; i++ {
			row[lx-xrange-1+i] = row[rx-xrange+i]
		}
	}

	for y := 0; y < yrange; y++ {
		src := col[(by+y)*stride:]
		dst := col[(ty+y+1)*stride:]
		for i := 0; i < extended; i++ {
			dst[rx+1+i] = src[lx+i]
		}
		for i := 0; i < extended; i++ {
			dst[lx-xrange-1+i] = src[rx-xrange+i]
		}
	}

	for y := 0; y < yrange; y++ {
		src := col[(ty-y)*stride:]
		dst := col[(by-y-1)*stride:]
		for i := 0; i < extended; i++ {
			dst[rx+1+i] = src[lx+i]
		}
		for i := 0; i < extended; i++ {
			dst[lx-xrange-1+i] = src[rx-xrange+i]
		}
	}
}

// ClearOutside zeroes the border band around the live rectangle — yrange
// rows above and below, xrange+1 columns left and right, and the four
// corner blocks — for
// non-toroidal bounded grids, so a fresh cumulative-sum build never reads
// stale cells left over from a previous, larger bounding box (spec.md
// §4.H clear-outside contract).
func ClearOutside(g *grid.Grid, lx, by, rx, ty, xrange, yrange int) {
	stride := g.Width
	col := g.Colour
	width := rx + 1 - lx

	for y := ty + 1; y < ty+1+yrange; y++ {
		row := col[y*stride+lx:]
		clearN(row, width)
	}
	for y := by - yrange; y < by; y++ {
		row := col[y*stride+lx:]
		clearN(row, width)
	}

	leftWidth := (rx + xrange + 2) - (rx + 1)
	rightWidth := lx - (lx - xrange - 1)
	for y := by; y <= ty; y++ {
		clearN(col[y*stride+rx+1:], leftWidth)
		clearN(col[y*stride+lx-xrange-1:], rightWidth)
	}

	for y := ty + 1; y < ty+1+yrange; y++ {
		clearN(col[y*stride+rx+1:], leftWidth)
		clearN(col[y*stride+lx-xrange-1:], rightWidth)
	}
	for y := by - yrange; y < by; y++ {
		clearN(col[y*stride+rx+1:], leftWidth)
		clearN(col[y*stride+lx-xrange-1:], rightWidth)
	}
}

func clearN(row []byte, n int) {
	for i := 0; i < n; i++ {
		row[i] = 0
	}
}
