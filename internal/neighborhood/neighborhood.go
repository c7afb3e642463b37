// Package neighborhood implements component B (spec.md §4.B): the
// per-shape neighbour-counting kernels that feed the generic HROT
// transition applier. Every kernel except Checkerboard is a pure function
// over the colour plane and an alive indicator (2-state: colour >=
// aliveStart; N-state: colour == maxGenState) — callers choose the
// indicator, these kernels don't know which rule family is driving them.
// Checkerboard takes no indicator and counts any non-zero colour byte.
//
// Shapes are monomorphised functions rather than one macro-expanded
// generic walker: each shape's sliding-window trick is different enough
// that sharing a single parameterised loop body would obscure more than
// it saves, the same call the teacher makes for its own board-update
// variants (game/game.go).
package neighborhood

import "github.com/nlm-sim/lifecore/internal/grid"

// Indicator reports whether a cell counts as a live neighbour. 2-state
// rules pass `func(c byte) bool { return c >= aliveStart }`; N-state
// rules pass `func(c byte) bool { return c == maxGenState }`.
type Indicator func(colour byte) bool

// Region is the rectangle a kernel fills in counts, in cell coordinates.
type Region struct {
	LeftX, BottomY, RightX, TopY int
}

func cellAt(g *grid.Grid, x, y int) byte {
	if x < 0 || x >= g.Width {
		return 0
	}
	return g.Row(y)[x]
}

func ind1(ind Indicator, c byte) int32 {
	if ind(c) {
		return 1
	}
	return 0
}

// Moore fills counts with a direct (xrange, yrange) rectangle sum,
// excluding the centre cell itself — the brute-force kernel every
// shaped/weighted variant below specialises. Used directly for plain
// Moore neighbourhoods and as the reference semantics the shaped kernels
// must agree with when their shape degenerates to a full rectangle
// (spec.md §4.B regression constraint).
func Moore(g *grid.Grid, counts []int32, r Region, xrange, yrange int, ind Indicator) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			var sum int32
			for dy := -yrange; dy <= yrange; dy++ {
				for dx := -xrange; dx <= xrange; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					sum += ind1(ind, cellAt(g, x+dx, y+dy))
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// VonNeumann fills counts with the diamond (Manhattan-distance) sum,
// excluding the centre cell itself.
func VonNeumann(g *grid.Grid, counts []int32, r Region, xrange, yrange int, ind Indicator) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			var sum int32
			for dy := -yrange; dy <= yrange; dy++ {
				width := xrange - abs(dy)
				if width < 0 {
					continue
				}
				for dx := -width; dx <= width; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					sum += ind1(ind, cellAt(g, x+dx, y+dy))
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Checkerboard counts only the sub-lattice cells matching (x+y+start)&1==0
// within the rectangle. When start == 1 the centre cell also
// participates (survival term), spec.md §4.B. Each cell's sum is computed
// from scratch over its whole rectangle; there is no sliding update. It
// takes no Indicator: any non-zero colour byte counts as live, for
// 2-state and N-state rules alike.
func Checkerboard(g *grid.Grid, counts []int32, r Region, xrange, yrange, start int) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			var sum int32
			for dy := -yrange; dy <= yrange; dy++ {
				ny := y + dy
				row := g.Row(ny)
				for dx := -xrange; dx <= xrange; dx++ {
					nx := x + dx
					if (nx+ny+start)&1 != 0 {
						continue
					}
					if nx < 0 || nx >= g.Width {
						continue
					}
					if row[nx] != 0 {
						sum++
					}
				}
			}
			if start == 1 {
				c := cellAt(g, x, y)
				if c != 0 {
					sum++
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Gaussian computes the pyramid-weighted sum: row weight inc = |dy|+1,
// within-row weight rising from inc at the row's leftmost column by inc
// per step to the centre, then falling symmetrically (spec.md §4.B).
func Gaussian(g *grid.Grid, counts []int32, r Region, xrange, yrange int, ind Indicator) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			var sum int32
			for dy := -yrange; dy <= yrange; dy++ {
				inc := int32(abs(dy) + 1)
				ny := y + dy

				weight := inc
				for dx := -xrange; dx <= 0; dx++ {
					sum += ind1(ind, cellAt(g, x+dx, ny)) * weight
					weight += inc
				}

				weight = inc * int32(xrange)
				for dx := 1; dx <= xrange; dx++ {
					sum += ind1(ind, cellAt(g, x+dx, ny)) * weight
					weight -= inc
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// CustomOffset is one (dx, dy) pair of a packed custom shape list.
type CustomOffset struct{ DX, DY int }

// Custom sums indicator over an explicit offset list, negating dy when
// isTriangular and (x+y)&1==0 (spec.md §4.B "flipped triangle cells").
func Custom(g *grid.Grid, counts []int32, r Region, xrange, yrange int, offsets []CustomOffset, isTriangular bool, ind Indicator) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			var sum int32
			flip := isTriangular && (x+y)&1 == 0
			for _, o := range offsets {
				dy := o.DY
				if flip {
					dy = -dy
				}
				sum += ind1(ind, cellAt(g, x+o.DX, y+dy))
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Weighted sums a full (2xrange+1) x (2yrange+1) weight table, indexed
// [dy+yrange][dx+xrange]. isTriangular only turns off the unrolled 3x3
// fast path; the table is applied in the same orientation at every cell,
// with no flip on odd (x+y).
func Weighted(g *grid.Grid, counts []int32, r Region, xrange, yrange int, weights [][]int32, isTriangular bool, ind Indicator) {
	if xrange == 1 && yrange == 1 && !isTriangular {
		weighted3x3(g, counts, r, weights, ind)
		return
	}
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			var sum int32
			for dy := -yrange; dy <= yrange; dy++ {
				row := weights[dy+yrange]
				for dx := -xrange; dx <= xrange; dx++ {
					w := row[dx+xrange]
					if w == 0 {
						continue
					}
					sum += ind1(ind, cellAt(g, x+dx, y+dy)) * w
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

func weighted3x3(g *grid.Grid, counts []int32, r Region, weights [][]int32, ind Indicator) {
	for y := r.BottomY - 1; y <= r.TopY+1; y++ {
		for x := r.LeftX - 1; x <= r.RightX+1; x++ {
			var sum int32
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					w := weights[dy+1][dx+1]
					if w == 0 {
						continue
					}
					sum += ind1(ind, cellAt(g, x+dx, y+dy)) * w
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// WeightedStates is like Weighted but each cell contributes
// weight*aliveWeight when alive, weight*deadWeight otherwise (spec.md
// §4.B "Weighted-states").
func WeightedStates(g *grid.Grid, counts []int32, r Region, xrange, yrange int, weights [][]int32, aliveWeight, deadWeight int32, ind Indicator) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			var sum int32
			for dy := -yrange; dy <= yrange; dy++ {
				row := weights[dy+yrange]
				for dx := -xrange; dx <= xrange; dx++ {
					w := row[dx+xrange]
					if w == 0 {
						continue
					}
					if ind(cellAt(g, x+dx, y+dy)) {
						sum += w * aliveWeight
					} else {
						sum += w * deadWeight
					}
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Shaped sums a row-symmetric stencil whose half-width at row offset dy
// is widths[dy+yrange] (spec.md §4.B "Shaped (L2/Circular)"): the row's
// first cell computes the full half-width sum; subsequent cells slide
// (subtract the column leaving, add the column entering).
func Shaped(g *grid.Grid, counts []int32, r Region, xrange, yrange int, widths []int, ind Indicator) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			counts[y*g.Width+x] = 0
		}
	}
	for dy := -yrange; dy <= yrange; dy++ {
		width := widths[dy+yrange]
		if width < 0 {
			continue
		}
		for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
			ny := y + dy
			row := g.Row(ny)
			x0 := r.LeftX - xrange
			var sum int32
			for dx := -width; dx <= width; dx++ {
				sum += ind1(ind, cellAt(g, x0+dx, ny))
			}
			addRow(counts, g.Width, x0, y, sum)
			for x := x0 + 1; x <= r.RightX+xrange; x++ {
				sum -= ind1(ind, cellAt(g, x-width-1, ny))
				sum += ind1(ind, cellAt(g, x+width, ny))
				addRow(counts, g.Width, x, y, sum)
			}
			_ = row
		}
	}
}

func addRow(counts []int32, width, x, y int, v int32) {
	counts[y*width+x] += v
}

// Hexagonal sums a hex-packed neighbourhood: rows below centre use the
// lower triangular half of the rectangle, rows above use the upper half
// (spec.md §4.B). Implemented as Shaped with a triangular width ramp.
func Hexagonal(g *grid.Grid, counts []int32, r Region, xrange, yrange int, ind Indicator) {
	widths := make([]int, 2*yrange+1)
	for dy := -yrange; dy <= yrange; dy++ {
		if dy <= 0 {
			widths[dy+yrange] = xrange
		} else {
			w := xrange - dy
			if w < 0 {
				w = 0
			}
			widths[dy+yrange] = w
		}
	}
	Shaped(g, counts, r, xrange, yrange, widths, ind)
}

// Triangular sums a trapezoidal extent whose shape depends on (x+y)&1
// (spec.md §4.B): parity 0 uses half-width xrange-|dy|, parity 1 the same
// ramp shifted by one row (xrange-|dy+1|). Each cell's sum is computed
// from scratch; there is no sliding update.
func Triangular(g *grid.Grid, counts []int32, r Region, xrange, yrange int, ind Indicator) {
	for y := r.BottomY - yrange; y <= r.TopY+yrange; y++ {
		for x := r.LeftX - xrange; x <= r.RightX+xrange; x++ {
			parity := (x + y) & 1
			var sum int32
			for dy := -yrange; dy <= yrange; dy++ {
				var width int
				if parity == 0 {
					width = xrange - abs(dy)
				} else {
					width = xrange - abs(dy+1)
				}
				if width < 0 {
					continue
				}
				ny := y + dy
				for dx := -width; dx <= width; dx++ {
					sum += ind1(ind, cellAt(g, x+dx, ny))
				}
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Cross sums the horizontal and vertical arms out to range, excluding the
// diagonals entirely (spec.md §4.B fixed stencil list).
func Cross(g *grid.Grid, counts []int32, r Region, rng int, ind Indicator) {
	for y := r.BottomY - rng; y <= r.TopY+rng; y++ {
		for x := r.LeftX - rng; x <= r.RightX+rng; x++ {
			var sum int32
			for d := -rng; d <= rng; d++ {
				if d == 0 {
					continue
				}
				sum += ind1(ind, cellAt(g, x+d, y))
				sum += ind1(ind, cellAt(g, x, y+d))
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Hash sums the two horizontal and two vertical bars offset by range/3+1
// from centre, the "#" stencil (spec.md §4.B fixed stencil list).
func Hash(g *grid.Grid, counts []int32, r Region, rng int, ind Indicator) {
	offset := rng/3 + 1
	for y := r.BottomY - rng; y <= r.TopY+rng; y++ {
		for x := r.LeftX - rng; x <= r.RightX+rng; x++ {
			var sum int32
			for d := -rng; d <= rng; d++ {
				sum += ind1(ind, cellAt(g, x+d, y-offset))
				sum += ind1(ind, cellAt(g, x+d, y+offset))
				sum += ind1(ind, cellAt(g, x-offset, y+d))
				sum += ind1(ind, cellAt(g, x+offset, y+d))
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Tripod sums three arms 120 degrees apart: up, and the two lower
// diagonals, each out to range (spec.md §4.B fixed stencil list).
func Tripod(g *grid.Grid, counts []int32, r Region, rng int, ind Indicator) {
	for y := r.BottomY - rng; y <= r.TopY+rng; y++ {
		for x := r.LeftX - rng; x <= r.RightX+rng; x++ {
			var sum int32
			for d := 1; d <= rng; d++ {
				sum += ind1(ind, cellAt(g, x, y+d))
				sum += ind1(ind, cellAt(g, x-d, y-d))
				sum += ind1(ind, cellAt(g, x+d, y-d))
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Asterisk sums all eight compass/diagonal rays out to range (spec.md
// §4.B fixed stencil list) — the union of Cross and the pure diagonal
// arms.
func Asterisk(g *grid.Grid, counts []int32, r Region, rng int, ind Indicator) {
	for y := r.BottomY - rng; y <= r.TopY+rng; y++ {
		for x := r.LeftX - rng; x <= r.RightX+rng; x++ {
			var sum int32
			for d := 1; d <= rng; d++ {
				sum += ind1(ind, cellAt(g, x+d, y))
				sum += ind1(ind, cellAt(g, x-d, y))
				sum += ind1(ind, cellAt(g, x, y+d))
				sum += ind1(ind, cellAt(g, x, y-d))
				sum += ind1(ind, cellAt(g, x+d, y+d))
				sum += ind1(ind, cellAt(g, x-d, y-d))
				sum += ind1(ind, cellAt(g, x+d, y-d))
				sum += ind1(ind, cellAt(g, x-d, y+d))
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Star sums the four diagonal rays only, out to range (spec.md §4.B
// fixed stencil list).
func Star(g *grid.Grid, counts []int32, r Region, rng int, ind Indicator) {
	for y := r.BottomY - rng; y <= r.TopY+rng; y++ {
		for x := r.LeftX - rng; x <= r.RightX+rng; x++ {
			var sum int32
			for d := 1; d <= rng; d++ {
				sum += ind1(ind, cellAt(g, x+d, y+d))
				sum += ind1(ind, cellAt(g, x-d, y-d))
				sum += ind1(ind, cellAt(g, x+d, y-d))
				sum += ind1(ind, cellAt(g, x-d, y+d))
			}
			counts[y*g.Width+x] = sum
		}
	}
}

// Saltire is Star plus the centre cell (the St Andrew's cross with its
// own survival term), spec.md §4.B fixed stencil list.
func Saltire(g *grid.Grid, counts []int32, r Region, rng int, ind Indicator) {
	Star(g, counts, r, rng, ind)
	for y := r.BottomY - rng; y <= r.TopY+rng; y++ {
		for x := r.LeftX - rng; x <= r.RightX+rng; x++ {
			counts[y*g.Width+x] += ind1(ind, cellAt(g, x, y))
		}
	}
}

// CornerEdge sums the four corners at +-cornerRange and the four edge
// midpoints at +-edgeRange, plus the centre cell (spec.md §4.B
// "Corner/Edge").
func CornerEdge(g *grid.Grid, counts []int32, r Region, cornerRange, edgeRange int, ind Indicator) {
	rng := cornerRange
	if edgeRange > rng {
		rng = edgeRange
	}
	for y := r.BottomY - rng; y <= r.TopY+rng; y++ {
		for x := r.LeftX - rng; x <= r.RightX+rng; x++ {
			var sum int32
			sum += ind1(ind, cellAt(g, x-cornerRange, y-cornerRange))
			sum += ind1(ind, cellAt(g, x+cornerRange, y-cornerRange))
			sum += ind1(ind, cellAt(g, x-cornerRange, y+cornerRange))
			sum += ind1(ind, cellAt(g, x+cornerRange, y+cornerRange))
			sum += ind1(ind, cellAt(g, x-edgeRange, y))
			sum += ind1(ind, cellAt(g, x+edgeRange, y))
			sum += ind1(ind, cellAt(g, x, y-edgeRange))
			sum += ind1(ind, cellAt(g, x, y+edgeRange))
			sum += ind1(ind, cellAt(g, x, y))
			counts[y*g.Width+x] = sum
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
