package cumsum

// Descriptor is the immutable diamond-cumulative-sum context threaded
// through the von Neumann reader as a parameter, replacing the source's
// module-global sharing of these fields (spec.md §9 "Global cumulative-sum
// reader state... Required re-architecture: thread a small immutable
// diamond descriptor context through the reader as a parameter, not a
// singleton").
type Descriptor struct {
	// Counts is the full diamond cumulative-sum table, row-major.
	Counts []int32
	// CountsWidth is the row stride of Counts (>= NCols+1).
	CountsWidth int
	// NCols is the diamond's column count.
	NCols int
	// CCHT is the diamond height: range+1.
	CCHT int
	// HalfCCWidth is half the diamond's mid-width.
	HalfCCWidth int
}

func (d Descriptor) row(i int) []int32 {
	return d.Counts[i*d.CountsWidth : (i+1)*d.CountsWidth]
}

// Precalc returns row CCHT-1, the row the diagonal/interior branches of
// ReadDiamond resolve against.
func (d Descriptor) Precalc() []int32 {
	return d.row(d.CCHT - 1)
}

// ReadDiamond is the pure O(1) diamond-cumulative-sum reader (spec.md §3's
// diamondRead), a direct port of the source's getCount2L with five
// regional rules: out-of-range, left-reflected triangle, right-reflected
// triangle, top band (raw row storage), and the two diagonal/interior
// cases resolved against the precalc row. It is deterministic and takes no
// package state — every input is in d or the arguments.
func ReadDiamond(i, j int, d Descriptor) int32 {
	if i < 0 || i+j < 0 || j-i >= d.NCols {
		return 0
	}
	if j < 0 && i+j < d.CCHT {
		return d.Counts[(i+j)*d.CountsWidth]
	}
	if j >= d.NCols && j-i >= d.NCols-d.CCHT {
		return d.Counts[(i+d.NCols-1-j)*d.CountsWidth+(d.NCols-1)]
	}
	if i < d.CCHT {
		return d.row(i)[j]
	}
	pc := d.Precalc()
	if (i-d.CCHT+1)+j <= d.HalfCCWidth {
		return pc[i-d.CCHT+1+j]
	}
	if j-(i-d.CCHT+1) >= d.HalfCCWidth {
		return pc[j-(i-d.CCHT+1)]
	}
	return pc[d.HalfCCWidth+((i+j+d.CCHT+d.HalfCCWidth+1)&1)]
}

// BuildVonNeumannCumulative populates rows [0, CCHT) of d.Counts — the
// "precalc" band the reader resolves diagonal/interior queries against —
// using the difference equation from spec.md §4.C: row(i,j) =
// row(i-1,j-1) + row(i-1,j+1) - row(i-2,j), plus the local cell indicator
// when row i falls within the grid. colour is the full colour plane,
// colourStride its row width; bottomY/leftX locate the diamond's origin
// within it. isAlive tests one colour byte (alive-threshold compare for
// two-state rules, == maxGenState for N-state).
func BuildVonNeumannCumulative(d Descriptor, colour []byte, colourStride, bottomY, leftX, nrows int, isAlive func(byte) bool) {
	for i := 0; i < d.CCHT; i++ {
		row := d.row(i)
		im1 := i - 1
		im2 := im1 - 1
		for j := 0; j <= d.NCols; j++ {
			v := ReadDiamond(im1, j-1, d) + ReadDiamond(im1, j+1, d) - ReadDiamond(im2, j, d)
			if i < nrows {
				cx := leftX + j
				cy := bottomY + i
				if isAlive(colour[cy*colourStride+cx]) {
					v++
				}
			}
			row[j] = v
		}
	}
}

// WindowSum extracts the diamond-neighbourhood live count centred so that
// row i / column j is the cell under evaluation, for a diamond of the
// given x/y range. This replicates the eight-term inclusion-exclusion
// combination from the source's nextGenerationHROTVN2 inner loop — the
// diamond analogue of the Moore rectangle's four-corner difference.
func WindowSum(i, j, xrange, yrange int, d Descriptor) int32 {
	im1 := i - 1
	ipr := i + yrange
	iprm1 := ipr - 1
	imrm1 := i - yrange - 1
	imrm2 := imrm1 - 1
	jpr := j + xrange
	jmr := j - xrange

	return ReadDiamond(ipr, j, d) -
		ReadDiamond(im1, jpr+1, d) -
		ReadDiamond(im1, jmr-1, d) +
		ReadDiamond(imrm2, j, d) +
		ReadDiamond(iprm1, j, d) -
		ReadDiamond(im1, jpr, d) -
		ReadDiamond(im1, jmr, d) +
		ReadDiamond(imrm1, j, d)
}
